package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents an account that owns journal entries.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=3,max=100"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // Never serialized
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// One user has many entries; deleting the user removes them all.
	Entries []Entry `json:"entries,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// SetPassword hashes the plaintext with a fresh bcrypt salt and overwrites
// the stored hash. The salt is embedded in the bcrypt encoding, so only the
// hash is ever persisted.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// Authenticate checks the candidate password against the stored hash.
// It fails closed: a user without a stored hash never authenticates.
func (u *User) Authenticate(plaintext string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}
