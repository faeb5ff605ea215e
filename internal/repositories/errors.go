package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist. It is
// wrapped with entity context by the concrete repositories, so callers
// should test for it with errors.Is.
var ErrNotFound = errors.New("record not found")
