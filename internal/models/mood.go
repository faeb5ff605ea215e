package models

import "strings"

// MoodNeutral is the fallback label used whenever no valid mood is available.
const MoodNeutral = "neutral"

// MoodVocabulary is the canonical set of emotion labels. Every mood stored
// on an entry or returned by the classifier must come from this list.
var MoodVocabulary = []string{
	"happy",
	"excited",
	"calm",
	"neutral",
	"sad",
	"angry",
	"anxious",
	"grateful",
	"hopeful",
	"confused",
}

var moodSet = func() map[string]bool {
	set := make(map[string]bool, len(MoodVocabulary))
	for _, label := range MoodVocabulary {
		set[label] = true
	}
	return set
}()

// ValidMood reports whether label is part of the canonical vocabulary.
// Matching is case-insensitive and ignores surrounding whitespace.
func ValidMood(label string) bool {
	return moodSet[strings.ToLower(strings.TrimSpace(label))]
}

// ParseMoods splits a comma-separated mood string into individual labels,
// trimming whitespace and dropping empty segments.
func ParseMoods(csv string) []string {
	var moods []string
	for _, part := range strings.Split(csv, ",") {
		if label := strings.TrimSpace(part); label != "" {
			moods = append(moods, label)
		}
	}
	return moods
}

// NormalizeMoods lowercases the given labels, discards anything outside the
// vocabulary and duplicates, and joins the survivors into the stored
// comma-separated form. If nothing valid remains the result is "neutral".
func NormalizeMoods(labels []string) string {
	seen := make(map[string]bool, len(labels))
	var kept []string
	for _, raw := range labels {
		label := strings.ToLower(strings.TrimSpace(raw))
		if label == "" || !moodSet[label] || seen[label] {
			continue
		}
		seen[label] = true
		kept = append(kept, label)
	}
	if len(kept) == 0 {
		return MoodNeutral
	}
	return strings.Join(kept, ",")
}
