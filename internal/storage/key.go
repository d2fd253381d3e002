package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// TitlesKey is the record key of the workout title collection.
const TitlesKey = "titles"

// entriesPrefix namespaces per-workout entry records away from TitlesKey.
const entriesPrefix = "workouts/"

// EntriesKey returns the record key of the entry list for a workout title.
func EntriesKey(title string) string {
	return entriesPrefix + Key(title)
}

// Key maps a workout title to a record key. Distinct titles always get distinct keys,
// and keys never differ only in case, so records stay apart on case-insensitive file
// systems.
//
// A title made only of lowercase ASCII letters, digits, '-' and '_' is its own key.
// Any other title becomes a slug of those runes followed by '.' and a hash of the
// exact title. Plain keys never contain '.', so the two forms can't meet.
func Key(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune('_')
		}
	}

	slug := b.String()
	if slug == title && slug != "" {
		return slug
	}
	if slug == "" {
		slug = "_"
	}
	sum := sha256.Sum256([]byte(title))
	return slug + "." + hex.EncodeToString(sum[:8])
}

// Name turns a workout title into a readable file name stem. Letters, digits, spaces
// and "-_." are kept; every other rune becomes '_'. Surrounding spaces and dots are
// trimmed so the name can't be hidden or relative. Different titles may share a name;
// use Key for records.
func Name(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == ' ', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	name := strings.Trim(b.String(), " .")
	if name == "" {
		return "_"
	}
	return name
}
