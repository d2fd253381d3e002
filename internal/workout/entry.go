// Package workout holds wl's data model: the collection of workout titles and the
// ordered exercise entries of each workout. Every mutation is persisted through a
// storage.Store before it returns.
package workout

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind says how an entry's value is measured.
type Kind int

const (
	// Reps entries count repetitions.
	Reps Kind = iota
	// Seconds entries are timed; their value is a duration in seconds.
	Seconds
)

// Unit strings used in persisted records.
const (
	UnitReps = "Reps"
	UnitSecs = "Secs"
)

// String returns the persisted unit name.
func (k Kind) String() string {
	if k == Seconds {
		return UnitSecs
	}
	return UnitReps
}

// ParseKind maps a unit name to a Kind. Anything other than "Secs" (case-insensitive)
// is a Reps entry.
func ParseKind(unit string) Kind {
	if strings.EqualFold(strings.TrimSpace(unit), UnitSecs) {
		return Seconds
	}
	return Reps
}

// MarshalJSON encodes the kind as its unit name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a unit name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var unit string
	if err := json.Unmarshal(data, &unit); err != nil {
		return err
	}
	*k = ParseKind(unit)
	return nil
}

// Entry is one exercise row of a workout.
type Entry struct {
	// ID is assigned at creation and never changes. The timer uses it to find the row
	// it is counting down for.
	ID    string `json:"id"`
	Label string `json:"firstInfo"`
	Value string `json:"secondInfo"`
	Kind  Kind   `json:"unit"`
}

// NewID returns a fresh entry identifier.
func NewID() string {
	return uuid.NewString()
}

// Timed reports whether the entry can be run as a countdown.
func (e Entry) Timed() bool {
	return e.Kind == Seconds
}

// Seconds returns the entry's value as a countdown duration. Values that are not a
// non-negative integer count as 0.
func (e Entry) Seconds() int {
	n, err := strconv.Atoi(strings.TrimSpace(e.Value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
