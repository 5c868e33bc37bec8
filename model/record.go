package model

import (
	"errors"
	"time"
)

// ErrNotFound is returned by persistence adapters when the target record
// no longer exists in the backend. Callers treat it as a benign no-op: the
// record may have been removed by a prior confirmed operation.
var ErrNotFound = errors.New("record not found")

// Record is the constraint shared by every domain record (notes, expenses,
// wiki commands). The accessor methods feed the projector, the stamping
// methods are used by persistence adapters when they assign ids and
// timestamps. Stamped and Touched return copies; records are passed by
// value everywhere so the store's collection is never aliased.
type Record[T any] interface {
	RecordID() string

	// CategoryKey is the value matched exactly against a category filter.
	CategoryKey() string

	// SearchableText is the concatenation of every searchable field,
	// matched case-insensitively as a substring.
	SearchableText() string

	// SortTitle is the key for the "title" sort mode.
	SortTitle() string

	// SortTime is the key for the "newest"/"oldest" sort modes.
	SortTime() time.Time

	// Stamped returns a copy with id and creation timestamps assigned.
	Stamped(id string, now time.Time) T

	// Touched returns a copy with the update timestamp refreshed.
	Touched(now time.Time) T
}
