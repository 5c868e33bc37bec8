package usecase

import (
	"context"
	"fmt"
	"strings"

	"registro/model"
)

// ValidationError marks a submission rejected before any backend call was
// made.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Confirmer is the yes/no gate shown before a delete. Over HTTP the answer
// rides in with the request; tests can decline.
type Confirmer interface {
	Confirm(label string) bool
}

// FormController maps raw form fields to candidate records and dispatches
// create-vs-update based on the store's editing marker. One parametrized
// controller serves every domain; the per-domain behavior is injected as
// functions.
type FormController[T model.Record[T], F any] struct {
	store *Store[T]

	// build trims and validates raw fields into a candidate record.
	build func(F) (T, error)
	// merge lays candidate fields over an existing record, preserving
	// its id and creation timestamp.
	merge func(existing, candidate T) T
	// formOf copies a record's fields back into form state for editing.
	formOf func(T) F
	// label names a record in the delete confirmation prompt.
	label func(T) string
}

// Submit validates the form and either creates a new record or, when a
// record is loaded for editing, updates it. On any failure the editing
// state is unchanged, so the user can correct and resubmit.
func (c *FormController[T, F]) Submit(ctx context.Context, form F) (T, error) {
	var zero T

	candidate, err := c.build(form)
	if err != nil {
		return zero, err
	}

	editingID := c.store.EditingID()
	if editingID == "" {
		saved, err := c.store.Insert(ctx, candidate)
		if err != nil {
			return zero, err
		}
		return saved, nil
	}

	existing, ok := c.store.Get(editingID)
	if !ok {
		// The target was removed by a prior confirmed operation.
		return zero, model.ErrNotFound
	}

	saved, err := c.store.Update(ctx, c.merge(existing, candidate))
	if err != nil {
		return zero, err
	}
	c.store.ClearEditing()
	return saved, nil
}

// LoadForEdit copies the target record into form state and marks it as
// being edited. An unknown id leaves the current state untouched.
func (c *FormController[T, F]) LoadForEdit(id string) (F, bool) {
	record, ok := c.store.Get(id)
	if !ok {
		var zero F
		return zero, false
	}
	c.store.SetEditing(id)
	return c.formOf(record), true
}

// Clear returns the form to create mode.
func (c *FormController[T, F]) Clear() {
	c.store.ClearEditing()
}

// RequestDelete asks the gate for confirmation, naming the record, before
// touching the backend. A declined gate is a no-op: no adapter call, no
// collection change.
func (c *FormController[T, F]) RequestDelete(ctx context.Context, id string, gate Confirmer) (bool, error) {
	var label string
	if record, ok := c.store.Get(id); ok {
		label = c.label(record)
	}

	if !gate.Confirm(label) {
		return false, nil
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// NormalizeTags splits comma-separated tag input, trims each entry, and
// drops empties, preserving input order.
func NormalizeTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
