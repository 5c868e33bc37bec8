package usecase

import (
	"context"
	"log"
	"sync"

	"registro/model"
)

// Adapter is the capability a persistence backend must provide for one
// domain. Remote (MongoDB) and local (file/Redis blob) implementations are
// interchangeable; tests inject fakes.
type Adapter[T model.Record[T]] interface {
	LoadAll(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, candidate T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Store holds the authoritative in-memory collection for one domain plus
// the id of the record currently open in the form, if any.
//
// Every mutation is two-phase: the adapter is called first, and the
// collection only changes after the adapter confirms success. A failed
// write leaves the collection byte-for-byte untouched, so in-memory state
// never diverges from confirmed backend state.
type Store[T model.Record[T]] struct {
	name    string
	adapter Adapter[T]

	mu        sync.RWMutex
	records   []T
	editingID string
}

func NewStore[T model.Record[T]](name string, adapter Adapter[T]) *Store[T] {
	return &Store[T]{name: name, adapter: adapter}
}

// Load replaces the collection wholesale with the adapter's contents.
// Called once at startup. Fails soft: on backend error the collection
// becomes empty and the service keeps running.
func (s *Store[T]) Load(ctx context.Context) {
	records, err := s.adapter.LoadAll(ctx)
	if err != nil {
		log.Printf("%s: load failed, starting with empty collection: %v", s.name, err)
		records = nil
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

// Records returns a copy of the collection in insertion order.
func (s *Store[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Get looks a record up by id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.RecordID() == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Insert submits the candidate and, once the adapter confirms, prepends the
// echoed record so the unsorted collection stays newest-first.
func (s *Store[T]) Insert(ctx context.Context, candidate T) (T, error) {
	record, err := s.adapter.Insert(ctx, candidate)
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	s.records = append([]T{record}, s.records...)
	s.mu.Unlock()
	return record, nil
}

// Update submits the record and, once confirmed, replaces its slot in
// place. A target the backend no longer knows is benign: the collection is
// simply left without it.
func (s *Store[T]) Update(ctx context.Context, record T) (T, error) {
	updated, err := s.adapter.Update(ctx, record)
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	for i := range s.records {
		if s.records[i].RecordID() == updated.RecordID() {
			s.records[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the record, locally only after the adapter confirmed.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.adapter.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.records[:0]
	for _, record := range s.records {
		if record.RecordID() != id {
			kept = append(kept, record)
		}
	}
	s.records = kept
	if s.editingID == id {
		s.editingID = ""
	}
	s.mu.Unlock()
	return nil
}

// EditingID returns the id of the record currently loaded into the form, or
// "" when the form is in create mode.
func (s *Store[T]) EditingID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID
}

func (s *Store[T]) SetEditing(id string) {
	s.mu.Lock()
	s.editingID = id
	s.mu.Unlock()
}

func (s *Store[T]) ClearEditing() {
	s.SetEditing("")
}
