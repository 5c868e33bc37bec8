package repository

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"registro/model"

	"github.com/google/uuid"
)

// KeyValue is the local persistence boundary: one opaque blob per key.
// Implementations: FileStore (device storage) and RedisStore.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

// BlobAdapter persists a whole domain collection as a single serialized
// blob under a fixed key. There are no partial writes: every mutation
// rewrites the entire blob, and only reports success after the write lands,
// so it keeps the same two-phase shape as the remote adapter.
//
// Ids and timestamps are generated client-side since there is no server to
// assign them.
type BlobAdapter[T model.Record[T]] struct {
	kv  KeyValue
	key string
	mu  sync.Mutex
}

func NewBlobAdapter[T model.Record[T]](kv KeyValue, key string) *BlobAdapter[T] {
	return &BlobAdapter[T]{kv: kv, key: key}
}

// LoadAll deserializes the stored collection, ordered by the domain sort
// key descending like the remote adapter. The blob itself keeps insertion
// order, which for backdated expense dates is not the same thing. A missing
// or unparseable blob yields an empty collection, never an error: a corrupt
// blob must not take the UI down.
func (r *BlobAdapter[T]) LoadAll(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load(ctx)
	sort.SliceStable(records, func(i, j int) bool {
		return records[j].SortTime().Before(records[i].SortTime())
	})
	return records, nil
}

func (r *BlobAdapter[T]) load(ctx context.Context) []T {
	data, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		log.Printf("blob %s: read failed: %v", r.key, err)
		return nil
	}
	if !ok {
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("blob %s: discarding unparseable collection: %v", r.key, err)
		return nil
	}
	return records
}

func (r *BlobAdapter[T]) persist(ctx context.Context, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, r.key, data)
}

// Insert prepends the stamped record and rewrites the blob. The record is
// only returned once the write succeeded.
func (r *BlobAdapter[T]) Insert(ctx context.Context, candidate T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := candidate.Stamped(uuid.New().String(), time.Now().UTC())

	records := append([]T{record}, r.load(ctx)...)
	if err := r.persist(ctx, records); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Update replaces the record's slot in the stored collection.
func (r *BlobAdapter[T]) Update(ctx context.Context, record T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	updated := record.Touched(time.Now().UTC())

	records := r.load(ctx)
	index := -1
	for i := range records {
		if records[i].RecordID() == updated.RecordID() {
			index = i
			break
		}
	}
	if index == -1 {
		return zero, model.ErrNotFound
	}

	records[index] = updated
	if err := r.persist(ctx, records); err != nil {
		return zero, err
	}
	return updated, nil
}

// Delete filters the record out of the stored collection. Deleting an id
// that is already gone succeeds without a write.
func (r *BlobAdapter[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load(ctx)
	kept := records[:0]
	for _, record := range records {
		if record.RecordID() != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return r.persist(ctx, kept)
}
