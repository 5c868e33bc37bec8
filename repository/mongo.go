package repository

import (
	"fmt"
	"time"

	"context"

	"registro/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdapter is the remote persistence adapter. One instance serves one
// domain collection; the field mapping between record attributes and stored
// column names lives in the model's bson tags.
//
// The adapter is authoritative for ids and timestamps: a candidate gets its
// uuid and creation stamps here, and the full record is echoed back to the
// caller so the in-memory collection only ever holds confirmed state.
type MongoAdapter[T model.Record[T]] struct {
	coll      *mongo.Collection
	sortField string
}

func NewMongoAdapter[T model.Record[T]](db *mongo.Database, collection, sortField string) *MongoAdapter[T] {
	return &MongoAdapter[T]{
		coll:      db.Collection(collection),
		sortField: sortField,
	}
}

// LoadAll fetches every record ordered by the domain sort key descending.
func (r *MongoAdapter[T]) LoadAll(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: r.sortField, Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var records []T
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return records, nil
}

// Insert stores a candidate and returns the full record with id and
// timestamps assigned.
func (r *MongoAdapter[T]) Insert(ctx context.Context, candidate T) (T, error) {
	record := candidate.Stamped(uuid.New().String(), time.Now().UTC())

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		var zero T
		return zero, fmt.Errorf("insert into %s: %w", r.coll.Name(), err)
	}
	return record, nil
}

// Update replaces the stored record by id, refreshing its update stamp, and
// returns the record as persisted. A missing target yields model.ErrNotFound.
func (r *MongoAdapter[T]) Update(ctx context.Context, record T) (T, error) {
	var zero T

	updated := record.Touched(time.Now().UTC())
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": updated.RecordID()}, updated)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", r.coll.Name(), err)
	}
	if result.MatchedCount == 0 {
		return zero, model.ErrNotFound
	}
	return updated, nil
}

// Delete removes the record by id. Deleting a record that is already gone
// succeeds; the end state is the same.
func (r *MongoAdapter[T]) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete from %s: %w", r.coll.Name(), err)
	}
	return nil
}
