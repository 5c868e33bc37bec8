package repository

import (
	"registro/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// Storage keys for the blob-backed adapters; one serialized collection per
// domain.
const (
	NotesKey    = "registro.notes"
	ExpensesKey = "registro.expenses"
	WikiKey     = "registro.wiki_commands"
)

// Remote adapters, one per domain table. Notes and wiki entries read back
// newest-created first; expenses read back by calendar date descending.

func NewNotesAdapter(db *mongo.Database) *MongoAdapter[model.Note] {
	return NewMongoAdapter[model.Note](db, "notes", "created_at")
}

func NewExpensesAdapter(db *mongo.Database) *MongoAdapter[model.Expense] {
	return NewMongoAdapter[model.Expense](db, "expenses", "date")
}

func NewWikiAdapter(db *mongo.Database) *MongoAdapter[model.WikiCommand] {
	return NewMongoAdapter[model.WikiCommand](db, "wiki_commands", "created_at")
}

// Local adapters over a KeyValue blob backend (device file or Redis).

func NewLocalNotesAdapter(kv KeyValue) *BlobAdapter[model.Note] {
	return NewBlobAdapter[model.Note](kv, NotesKey)
}

func NewLocalExpensesAdapter(kv KeyValue) *BlobAdapter[model.Expense] {
	return NewBlobAdapter[model.Expense](kv, ExpensesKey)
}

func NewLocalWikiAdapter(kv KeyValue) *BlobAdapter[model.WikiCommand] {
	return NewBlobAdapter[model.WikiCommand](kv, WikiKey)
}
