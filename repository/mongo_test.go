package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"registro/model"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testDatabase connects to the instance named by MONGO_URI and hands back a
// throwaway database. Skipped when no instance is available so the rest of
// the suite stays runnable offline.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set; skipping mongo integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	db := client.Database("registro_test")
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
	})
	return db
}

func TestMongoAdapterNoteLifecycle(t *testing.T) {
	ctx := context.Background()
	adapter := NewNotesAdapter(testDatabase(t))

	inserted, err := adapter.Insert(ctx, model.Note{Title: "Remote", Category: "Work", Content: "x"})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if inserted.ID == "" || inserted.CreatedAt.IsZero() {
		t.Fatalf("insert did not assign id and timestamps: %+v", inserted)
	}

	inserted.Content = "x, revisited"
	updated, err := adapter.Update(ctx, inserted)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Error("update did not advance UpdatedAt")
	}

	records, err := adapter.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 1 || records[0].Content != "x, revisited" {
		t.Errorf("stored collection = %+v", records)
	}

	if err := adapter.Delete(ctx, inserted.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	// Repeating the delete is benign.
	if err := adapter.Delete(ctx, inserted.ID); err != nil {
		t.Errorf("repeated Delete() error = %v, want nil", err)
	}
}

func TestMongoAdapterUpdateMissingRecord(t *testing.T) {
	adapter := NewNotesAdapter(testDatabase(t))

	_, err := adapter.Update(context.Background(), model.Note{ID: "ghost", Title: "x", Category: "Work", Content: "x"})
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestMongoAdapterLoadAllOrdersBySortField(t *testing.T) {
	ctx := context.Background()
	adapter := NewExpensesAdapter(testDatabase(t))

	older, err := adapter.Insert(ctx, model.Expense{
		Description: "Rent",
		Category:    "Housing",
		Amount:      model.NewMoney(decimal.RequireFromString("1200")),
		Date:        "2024-01-01",
	})
	if err != nil {
		t.Fatal(err)
	}
	newer, err := adapter.Insert(ctx, model.Expense{
		Description: "Coffee",
		Category:    "Food",
		Amount:      model.NewMoney(decimal.RequireFromString("5.50")),
		Date:        "2024-01-10",
	})
	if err != nil {
		t.Fatal(err)
	}

	records, err := adapter.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != newer.ID || records[1].ID != older.ID {
		t.Errorf("order = [%s %s], want latest date first", records[0].Description, records[1].Description)
	}
	if got := records[0].Amount.String(); got != "5.50" {
		t.Errorf("Amount = %q after round trip, want %q", got, "5.50")
	}
}
