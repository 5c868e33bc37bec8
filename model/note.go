package model

import (
	"strings"
	"time"
)

type Note struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category" json:"category"`
	Tags      []string  `bson:"tags,omitempty" json:"tags"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	// Edited is derived for list payloads; a note counts as edited once
	// updated_at has moved past created_at.
	Edited bool `bson:"-" json:"edited"`
}

func (n Note) RecordID() string {
	return n.ID
}

func (n Note) CategoryKey() string {
	return n.Category
}

func (n Note) SearchableText() string {
	return strings.Join([]string{n.Title, n.Content, n.Category, strings.Join(n.Tags, ",")}, "\n")
}

func (n Note) SortTitle() string {
	return n.Title
}

func (n Note) SortTime() time.Time {
	return n.CreatedAt
}

func (n Note) Stamped(id string, now time.Time) Note {
	n.ID = id
	n.CreatedAt = now
	n.UpdatedAt = now
	return n
}

func (n Note) Touched(now time.Time) Note {
	n.UpdatedAt = now
	return n
}

// IsEdited reports whether the note was changed after creation.
func (n Note) IsEdited() bool {
	return !n.UpdatedAt.Equal(n.CreatedAt)
}
