package model

import (
	"strings"
	"time"
)

// WikiCommand is a reference entry for a device/vendor CLI command.
type WikiCommand struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Vendor      string    `bson:"vendor" json:"vendor"`
	DeviceType  string    `bson:"device_type" json:"device_type"`
	Model       string    `bson:"model,omitempty" json:"model"`
	Context     string    `bson:"context,omitempty" json:"context"`
	Command     string    `bson:"command" json:"command"`
	Description string    `bson:"description,omitempty" json:"description"`
	Tags        []string  `bson:"tags,omitempty" json:"tags"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`

	Edited bool `bson:"-" json:"edited"`
}

func (w WikiCommand) RecordID() string {
	return w.ID
}

// CategoryKey filters wiki entries by vendor, the grouping the UI exposes.
func (w WikiCommand) CategoryKey() string {
	return w.Vendor
}

func (w WikiCommand) SearchableText() string {
	return strings.Join([]string{
		w.Title,
		w.Command,
		w.Description,
		w.Vendor,
		w.DeviceType,
		w.Model,
		w.Context,
		strings.Join(w.Tags, ","),
	}, "\n")
}

func (w WikiCommand) SortTitle() string {
	return w.Title
}

func (w WikiCommand) SortTime() time.Time {
	return w.CreatedAt
}

func (w WikiCommand) Stamped(id string, now time.Time) WikiCommand {
	w.ID = id
	w.CreatedAt = now
	w.UpdatedAt = now
	return w
}

func (w WikiCommand) Touched(now time.Time) WikiCommand {
	w.UpdatedAt = now
	return w
}

func (w WikiCommand) IsEdited() bool {
	return !w.UpdatedAt.Equal(w.CreatedAt)
}
