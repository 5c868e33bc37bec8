package usecase

import (
	"strings"

	"registro/model"
)

// NoteForm is the note form input boundary; every field arrives as a
// string, tags as one comma-separated line.
type NoteForm struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Tags     string `json:"tags"`
	Content  string `json:"content"`
}

// NotesDomain bundles the store and form controller for notes.
type NotesDomain struct {
	Store *Store[model.Note]
	Form  *FormController[model.Note, NoteForm]
}

func NewNotesDomain(adapter Adapter[model.Note]) *NotesDomain {
	store := NewStore("notes", adapter)
	return &NotesDomain{
		Store: store,
		Form: &FormController[model.Note, NoteForm]{
			store:  store,
			build:  buildNote,
			merge:  mergeNote,
			formOf: noteForm,
			label:  func(n model.Note) string { return n.Title },
		},
	}
}

func buildNote(form NoteForm) (model.Note, error) {
	note := model.Note{
		Title:    strings.TrimSpace(form.Title),
		Category: strings.TrimSpace(form.Category),
		Tags:     NormalizeTags(form.Tags),
		Content:  strings.TrimSpace(form.Content),
	}

	if note.Title == "" || note.Category == "" || note.Content == "" {
		return model.Note{}, validationf("title, category and content are required")
	}
	return note, nil
}

func mergeNote(existing, candidate model.Note) model.Note {
	existing.Title = candidate.Title
	existing.Category = candidate.Category
	existing.Tags = candidate.Tags
	existing.Content = candidate.Content
	return existing
}

func noteForm(n model.Note) NoteForm {
	return NoteForm{
		Title:    n.Title,
		Category: n.Category,
		Tags:     strings.Join(n.Tags, ", "),
		Content:  n.Content,
	}
}
