package handler

import (
	"registro/middleware"
	"registro/usecase"
	"registro/utils"

	"github.com/gin-gonic/gin"
)

func ListNotesHandler(c *gin.Context, notes *usecase.NotesDomain) {
	records := usecase.Project(notes.Store.Records(), projectionOptions(c))
	for i := range records {
		records[i].Edited = records[i].IsEdited()
	}

	utils.Success(c, gin.H{
		"records":    records,
		"editing_id": notes.Store.EditingID(),
	})
}

func NoteCategoriesHandler(c *gin.Context, notes *usecase.NotesDomain) {
	utils.Success(c, usecase.Categories(notes.Store.Records()))
}

// SubmitNoteHandler is the form submit: it creates a new note, or updates
// the one currently loaded for editing.
func SubmitNoteHandler(c *gin.Context, notes *usecase.NotesDomain) {
	var form usecase.NoteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	editing := notes.Store.EditingID() != ""
	saved, err := notes.Form.Submit(c.Request.Context(), form)
	if err != nil {
		respondFormError(c, err)
		return
	}
	saved.Edited = saved.IsEdited()

	if editing {
		middleware.TrackRecordOperation("notes", "update")
		utils.Success(c, saved)
		return
	}
	middleware.TrackRecordOperation("notes", "create")
	utils.Created(c, saved)
}

// UpdateNoteHandler loads the target into the form and submits in one
// round trip. The body is bound before any form state changes, and the
// editing marker never outlives the request on failure, so a rejected PUT
// cannot turn the next create submit into an update.
func UpdateNoteHandler(c *gin.Context, notes *usecase.NotesDomain) {
	var form usecase.NoteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if _, ok := notes.Form.LoadForEdit(c.Param("id")); !ok {
		utils.NotFound(c, "Note not found")
		return
	}

	saved, err := notes.Form.Submit(c.Request.Context(), form)
	if err != nil {
		notes.Form.Clear()
		respondFormError(c, err)
		return
	}
	saved.Edited = saved.IsEdited()

	middleware.TrackRecordOperation("notes", "update")
	utils.Success(c, saved)
}

// EditNoteHandler copies a note's fields into form state and marks it as
// the one being edited.
func EditNoteHandler(c *gin.Context, notes *usecase.NotesDomain) {
	form, ok := notes.Form.LoadForEdit(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Note not found")
		return
	}

	utils.Success(c, gin.H{
		"form":       form,
		"editing_id": notes.Store.EditingID(),
	})
}

func ClearNoteFormHandler(c *gin.Context, notes *usecase.NotesDomain) {
	notes.Form.Clear()
	utils.Success(c, gin.H{"editing_id": ""})
}

func DeleteNoteHandler(c *gin.Context, notes *usecase.NotesDomain) {
	deleted, err := notes.Form.RequestDelete(c.Request.Context(), c.Param("id"), confirmerFrom(c))
	if err != nil {
		middleware.TrackError("storage")
		utils.InternalError(c, "Failed to delete note")
		return
	}

	if deleted {
		middleware.TrackRecordOperation("notes", "delete")
	}
	utils.Success(c, gin.H{"deleted": deleted})
}
