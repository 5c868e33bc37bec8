package handler

import (
	"registro/middleware"
	"registro/usecase"
	"registro/utils"

	"github.com/gin-gonic/gin"
)

func ListWikiCommandsHandler(c *gin.Context, wiki *usecase.WikiDomain) {
	records := usecase.Project(wiki.Store.Records(), projectionOptions(c))
	for i := range records {
		records[i].Edited = records[i].IsEdited()
	}

	utils.Success(c, gin.H{
		"records":    records,
		"editing_id": wiki.Store.EditingID(),
	})
}

// WikiVendorsHandler lists the distinct vendors, the wiki's filter axis.
func WikiVendorsHandler(c *gin.Context, wiki *usecase.WikiDomain) {
	utils.Success(c, usecase.Categories(wiki.Store.Records()))
}

func SubmitWikiCommandHandler(c *gin.Context, wiki *usecase.WikiDomain) {
	var form usecase.WikiForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	editing := wiki.Store.EditingID() != ""
	saved, err := wiki.Form.Submit(c.Request.Context(), form)
	if err != nil {
		respondFormError(c, err)
		return
	}
	saved.Edited = saved.IsEdited()

	if editing {
		middleware.TrackRecordOperation("wiki", "update")
		utils.Success(c, saved)
		return
	}
	middleware.TrackRecordOperation("wiki", "create")
	utils.Created(c, saved)
}

// UpdateWikiCommandHandler binds before touching form state and clears the
// editing marker on failure; a rejected PUT must not leak edit mode into
// the next submit.
func UpdateWikiCommandHandler(c *gin.Context, wiki *usecase.WikiDomain) {
	var form usecase.WikiForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if _, ok := wiki.Form.LoadForEdit(c.Param("id")); !ok {
		utils.NotFound(c, "Wiki command not found")
		return
	}

	saved, err := wiki.Form.Submit(c.Request.Context(), form)
	if err != nil {
		wiki.Form.Clear()
		respondFormError(c, err)
		return
	}
	saved.Edited = saved.IsEdited()

	middleware.TrackRecordOperation("wiki", "update")
	utils.Success(c, saved)
}

func EditWikiCommandHandler(c *gin.Context, wiki *usecase.WikiDomain) {
	form, ok := wiki.Form.LoadForEdit(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Wiki command not found")
		return
	}

	utils.Success(c, gin.H{
		"form":       form,
		"editing_id": wiki.Store.EditingID(),
	})
}

func ClearWikiFormHandler(c *gin.Context, wiki *usecase.WikiDomain) {
	wiki.Form.Clear()
	utils.Success(c, gin.H{"editing_id": ""})
}

func DeleteWikiCommandHandler(c *gin.Context, wiki *usecase.WikiDomain) {
	deleted, err := wiki.Form.RequestDelete(c.Request.Context(), c.Param("id"), confirmerFrom(c))
	if err != nil {
		middleware.TrackError("storage")
		utils.InternalError(c, "Failed to delete wiki command")
		return
	}

	if deleted {
		middleware.TrackRecordOperation("wiki", "delete")
	}
	utils.Success(c, gin.H{"deleted": deleted})
}
