package handler

import (
	"errors"

	"registro/middleware"
	"registro/model"
	"registro/usecase"
	"registro/utils"

	"github.com/gin-gonic/gin"
)

// projectionOptions reads the list-view inputs from the query string.
func projectionOptions(c *gin.Context) usecase.ProjectionOptions {
	return usecase.ProjectionOptions{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Sort:     usecase.SortMode(c.Query("sort")),
	}
}

// queryConfirmer answers the delete confirmation gate from the request: the
// client sends confirm=true once the user accepted the prompt.
type queryConfirmer struct {
	confirmed bool
}

func (q queryConfirmer) Confirm(string) bool {
	return q.confirmed
}

func confirmerFrom(c *gin.Context) queryConfirmer {
	return queryConfirmer{confirmed: c.Query("confirm") == "true"}
}

// respondFormError maps form controller failures onto the response
// envelope: validation errors are the user's to fix, a vanished edit target
// is benign, anything else is a write failure notice.
func respondFormError(c *gin.Context, err error) {
	var validation *usecase.ValidationError
	switch {
	case errors.As(err, &validation):
		middleware.TrackError("validation")
		utils.BadRequest(c, validation.Error())
	case errors.Is(err, model.ErrNotFound):
		utils.NotFound(c, "Record not found")
	default:
		middleware.TrackError("storage")
		utils.InternalError(c, "Failed to save record")
	}
}
