package handler

import (
	"registro/middleware"
	"registro/usecase"
	"registro/utils"

	"github.com/gin-gonic/gin"
)

func ListExpensesHandler(c *gin.Context, expenses *usecase.ExpensesDomain) {
	records := usecase.Project(expenses.Store.Records(), projectionOptions(c))

	utils.Success(c, gin.H{
		"records":    records,
		"editing_id": expenses.Store.EditingID(),
	})
}

func ExpenseCategoriesHandler(c *gin.Context, expenses *usecase.ExpensesDomain) {
	utils.Success(c, usecase.Categories(expenses.Store.Records()))
}

// ExpenseSummaryHandler totals the currently projected expense set. It
// honors the same filters as the list view so the chart and the list always
// agree.
func ExpenseSummaryHandler(c *gin.Context, expenses *usecase.ExpensesDomain) {
	records := usecase.Project(expenses.Store.Records(), projectionOptions(c))

	utils.Success(c, gin.H{
		"total": usecase.SumAmounts(records),
		"count": len(records),
	})
}

func SubmitExpenseHandler(c *gin.Context, expenses *usecase.ExpensesDomain) {
	var form usecase.ExpenseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	editing := expenses.Store.EditingID() != ""
	saved, err := expenses.Form.Submit(c.Request.Context(), form)
	if err != nil {
		respondFormError(c, err)
		return
	}

	if editing {
		middleware.TrackRecordOperation("expenses", "update")
		utils.Success(c, saved)
		return
	}
	middleware.TrackRecordOperation("expenses", "create")
	utils.Created(c, saved)
}

// UpdateExpenseHandler binds before touching form state and clears the
// editing marker on failure; a rejected PUT must not leak edit mode into
// the next submit.
func UpdateExpenseHandler(c *gin.Context, expenses *usecase.ExpensesDomain) {
	var form usecase.ExpenseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if _, ok := expenses.Form.LoadForEdit(c.Param("id")); !ok {
		utils.NotFound(c, "Expense not found")
		return
	}

	saved, err := expenses.Form.Submit(c.Request.Context(), form)
	if err != nil {
		expenses.Form.Clear()
		respondFormError(c, err)
		return
	}

	middleware.TrackRecordOperation("expenses", "update")
	utils.Success(c, saved)
}

func EditExpenseHandler(c *gin.Context, expenses *usecase.ExpensesDomain) {
	form, ok := expenses.Form.LoadForEdit(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Expense not found")
		return
	}

	utils.Success(c, gin.H{
		"form":       form,
		"editing_id": expenses.Store.EditingID(),
	})
}

func ClearExpenseFormHandler(c *gin.Context, expenses *usecase.ExpensesDomain) {
	expenses.Form.Clear()
	utils.Success(c, gin.H{"editing_id": ""})
}

func DeleteExpenseHandler(c *gin.Context, expenses *usecase.ExpensesDomain) {
	deleted, err := expenses.Form.RequestDelete(c.Request.Context(), c.Param("id"), confirmerFrom(c))
	if err != nil {
		middleware.TrackError("storage")
		utils.InternalError(c, "Failed to delete expense")
		return
	}

	if deleted {
		middleware.TrackRecordOperation("expenses", "delete")
	}
	utils.Success(c, gin.H{"deleted": deleted})
}
