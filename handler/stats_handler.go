package handler

import (
	"registro/usecase"
	"registro/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	notes    *usecase.NotesDomain
	expenses *usecase.ExpensesDomain
	wiki     *usecase.WikiDomain
}

func NewStatsHandler(
	notes *usecase.NotesDomain,
	expenses *usecase.ExpensesDomain,
	wiki *usecase.WikiDomain,
) *StatsHandler {
	return &StatsHandler{
		notes:    notes,
		expenses: expenses,
		wiki:     wiki,
	}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	utils.Success(c, gin.H{
		"records": gin.H{
			"notes":         h.notes.Store.Len(),
			"expenses":      h.expenses.Store.Len(),
			"wiki_commands": h.wiki.Store.Len(),
		},
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
	})
}
