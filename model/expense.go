package model

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date form used by expenses. There is no time
// component in the domain.
const DateLayout = "2006-01-02"

// DefaultExpenseCategory is assigned when an expense is submitted without a
// category.
const DefaultExpenseCategory = "Sem categoria"

type Expense struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Description string `bson:"description" json:"description"`
	Category    string `bson:"category" json:"category"`
	Amount      Money  `bson:"amount" json:"amount"`
	Date        string `bson:"date" json:"date"`
}

func (e Expense) RecordID() string {
	return e.ID
}

func (e Expense) CategoryKey() string {
	return e.Category
}

func (e Expense) SearchableText() string {
	return strings.Join([]string{e.Description, e.Category, e.Date}, "\n")
}

func (e Expense) SortTitle() string {
	return e.Description
}

func (e Expense) SortTime() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (e Expense) Stamped(id string, now time.Time) Expense {
	e.ID = id
	return e
}

func (e Expense) Touched(now time.Time) Expense {
	return e
}
