package usecase

import (
	"strings"
	"time"

	"registro/model"

	"github.com/shopspring/decimal"
)

// ExpenseForm is the expense form input boundary. Amount and date arrive as
// strings and are parsed here, before any record exists.
type ExpenseForm struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Date        string `json:"date" binding:"omitempty,dateformat"`
}

type ExpensesDomain struct {
	Store *Store[model.Expense]
	Form  *FormController[model.Expense, ExpenseForm]
}

func NewExpensesDomain(adapter Adapter[model.Expense]) *ExpensesDomain {
	store := NewStore("expenses", adapter)
	return &ExpensesDomain{
		Store: store,
		Form: &FormController[model.Expense, ExpenseForm]{
			store:  store,
			build:  buildExpense,
			merge:  mergeExpense,
			formOf: expenseForm,
			label:  func(e model.Expense) string { return e.Description },
		},
	}
}

func buildExpense(form ExpenseForm) (model.Expense, error) {
	description := strings.TrimSpace(form.Description)
	if description == "" {
		return model.Expense{}, validationf("description is required")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil {
		return model.Expense{}, validationf("amount must be a number")
	}
	if !amount.IsPositive() {
		return model.Expense{}, validationf("amount must be greater than zero")
	}

	date := strings.TrimSpace(form.Date)
	if date == "" {
		return model.Expense{}, validationf("date is required")
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return model.Expense{}, validationf("date must be in %s format", model.DateLayout)
	}

	category := strings.TrimSpace(form.Category)
	if category == "" {
		category = model.DefaultExpenseCategory
	}

	return model.Expense{
		Description: description,
		Category:    category,
		Amount:      model.NewMoney(amount),
		Date:        date,
	}, nil
}

func mergeExpense(existing, candidate model.Expense) model.Expense {
	existing.Description = candidate.Description
	existing.Category = candidate.Category
	existing.Amount = candidate.Amount
	existing.Date = candidate.Date
	return existing
}

func expenseForm(e model.Expense) ExpenseForm {
	return ExpenseForm{
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount.String(),
		Date:        e.Date,
	}
}

// SumAmounts totals the amounts of a projected expense set exactly.
func SumAmounts(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount.Decimal)
	}
	return total
}
