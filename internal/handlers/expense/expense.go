package expense

import (
	"encoding/json"

	"github.com/carson-networks/expense-server/internal/service"
)

// timeFormat renders timestamps as UTC with millisecond precision.
const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// Expense is the API response model for an expense record. It is used only
// for responses, not for request bodies.
type Expense struct {
	ID          string      `json:"id"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	CreatedAt   string      `json:"created_at"`
}

// Pagination describes the returned page in a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ListExpensesResponse is the {data, pagination} envelope.
type ListExpensesResponse struct {
	Data       []Expense  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// toAPIExpense shapes a service record for the wire. The amount renders as
// a plain JSON number; the exact-decimal value stays in the store.
func toAPIExpense(record service.Expense) Expense {
	return Expense{
		ID:          record.ID,
		Amount:      json.Number(record.Amount.String()),
		Category:    record.Category,
		Description: record.Description,
		Date:        record.Date.UTC().Format(timeFormat),
		CreatedAt:   record.CreatedAt.UTC().Format(timeFormat),
	}
}
