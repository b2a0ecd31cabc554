package expense

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// expenseLister is the service surface for listing expenses.
type expenseLister interface {
	ListExpenses(ctx context.Context, params service.ListParams) ([]service.Expense, service.Pagination, error)
}

// ListExpensesHandler handles GET /expenses.
type ListExpensesHandler struct {
	Service expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{Service: svc}
}

func (h *ListExpensesHandler) Handle(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	query := req.URL.Query()
	params := service.NormalizeListParams(
		query.Get("category"),
		query.Get("sort"),
		query.Get("page"),
		query.Get("limit"),
	)

	stopTimer := logData.AddTiming("listExpensesMs")
	records, pagination, err := h.Service.ListExpenses(req.Context(), params)
	stopTimer()
	if err != nil {
		return err
	}

	logData.AddData("expenseCount", len(records))

	resp := ListExpensesResponse{
		Data: make([]Expense, len(records)),
		Pagination: Pagination{
			Page:       pagination.Page,
			Limit:      pagination.Limit,
			Total:      pagination.Total,
			TotalPages: pagination.TotalPages,
		},
	}
	for i, record := range records {
		resp.Data[i] = toAPIExpense(record)
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(resp)
}
