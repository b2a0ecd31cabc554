package expense

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// expenseCreator is the service surface for creating expenses.
type expenseCreator interface {
	CreateExpense(ctx context.Context, body map[string]any) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /expenses.
type CreateExpenseHandler struct {
	Service expenseCreator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{Service: svc}
}

func (h *CreateExpenseHandler) Handle(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	// UseNumber keeps amounts as their decimal text instead of float64.
	decoder := json.NewDecoder(req.Body)
	decoder.UseNumber()

	var body map[string]any
	if err := decoder.Decode(&body); err != nil {
		return apperror.Malformed(err)
	}

	stopTimer := logData.AddTiming("createExpenseMs")
	created, err := h.Service.CreateExpense(req.Context(), body)
	stopTimer()
	if err != nil {
		return err
	}

	logData.AddData("expenseID", created.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(toAPIExpense(*created))
}
