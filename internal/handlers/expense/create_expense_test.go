package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

type mockExpenseCreator struct {
	mock.Mock
}

func (m *mockExpenseCreator) CreateExpense(ctx context.Context, body map[string]any) (*service.Expense, error) {
	args := m.Called(ctx, body)
	record, _ := args.Get(0).(*service.Expense)
	return record, args.Error(1)
}

func createTestLogData(t *testing.T) *logging.LogData {
	t.Helper()
	return logging.NewLogData(logging.SetupLogging())
}

func TestCreateExpense_Success(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC)

	mockSvc := new(mockExpenseCreator)
	mockSvc.On("CreateExpense", mock.Anything, mock.MatchedBy(func(body map[string]any) bool {
		return body["amount"] == json.Number("42.5") && body["category"] == "Food"
	})).Return(&service.Expense{
		ID:          "65a4f0e8c3b2a1d4e5f6a7b8",
		Amount:      decimal.RequireFromString("42.5"),
		Category:    "Food",
		Description: "Lunch",
		Date:        date,
		CreatedAt:   createdAt,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/expenses",
		strings.NewReader(`{"amount": 42.5, "category": "Food", "description": "Lunch", "date": "2024-01-15"}`))
	w := httptest.NewRecorder()

	err := NewCreateExpenseHandler(mockSvc).Handle(w, req, createTestLogData(t))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"id": "65a4f0e8c3b2a1d4e5f6a7b8",
		"amount": 42.5,
		"category": "Food",
		"description": "Lunch",
		"date": "2024-01-15T00:00:00.000Z",
		"created_at": "2024-01-15T12:30:00.000Z"
	}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestCreateExpense_MalformedBody(t *testing.T) {
	mockSvc := new(mockExpenseCreator)

	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	err := NewCreateExpenseHandler(mockSvc).Handle(w, req, createTestLogData(t))

	var appErr *apperror.Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindMalformed, appErr.Kind)
	mockSvc.AssertNotCalled(t, "CreateExpense")
}

func TestCreateExpense_ValidationErrorPropagates(t *testing.T) {
	mockSvc := new(mockExpenseCreator)
	mockSvc.On("CreateExpense", mock.Anything, mock.Anything).
		Return(nil, apperror.Validation(map[string]string{"amount": "amount is required"}))

	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	err := NewCreateExpenseHandler(mockSvc).Handle(w, req, createTestLogData(t))

	var appErr *apperror.Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "amount is required", appErr.Details["amount"])
}

func TestCreateExpense_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseCreator)
	mockSvc.On("CreateExpense", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	req := httptest.NewRequest(http.MethodPost, "/expenses",
		strings.NewReader(`{"amount": 1, "category": "a", "description": "b", "date": "2024-01-15"}`))
	w := httptest.NewRecorder()

	err := NewCreateExpenseHandler(mockSvc).Handle(w, req, createTestLogData(t))

	assert.ErrorContains(t, err, "database unavailable")
}
