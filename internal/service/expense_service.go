package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
	"github.com/carson-networks/expense-server/internal/validation"
)

// ExpenseService handles expense business logic.
type ExpenseService struct {
	storage *storage.Storage
	logger  *logrus.Logger
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage, logger *logrus.Logger) *ExpenseService {
	return &ExpenseService{storage: store, logger: logger}
}

// CreateExpense validates a raw request body and persists the record.
// Field violations come back as a tagged validation error carrying the
// full field -> message mapping; nothing is inserted in that case.
func (s *ExpenseService) CreateExpense(ctx context.Context, body map[string]any) (*Expense, error) {
	normalized, fieldErrors := validation.Validate(body)
	if len(fieldErrors) > 0 {
		return nil, apperror.Validation(fieldErrors)
	}

	amount, err := primitive.ParseDecimal128(normalized.Amount.String())
	if err != nil {
		return nil, apperror.Malformed(err)
	}

	row, err := s.storage.Expenses.Insert(ctx, &expense.ExpenseCreate{
		Amount:      amount,
		Category:    normalized.Category,
		Description: normalized.Description,
		Date:        normalized.Date,
	})
	if err != nil {
		return nil, apperror.FromStore(err)
	}

	created := fromStorage(row)

	// Only id and category; full records stay out of the logs.
	s.logger.WithFields(logrus.Fields{
		"id":       created.ID,
		"category": created.Category,
	}).Info("ExpenseService.CreateExpense.created")

	return created, nil
}

// ListExpenses runs the page scan and the matching-record count
// concurrently under the same filter and joins them before shaping the
// result. The two reads may observe different store snapshots.
func (s *ExpenseService) ListExpenses(ctx context.Context, params ListParams) ([]Expense, Pagination, error) {
	filter := &expense.ExpenseFilter{
		Category: params.Category,
		DateDesc: params.DateDesc,
		Skip:     int64(params.Page-1) * int64(params.Limit),
		Limit:    int64(params.Limit),
	}

	var rows []*expense.Expense
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listed, err := s.storage.Expenses.List(gctx, filter)
		if err != nil {
			return err
		}
		rows = listed
		return nil
	})
	g.Go(func() error {
		counted, err := s.storage.Expenses.Count(gctx, filter)
		if err != nil {
			return err
		}
		total = counted
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, Pagination{}, apperror.FromStore(err)
	}

	converted := make([]Expense, len(rows))
	for i, row := range rows {
		converted[i] = *fromStorage(row)
	}

	totalPages := (total + int64(params.Limit) - 1) / int64(params.Limit)
	if totalPages < 1 {
		totalPages = 1
	}

	return converted, Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// fromStorage maps a stored document onto the service model. Decimal128
// always renders a parseable decimal string, so the error branch only
// fires on a corrupt document.
func fromStorage(row *expense.Expense) *Expense {
	amount, err := decimal.NewFromString(row.Amount.String())
	if err != nil {
		amount = decimal.Zero
	}
	return &Expense{
		ID:          row.ID.Hex(),
		Amount:      amount,
		Category:    row.Category,
		Description: row.Description,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
	}
}
