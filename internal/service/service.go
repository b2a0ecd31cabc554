package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, logger *logrus.Logger) *Service {
	return &Service{
		Expense: NewExpenseService(store, logger),
	}
}
