package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense record in the service layer.
type Expense struct {
	ID          string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListParams are normalized listing parameters. Build them with
// NormalizeListParams; the zero value is not valid.
type ListParams struct {
	Category string
	DateDesc bool
	Page     int
	Limit    int
}

// Pagination describes the page of results a listing returned.
type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}

// NormalizeListParams maps raw query values onto valid listing parameters.
// page clamps up to 1 when non-numeric or below 1. limit resolves to 10
// when non-numeric or below 1 and clamps down to 100. Only "date_desc" is
// a recognized sort; anything else keeps the store-default order.
func NormalizeListParams(category, sort, page, limit string) ListParams {
	params := ListParams{
		Category: strings.TrimSpace(category),
		DateDesc: sort == "date_desc",
		Page:     defaultPage,
		Limit:    defaultLimit,
	}

	if n, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && n >= 1 {
		params.Page = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && n >= 1 {
		params.Limit = n
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	return params
}
