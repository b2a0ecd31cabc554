package validation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the normalized payload produced by a successful validation.
type Expense struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// dateFormats lists the accepted date representations. Date-only values
// resolve to UTC midnight.
var dateFormats = []string{time.RFC3339Nano, "2006-01-02"}

// Validate checks a raw request body and returns either the normalized
// expense or a field -> message mapping. Every rule runs; violations are
// collected, never short-circuited. The function has no side effects.
func Validate(body map[string]any) (*Expense, map[string]string) {
	fieldErrors := make(map[string]string)
	out := &Expense{}

	if amount, msg := validateAmount(body["amount"]); msg != "" {
		fieldErrors["amount"] = msg
	} else {
		out.Amount = amount
	}

	if category, msg := validateText(body["category"], "category"); msg != "" {
		fieldErrors["category"] = msg
	} else {
		out.Category = category
	}

	if description, msg := validateText(body["description"], "description"); msg != "" {
		fieldErrors["description"] = msg
	} else {
		out.Description = description
	}

	if date, msg := validateDate(body["date"]); msg != "" {
		fieldErrors["date"] = msg
	} else {
		out.Date = date
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return out, nil
}

// validateAmount accepts JSON numbers, json.Number, and numeric strings.
func validateAmount(raw any) (decimal.Decimal, string) {
	var parsed decimal.Decimal

	switch v := raw.(type) {
	case nil:
		return decimal.Zero, "amount is required"
	case json.Number:
		p, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, "amount must be a number"
		}
		parsed = p
	case float64:
		parsed = decimal.NewFromFloat(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Zero, "amount is required"
		}
		p, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero, "amount must be a number"
		}
		parsed = p
	default:
		return decimal.Zero, "amount must be a number"
	}

	if parsed.Sign() <= 0 {
		return decimal.Zero, "amount must be greater than zero"
	}
	return parsed, ""
}

func validateText(raw any, field string) (string, string) {
	switch v := raw.(type) {
	case nil:
		return "", field + " is required and must be a non-empty string"
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return "", field + " is required and must be a non-empty string"
		}
		return trimmed, ""
	default:
		return "", field + " must be a string"
	}
}

func validateDate(raw any) (time.Time, string) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, "date is required"
	case string:
		if strings.TrimSpace(v) == "" {
			return time.Time{}, "date is required"
		}
		for _, layout := range dateFormats {
			if parsed, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return parsed, ""
			}
		}
		return time.Time{}, "date must be a valid date"
	default:
		return time.Time{}, "date must be a valid date"
	}
}
