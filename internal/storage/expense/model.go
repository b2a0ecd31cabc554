package expense

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is the stored document for one expense record. Amounts are kept
// as Decimal128 so persisted values never pass through binary floating
// point.
type Expense struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Category    string               `bson:"category"`
	Description string               `bson:"description"`
	Date        time.Time            `bson:"date"`
	CreatedAt   time.Time            `bson:"created_at"`
}

// ExpenseCreate carries the fields for a new document. The id and
// created_at are assigned at insert and are never client-supplied.
type ExpenseCreate struct {
	Amount      primitive.Decimal128
	Category    string
	Description string
	Date        time.Time
}

// ExpenseFilter bounds a List or Count scan. Count applies only the
// category match; sort and paging are ignored there.
type ExpenseFilter struct {
	// Category matches as a case-insensitive literal containment when
	// non-empty. Metacharacters in the value are escaped, not interpreted.
	Category string
	DateDesc bool
	Skip     int64
	Limit    int64
}
