package expense

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "expenses"

// ExpensesCollection is the record store surface the service layer depends
// on. The three operations are independently awaitable; the service may run
// List and Count concurrently against the same filter.
type ExpensesCollection interface {
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	Count(ctx context.Context, filter *ExpenseFilter) (int64, error)
}

// Collection wraps the mongo expenses collection.
type Collection struct {
	coll *mongo.Collection
}

// NewCollection creates a Collection bound to the expenses collection of
// the given database.
func NewCollection(db *mongo.Database) *Collection {
	return &Collection{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the listing indexes. Safe to call on every startup.
func (c *Collection) EnsureIndexes(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}

// Insert stores a new document, assigning its id and created_at, and
// returns the stored row.
func (c *Collection) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	doc := &Expense{
		ID:          primitive.NewObjectID(),
		Amount:      create.Amount,
		Category:    create.Category,
		Description: create.Description,
		Date:        create.Date,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns the page of documents selected by the filter.
func (c *Collection) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	cursor, err := c.coll.Find(ctx, buildQuery(filter), buildFindOptions(filter))
	if err != nil {
		return nil, err
	}

	var rows []*Expense
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of documents matching the filter's category
// match, ignoring sort and paging.
func (c *Collection) Count(ctx context.Context, filter *ExpenseFilter) (int64, error) {
	return c.coll.CountDocuments(ctx, buildQuery(filter))
}

// buildQuery translates a filter into a mongo query document. The category
// value is quoted so regex metacharacters match literally.
func buildQuery(filter *ExpenseFilter) bson.M {
	query := bson.M{}
	if filter != nil && filter.Category != "" {
		query["category"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Category),
			Options: "i",
		}
	}
	return query
}

func buildFindOptions(filter *ExpenseFilter) *options.FindOptions {
	opts := options.Find()
	if filter == nil {
		return opts
	}
	if filter.DateDesc {
		opts.SetSort(bson.D{{Key: "date", Value: -1}})
	}
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	return opts
}
