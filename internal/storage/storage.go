package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

const connectTimeout = 10 * time.Second

// Storage bundles the mongo client and the collection wrappers.
type Storage struct {
	Client   *mongo.Client
	Expenses expense.ExpensesCollection
}

// NewStorage connects to the document store, verifies the connection, and
// ensures the listing indexes exist.
func NewStorage(env *config.Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(env.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	expenses := expense.NewCollection(client.Database(env.MongoDB))
	if err := expenses.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	return &Storage{
		Client:   client,
		Expenses: expenses,
	}, nil
}
