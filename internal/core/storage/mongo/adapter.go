package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	"github.com/aevon-lab/reward-points/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	connectTimeout = 10 * time.Second

	DefaultDatabase   = "rewards"
	DefaultCollection = "userRewards"
)

// Adapter implements storage.DocumentStore on a MongoDB collection, one
// BSON document per period key.
type Adapter struct {
	client     *driver.Client
	collection *driver.Collection
}

// NewAdapter connects to MongoDB and binds the given collection. Writes use
// majority write concern so an acknowledged write is a durable one.
func NewAdapter(uri, database, collection string) (*Adapter, error) {
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := driver.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetWriteConcern(writeconcern.Majority()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	slog.Info("[Mongo] Adapter initialized", "database", database, "collection", collection)

	return &Adapter{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Exists reports whether a document with id is stored.
func (a *Adapter) Exists(ctx context.Context, id string) (bool, error) {
	n, err := a.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check document %s: %w", id, err)
	}
	return n > 0, nil
}

// Insert creates doc. A duplicate-key race is resolved by appending to the
// document that won.
func (a *Adapter) Insert(ctx context.Context, doc *v1.PeriodDocument) error {
	if doc.Rewards == nil {
		doc.Rewards = []v1.Reward{}
	}

	_, err := a.collection.InsertOne(ctx, doc)
	if driver.IsDuplicateKeyError(err) {
		slog.Debug("[Mongo] Insert lost race, appending", "id", doc.ID)
		return a.Append(ctx, doc.ID, doc.Rewards)
	}
	if err != nil {
		return classify(fmt.Sprintf("insert document %s", doc.ID), err)
	}
	return nil
}

// Append pushes rewards onto the end of the document's rewards array.
func (a *Adapter) Append(ctx context.Context, id string, rewards []v1.Reward) error {
	update := bson.M{"$push": bson.M{"rewards": bson.M{"$each": rewards}}}

	result, err := a.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return classify(fmt.Sprintf("append to document %s", id), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("append to document %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// SumRewards totals rewardPointAmt with $match/$unwind/$group. No matching
// document produces no group row, which reads as 0.
func (a *Adapter) SumRewards(ctx context.Context, id string) (int64, error) {
	pipeline := driver.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$unwind", Value: "$rewards"}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$rewards.rewardPointAmt"},
		}}},
	}

	cursor, err := a.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum rewards for %s: %w", id, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return 0, fmt.Errorf("failed to sum rewards for %s: %w", id, err)
		}
		return 0, nil
	}

	var row struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.Decode(&row); err != nil {
		return 0, fmt.Errorf("failed to decode reward sum for %s: %w", id, err)
	}
	return row.Total, nil
}

// Ping checks server connectivity.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (a *Adapter) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := a.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}
	slog.Info("[Mongo] Adapter closed gracefully")
	return nil
}

// classify maps the driver's unacknowledged-write error onto the store sentinel.
func classify(op string, err error) error {
	if errors.Is(err, driver.ErrUnacknowledgedWrite) {
		return fmt.Errorf("%s: %w", op, storage.ErrUnacknowledged)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
