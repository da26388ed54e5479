package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UsageRepository provides operations for usage records
type UsageRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewUsageRepository returns a repository over the usage collection
func NewUsageRepository(conn *Connection) *UsageRepository {
	return newUsageRepository(conn.GetCollection(UsageCollection))
}

func newUsageRepository(collection *mongo.Collection) *UsageRepository {
	return &UsageRepository{collection: collection, now: time.Now}
}

// InsertUsageRecord inserts a new usage record
func (r *UsageRepository) InsertUsageRecord(ctx context.Context, record *UsageRecordDocument) error {
	record.CreatedAt = r.now().UTC()

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert usage record: %w", err)
	}
	return nil
}

// FindByRequestID returns the usage records of one request, oldest first.
func (r *UsageRepository) FindByRequestID(ctx context.Context, requestID string) ([]*UsageRecordDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return r.find(ctx, bson.M{"request_id": requestID}, opts)
}

// FindRecent returns the most recent usage records with pagination
func (r *UsageRepository) FindRecent(ctx context.Context, limit, offset int64) ([]*UsageRecordDocument, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)
	return r.find(ctx, bson.M{}, opts)
}

// FindLatestByModel returns the latest usage record for a model, or nil
func (r *UsageRepository) FindLatestByModel(ctx context.Context, model string) (*UsageRecordDocument, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var record UsageRecordDocument
	err := r.collection.FindOne(ctx, bson.M{"parameters.model": model}, opts).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get usage record by model: %w", err)
	}
	return &record, nil
}

func (r *UsageRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*UsageRecordDocument, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find usage records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*UsageRecordDocument
	for cursor.Next(ctx) {
		var record UsageRecordDocument
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("failed to decode usage record: %w", err)
		}
		records = append(records, &record)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return records, nil
}
