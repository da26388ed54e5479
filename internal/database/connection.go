package database

import (
	"context"
	"fmt"
	"time"

	"github.com/aashari/go-openai-text-api/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// UsageCollection stores one document per provider call
const UsageCollection = "usage-records"

// Connection holds the MongoDB connection and configuration
type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *DatabaseConfig
}

// Connect opens and verifies a MongoDB connection and ensures indexes
func Connect(ctx context.Context, config *DatabaseConfig) (*Connection, error) {
	ctx = logger.WithComponent(ctx, logger.ComponentNames.Database)
	ctx = logger.WithStage(ctx, logger.LogStages.DatabaseOperation)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.GetConnectionString())
	if config.AppName != "" {
		clientOptions.SetAppName(config.AppName)
	}

	masked := config.MaskSensitiveData()
	logger.Info(ctx, "Connecting to MongoDB",
		"database", masked.DatabaseName,
		"uri", masked.URI,
	)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	connection := &Connection{
		Client:   client,
		Database: client.Database(config.DatabaseName),
		Config:   config,
	}

	logger.Info(ctx, "Connected to MongoDB", "database", config.DatabaseName)

	// Index creation failures only cost query performance
	if err := connection.createIndexes(connectCtx); err != nil {
		logger.Warn(ctx, "Failed to create database indexes", "error_message", err.Error())
	}

	return connection, nil
}

// Disconnect closes the MongoDB connection
func (c *Connection) Disconnect(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Disconnect(ctx)
}

// Ping checks that the primary is reachable
func (c *Connection) Ping(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return fmt.Errorf("MongoDB client is nil")
	}
	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	return nil
}

// GetCollection returns a MongoDB collection
func (c *Connection) GetCollection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

func (c *Connection) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "request_id", Value: 1}},
			Options: options.Index().SetName("request_id"),
		},
		{
			Keys:    bson.D{{Key: "parameters.model", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("model_created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("status_created_at_desc"),
		},
	}

	if _, err := c.GetCollection(UsageCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", UsageCollection, err)
	}
	return nil
}
