package database

import (
	"context"
	"fmt"
	"time"

	"brewhouse/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Service wraps the MongoDB client and the application database handle
type Service struct {
	client   *mongo.Client
	database *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping
func New(cfg config.MongoConfig) (*Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Service{
		client:   client,
		database: client.Database(cfg.Database),
	}, nil
}

// Database returns the application database handle
func (s *Service) Database() *mongo.Database {
	return s.database
}

// Health reports whether the store is reachable
func (s *Service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return map[string]string{
			"status": "down",
			"error":  err.Error(),
		}
	}

	return map[string]string{"status": "up"}
}

// Close disconnects the client
func (s *Service) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
