package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brewhouse/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrBeerNotFound = errors.New("beer not found")
)

// BeerCollection is the name of the beer collection in MongoDB
const BeerCollection = "beer"

// BeerRepository defines the interface for beer data access
type BeerRepository interface {
	Create(ctx context.Context, beer *domain.Beer) (*domain.Beer, error)
	Save(ctx context.Context, beer *domain.Beer) (*domain.Beer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Beer, error)
	FindAll(ctx context.Context) ([]domain.Beer, error)
	FindByStyle(ctx context.Context, style string) ([]domain.Beer, error)
	FindFirstByName(ctx context.Context, name string) (*domain.Beer, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type beerRepository struct {
	collection *mongo.Collection
}

// NewBeerRepository creates a new instance of BeerRepository
func NewBeerRepository(db *mongo.Database) BeerRepository {
	return &beerRepository{collection: db.Collection(BeerCollection)}
}

// Create inserts a new beer, assigning its identifier and both timestamps
func (r *beerRepository) Create(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	beer.ID = primitive.NewObjectID()
	beer.CreatedDate = now
	beer.LastModifiedDate = now

	if _, err := r.collection.InsertOne(ctx, beer); err != nil {
		return nil, fmt.Errorf("failed to create beer: %w", err)
	}

	return beer, nil
}

// Save replaces an existing beer document and refreshes its modified timestamp
func (r *beerRepository) Save(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	beer.LastModifiedDate = time.Now().UTC().Truncate(time.Millisecond)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": beer.ID}, beer)
	if err != nil {
		return nil, fmt.Errorf("failed to save beer: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrBeerNotFound
	}

	return beer, nil
}

// FindByID retrieves a beer by its identifier
func (r *beerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Beer, error) {
	beer := &domain.Beer{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(beer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBeerNotFound
		}
		return nil, fmt.Errorf("failed to find beer by ID: %w", err)
	}

	return beer, nil
}

// FindAll retrieves every beer in the collection
func (r *beerRepository) FindAll(ctx context.Context) ([]domain.Beer, error) {
	return r.find(ctx, bson.M{})
}

// FindByStyle retrieves all beers whose style matches exactly
func (r *beerRepository) FindByStyle(ctx context.Context, style string) ([]domain.Beer, error) {
	return r.find(ctx, bson.M{"style": style})
}

func (r *beerRepository) find(ctx context.Context, filter bson.M) ([]domain.Beer, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list beers: %w", err)
	}
	defer cursor.Close(ctx)

	beers := []domain.Beer{}
	if err := cursor.All(ctx, &beers); err != nil {
		return nil, fmt.Errorf("failed to decode beers: %w", err)
	}

	return beers, nil
}

// FindFirstByName retrieves the first beer with the given name, in the
// store's native order. Which record wins on duplicates is undefined.
func (r *beerRepository) FindFirstByName(ctx context.Context, name string) (*domain.Beer, error) {
	beer := &domain.Beer{}
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(beer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBeerNotFound
		}
		return nil, fmt.Errorf("failed to find beer by name: %w", err)
	}

	return beer, nil
}

// DeleteByID removes a beer. Deleting an absent identifier is not an error.
func (r *beerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete beer: %w", err)
	}

	return nil
}
