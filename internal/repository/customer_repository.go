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
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerCollection is the name of the customer collection in MongoDB
const CustomerCollection = "customer"

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindFirstByName(ctx context.Context, name string) (*domain.Customer, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type customerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new instance of CustomerRepository
func NewCustomerRepository(db *mongo.Database) CustomerRepository {
	return &customerRepository{collection: db.Collection(CustomerCollection)}
}

// Create inserts a new customer, assigning its identifier and both timestamps
func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	customer.ID = primitive.NewObjectID()
	customer.CreatedDate = now
	customer.LastModifiedDate = now

	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// Save replaces an existing customer document and refreshes its modified timestamp
func (r *customerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	customer.LastModifiedDate = time.Now().UTC().Truncate(time.Millisecond)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrCustomerNotFound
	}

	return customer, nil
}

// FindByID retrieves a customer by its identifier
func (r *customerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
	customer := &domain.Customer{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}

	return customer, nil
}

// FindAll retrieves every customer in the collection
func (r *customerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cursor.Close(ctx)

	customers := []domain.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}

	return customers, nil
}

// FindFirstByName retrieves the first customer with the given name, in the
// store's native order.
func (r *customerRepository) FindFirstByName(ctx context.Context, name string) (*domain.Customer, error) {
	customer := &domain.Customer{}
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by name: %w", err)
	}

	return customer, nil
}

// DeleteByID removes a customer. Deleting an absent identifier is not an error.
func (r *customerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
