package service

import (
	"context"
	"time"

	"brewhouse/internal/domain"
	"brewhouse/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Map-backed repositories standing in for the document store

type mockBeerRepository struct {
	beers map[primitive.ObjectID]domain.Beer
}

func newMockBeerRepository() *mockBeerRepository {
	return &mockBeerRepository{
		beers: make(map[primitive.ObjectID]domain.Beer),
	}
}

func (m *mockBeerRepository) Create(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	beer.ID = primitive.NewObjectID()
	beer.CreatedDate = now
	beer.LastModifiedDate = now
	m.beers[beer.ID] = *beer
	return beer, nil
}

func (m *mockBeerRepository) Save(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	if _, exists := m.beers[beer.ID]; !exists {
		return nil, repository.ErrBeerNotFound
	}
	beer.LastModifiedDate = time.Now().UTC().Truncate(time.Millisecond)
	m.beers[beer.ID] = *beer
	return beer, nil
}

func (m *mockBeerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Beer, error) {
	beer, exists := m.beers[id]
	if !exists {
		return nil, repository.ErrBeerNotFound
	}
	return &beer, nil
}

func (m *mockBeerRepository) FindAll(ctx context.Context) ([]domain.Beer, error) {
	beers := []domain.Beer{}
	for _, beer := range m.beers {
		beers = append(beers, beer)
	}
	return beers, nil
}

func (m *mockBeerRepository) FindByStyle(ctx context.Context, style string) ([]domain.Beer, error) {
	beers := []domain.Beer{}
	for _, beer := range m.beers {
		if beer.Style == style {
			beers = append(beers, beer)
		}
	}
	return beers, nil
}

func (m *mockBeerRepository) FindFirstByName(ctx context.Context, name string) (*domain.Beer, error) {
	for _, beer := range m.beers {
		if beer.Name == name {
			found := beer
			return &found, nil
		}
	}
	return nil, repository.ErrBeerNotFound
}

func (m *mockBeerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	delete(m.beers, id)
	return nil
}

type mockCustomerRepository struct {
	customers map[primitive.ObjectID]domain.Customer
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{
		customers: make(map[primitive.ObjectID]domain.Customer),
	}
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	customer.ID = primitive.NewObjectID()
	customer.CreatedDate = now
	customer.LastModifiedDate = now
	m.customers[customer.ID] = *customer
	return customer, nil
}

func (m *mockCustomerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if _, exists := m.customers[customer.ID]; !exists {
		return nil, repository.ErrCustomerNotFound
	}
	customer.LastModifiedDate = time.Now().UTC().Truncate(time.Millisecond)
	m.customers[customer.ID] = *customer
	return customer, nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
	customer, exists := m.customers[id]
	if !exists {
		return nil, repository.ErrCustomerNotFound
	}
	return &customer, nil
}

func (m *mockCustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	for _, customer := range m.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

func (m *mockCustomerRepository) FindFirstByName(ctx context.Context, name string) (*domain.Customer, error) {
	for _, customer := range m.customers {
		if customer.Name == name {
			found := customer
			return &found, nil
		}
	}
	return nil, repository.ErrCustomerNotFound
}

func (m *mockCustomerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	delete(m.customers, id)
	return nil
}
