package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brewhouse/internal/domain"
	"brewhouse/internal/repository"
	"brewhouse/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Map-backed repositories standing in for the document store

type stubBeerRepository struct {
	beers map[primitive.ObjectID]domain.Beer
}

func newStubBeerRepository() *stubBeerRepository {
	return &stubBeerRepository{beers: make(map[primitive.ObjectID]domain.Beer)}
}

func (s *stubBeerRepository) Create(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	beer.ID = primitive.NewObjectID()
	beer.CreatedDate = now
	beer.LastModifiedDate = now
	s.beers[beer.ID] = *beer
	return beer, nil
}

func (s *stubBeerRepository) Save(ctx context.Context, beer *domain.Beer) (*domain.Beer, error) {
	if _, exists := s.beers[beer.ID]; !exists {
		return nil, repository.ErrBeerNotFound
	}
	beer.LastModifiedDate = time.Now().UTC().Truncate(time.Millisecond)
	s.beers[beer.ID] = *beer
	return beer, nil
}

func (s *stubBeerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Beer, error) {
	beer, exists := s.beers[id]
	if !exists {
		return nil, repository.ErrBeerNotFound
	}
	return &beer, nil
}

func (s *stubBeerRepository) FindAll(ctx context.Context) ([]domain.Beer, error) {
	beers := []domain.Beer{}
	for _, beer := range s.beers {
		beers = append(beers, beer)
	}
	return beers, nil
}

func (s *stubBeerRepository) FindByStyle(ctx context.Context, style string) ([]domain.Beer, error) {
	beers := []domain.Beer{}
	for _, beer := range s.beers {
		if beer.Style == style {
			beers = append(beers, beer)
		}
	}
	return beers, nil
}

func (s *stubBeerRepository) FindFirstByName(ctx context.Context, name string) (*domain.Beer, error) {
	for _, beer := range s.beers {
		if beer.Name == name {
			found := beer
			return &found, nil
		}
	}
	return nil, repository.ErrBeerNotFound
}

func (s *stubBeerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	delete(s.beers, id)
	return nil
}

type stubCustomerRepository struct {
	customers map[primitive.ObjectID]domain.Customer
}

func newStubCustomerRepository() *stubCustomerRepository {
	return &stubCustomerRepository{customers: make(map[primitive.ObjectID]domain.Customer)}
}

func (s *stubCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	customer.ID = primitive.NewObjectID()
	customer.CreatedDate = now
	customer.LastModifiedDate = now
	s.customers[customer.ID] = *customer
	return customer, nil
}

func (s *stubCustomerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if _, exists := s.customers[customer.ID]; !exists {
		return nil, repository.ErrCustomerNotFound
	}
	customer.LastModifiedDate = time.Now().UTC().Truncate(time.Millisecond)
	s.customers[customer.ID] = *customer
	return customer, nil
}

func (s *stubCustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
	customer, exists := s.customers[id]
	if !exists {
		return nil, repository.ErrCustomerNotFound
	}
	return &customer, nil
}

func (s *stubCustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	for _, customer := range s.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

func (s *stubCustomerRepository) FindFirstByName(ctx context.Context, name string) (*domain.Customer, error) {
	for _, customer := range s.customers {
		if customer.Name == name {
			found := customer
			return &found, nil
		}
	}
	return nil, repository.ErrCustomerNotFound
}

func (s *stubCustomerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	delete(s.customers, id)
	return nil
}

// passthroughAuth stands in for the JWT middleware on tests that exercise
// resource behavior rather than authentication.
func passthroughAuth(next http.Handler) http.Handler {
	return next
}

func newTestRouter() chi.Router {
	logger := zap.NewNop()
	r := chi.NewRouter()

	beerHandler := NewBeerHandler(service.NewBeerService(newStubBeerRepository()), logger)
	beerHandler.RegisterRoutes(r, passthroughAuth)

	customerHandler := NewCustomerHandler(service.NewCustomerService(newStubCustomerRepository()), logger)
	customerHandler.RegisterRoutes(r, passthroughAuth)

	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func httptestRequest(method, path, bearerToken string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}
	return req
}

func serve(router chi.Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
