package service

import (
	"context"
	"errors"
	"strings"

	"brewhouse/internal/mapper"
	"brewhouse/internal/model"
	"brewhouse/internal/repository"
)

// CustomerService defines the interface for customer business logic
type CustomerService interface {
	List(ctx context.Context) ([]model.CustomerDTO, error)
	Create(ctx context.Context, dto model.CustomerDTO) (model.CustomerDTO, error)
	FindByID(ctx context.Context, id string) (model.CustomerDTO, error)
	FindFirstByName(ctx context.Context, name string) (model.CustomerDTO, error)
	Update(ctx context.Context, id string, dto model.CustomerDTO) (model.CustomerDTO, error)
	Patch(ctx context.Context, id string, dto model.CustomerDTO) (model.CustomerDTO, error)
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

// List returns all customers
func (s *customerService) List(ctx context.Context) ([]model.CustomerDTO, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.CustomerDTO, 0, len(customers))
	for _, customer := range customers {
		dtos = append(dtos, mapper.ToCustomerDTO(customer))
	}
	return dtos, nil
}

// Create validates and persists a new customer
func (s *customerService) Create(ctx context.Context, dto model.CustomerDTO) (model.CustomerDTO, error) {
	if err := checkValid(dto); err != nil {
		return model.CustomerDTO{}, err
	}

	customer := mapper.ToCustomer(dto)
	created, err := s.repo.Create(ctx, &customer)
	if err != nil {
		return model.CustomerDTO{}, err
	}

	return mapper.ToCustomerDTO(*created), nil
}

// FindByID returns the customer with the given identifier
func (s *customerService) FindByID(ctx context.Context, id string) (model.CustomerDTO, error) {
	objectID, err := parseID(id)
	if err != nil {
		return model.CustomerDTO{}, ErrNotFound
	}

	customer, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return model.CustomerDTO{}, s.translate(err)
	}

	return mapper.ToCustomerDTO(*customer), nil
}

// FindFirstByName returns the first customer matching the given name
func (s *customerService) FindFirstByName(ctx context.Context, name string) (model.CustomerDTO, error) {
	customer, err := s.repo.FindFirstByName(ctx, name)
	if err != nil {
		return model.CustomerDTO{}, s.translate(err)
	}

	return mapper.ToCustomerDTO(*customer), nil
}

// Update performs a full replace of the customer's mutable fields
func (s *customerService) Update(ctx context.Context, id string, dto model.CustomerDTO) (model.CustomerDTO, error) {
	if err := checkValid(dto); err != nil {
		return model.CustomerDTO{}, err
	}

	objectID, err := parseID(id)
	if err != nil {
		return model.CustomerDTO{}, ErrNotFound
	}

	saved, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return model.CustomerDTO{}, s.translate(err)
	}

	saved.Name = dto.Name

	updated, err := s.repo.Save(ctx, saved)
	if err != nil {
		return model.CustomerDTO{}, s.translate(err)
	}

	return mapper.ToCustomerDTO(*updated), nil
}

// Patch overwrites the name only when the incoming DTO carries a non-blank one
func (s *customerService) Patch(ctx context.Context, id string, dto model.CustomerDTO) (model.CustomerDTO, error) {
	if err := checkValid(dto); err != nil {
		return model.CustomerDTO{}, err
	}

	objectID, err := parseID(id)
	if err != nil {
		return model.CustomerDTO{}, ErrNotFound
	}

	saved, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return model.CustomerDTO{}, s.translate(err)
	}

	if strings.TrimSpace(dto.Name) != "" {
		saved.Name = dto.Name
	}

	patched, err := s.repo.Save(ctx, saved)
	if err != nil {
		return model.CustomerDTO{}, s.translate(err)
	}

	return mapper.ToCustomerDTO(*patched), nil
}

// Delete removes the customer if present, succeeding unconditionally
func (s *customerService) Delete(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return nil
	}

	return s.repo.DeleteByID(ctx, objectID)
}

func (s *customerService) translate(err error) error {
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return ErrNotFound
	}
	return err
}
