package service

import (
	"context"
	"errors"
	"strings"

	"brewhouse/internal/domain"
	"brewhouse/internal/mapper"
	"brewhouse/internal/model"
	"brewhouse/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BeerService defines the interface for beer business logic
type BeerService interface {
	List(ctx context.Context, style string) ([]model.BeerDTO, error)
	Create(ctx context.Context, dto model.BeerDTO) (model.BeerDTO, error)
	FindByID(ctx context.Context, id string) (model.BeerDTO, error)
	FindFirstByName(ctx context.Context, name string) (model.BeerDTO, error)
	Update(ctx context.Context, id string, dto model.BeerDTO) (model.BeerDTO, error)
	Patch(ctx context.Context, id string, dto model.BeerDTO) (model.BeerDTO, error)
	Delete(ctx context.Context, id string) error
}

type beerService struct {
	repo repository.BeerRepository
}

// NewBeerService creates a new instance of BeerService
func NewBeerService(repo repository.BeerRepository) BeerService {
	return &beerService{repo: repo}
}

// List returns all beers, restricted to an exact style match when style is set
func (s *beerService) List(ctx context.Context, style string) ([]model.BeerDTO, error) {
	var (
		beers []domain.Beer
		err   error
	)
	if style != "" {
		beers, err = s.repo.FindByStyle(ctx, style)
	} else {
		beers, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]model.BeerDTO, 0, len(beers))
	for _, beer := range beers {
		dtos = append(dtos, mapper.ToBeerDTO(beer))
	}
	return dtos, nil
}

// Create validates and persists a new beer. Any inbound identifier is
// discarded; the store assigns one.
func (s *beerService) Create(ctx context.Context, dto model.BeerDTO) (model.BeerDTO, error) {
	if err := checkValid(dto); err != nil {
		return model.BeerDTO{}, err
	}

	beer := mapper.ToBeer(dto)
	created, err := s.repo.Create(ctx, &beer)
	if err != nil {
		return model.BeerDTO{}, err
	}

	return mapper.ToBeerDTO(*created), nil
}

// FindByID returns the beer with the given identifier
func (s *beerService) FindByID(ctx context.Context, id string) (model.BeerDTO, error) {
	objectID, err := parseID(id)
	if err != nil {
		return model.BeerDTO{}, ErrNotFound
	}

	beer, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return model.BeerDTO{}, s.translate(err)
	}

	return mapper.ToBeerDTO(*beer), nil
}

// FindFirstByName returns the first beer matching the given name
func (s *beerService) FindFirstByName(ctx context.Context, name string) (model.BeerDTO, error) {
	beer, err := s.repo.FindFirstByName(ctx, name)
	if err != nil {
		return model.BeerDTO{}, s.translate(err)
	}

	return mapper.ToBeerDTO(*beer), nil
}

// Update performs a full replace: every mutable field is overwritten with the
// incoming DTO's value, including blank and null ones.
func (s *beerService) Update(ctx context.Context, id string, dto model.BeerDTO) (model.BeerDTO, error) {
	if err := checkValid(dto); err != nil {
		return model.BeerDTO{}, err
	}

	objectID, err := parseID(id)
	if err != nil {
		return model.BeerDTO{}, ErrNotFound
	}

	saved, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return model.BeerDTO{}, s.translate(err)
	}

	saved.Name = dto.Name
	saved.Style = dto.Style
	saved.UPC = dto.UPC
	saved.QuantityOnHand = dto.QuantityOnHand
	saved.Price = mapper.DecimalToStore(dto.Price)

	updated, err := s.repo.Save(ctx, saved)
	if err != nil {
		return model.BeerDTO{}, s.translate(err)
	}

	return mapper.ToBeerDTO(*updated), nil
}

// Patch overwrites only the fields that are present in the incoming DTO:
// non-blank strings and non-nil numerics. Everything else is left unchanged.
func (s *beerService) Patch(ctx context.Context, id string, dto model.BeerDTO) (model.BeerDTO, error) {
	if err := checkValid(dto); err != nil {
		return model.BeerDTO{}, err
	}

	objectID, err := parseID(id)
	if err != nil {
		return model.BeerDTO{}, ErrNotFound
	}

	saved, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return model.BeerDTO{}, s.translate(err)
	}

	if strings.TrimSpace(dto.Name) != "" {
		saved.Name = dto.Name
	}
	if strings.TrimSpace(dto.Style) != "" {
		saved.Style = dto.Style
	}
	if strings.TrimSpace(dto.UPC) != "" {
		saved.UPC = dto.UPC
	}
	if dto.QuantityOnHand != nil {
		saved.QuantityOnHand = dto.QuantityOnHand
	}
	if dto.Price != nil {
		saved.Price = mapper.DecimalToStore(dto.Price)
	}

	patched, err := s.repo.Save(ctx, saved)
	if err != nil {
		return model.BeerDTO{}, s.translate(err)
	}

	return mapper.ToBeerDTO(*patched), nil
}

// Delete removes the beer if present. Deleting an absent or malformed
// identifier succeeds; callers that need 404-on-missing probe with FindByID.
func (s *beerService) Delete(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return nil
	}

	return s.repo.DeleteByID(ctx, objectID)
}

func (s *beerService) translate(err error) error {
	if errors.Is(err, repository.ErrBeerNotFound) {
		return ErrNotFound
	}
	return err
}

// parseID converts a path identifier into its ObjectID form. Malformed
// identifiers cannot name any record and resolve to not-found upstream.
func parseID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
