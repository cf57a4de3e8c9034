package service

import (
	"context"
	"fmt"

	"catalog-core/internal/domain"
	"catalog-core/internal/repository"
)

// ColorService defines the interface for color business logic.
type ColorService interface {
	FindByStoreID(ctx context.Context, storeID string) ([]*domain.Color, error)
	FindByID(ctx context.Context, id string) (*domain.Color, error)
	Create(ctx context.Context, color *domain.Color) (*domain.Color, error)
	Update(ctx context.Context, id string, color *domain.Color) (*domain.Color, error)
	Delete(ctx context.Context, id string) error
}

type colorService struct {
	colorRepo repository.ColorRepository
}

// NewColorService creates a new instance of ColorService.
func NewColorService(colorRepo repository.ColorRepository) ColorService {
	return &colorService{colorRepo: colorRepo}
}

// FindByStoreID lists a store's colors.
func (s *colorService) FindByStoreID(ctx context.Context, storeID string) ([]*domain.Color, error) {
	colors, err := s.colorRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors for store %q: %w", storeID, err)
	}

	return colors, nil
}

// FindByID retrieves a single color, failing with
// repository.ErrColorNotFound when absent.
func (s *colorService) FindByID(ctx context.Context, id string) (*domain.Color, error) {
	color, err := s.colorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("color with id %q: %w", id, err)
	}

	return color, nil
}

// Create persists a new color after checking both per-store uniqueness
// predicates, name and value. As with categories, the unique indexes are
// the authoritative backstop for concurrent creates.
func (s *colorService) Create(ctx context.Context, color *domain.Color) (*domain.Color, error) {
	nameTaken, err := s.colorRepo.ExistsByNameAndStoreID(ctx, color.Name, color.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to check color name: %w", err)
	}
	if nameTaken {
		return nil, fmt.Errorf("color with name %q in store %q: %w",
			color.Name, color.StoreID, repository.ErrColorAlreadyExists)
	}

	valueTaken, err := s.colorRepo.ExistsByValueAndStoreID(ctx, color.Value, color.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to check color value: %w", err)
	}
	if valueTaken {
		return nil, fmt.Errorf("color with value %q in store %q: %w",
			color.Value, color.StoreID, repository.ErrColorAlreadyExists)
	}

	color.Touch()

	created, err := s.colorRepo.Save(ctx, color)
	if err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}

	return created, nil
}

// Update loads the existing color, overwrites its name and value
// (identifier and store are immutable after creation), re-stamps UpdatedAt,
// and returns the merged, persisted entity.
func (s *colorService) Update(ctx context.Context, id string, color *domain.Color) (*domain.Color, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = color.Name
	existing.Value = color.Value
	existing.Touch()

	updated, err := s.colorRepo.Save(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update color with id %q: %w", id, err)
	}

	return updated, nil
}

// Delete removes a color, fetching it first so a missing id fails with
// NotFound before any delete reaches the store.
func (s *colorService) Delete(ctx context.Context, id string) error {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.colorRepo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("failed to delete color with id %q: %w", id, err)
	}

	return nil
}
