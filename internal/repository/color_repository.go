package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-core/internal/document"
	"catalog-core/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrColorNotFound      = errors.New("color not found")
	ErrColorAlreadyExists = errors.New("color with this name or value already exists in the store")
)

// ColorRepository defines the interface for color data access. Colors
// carry two independent per-store uniqueness predicates, one on the name
// and one on the value.
type ColorRepository interface {
	FindByStoreID(ctx context.Context, storeID string) ([]*domain.Color, error)
	FindByID(ctx context.Context, id string) (*domain.Color, error)
	Save(ctx context.Context, color *domain.Color) (*domain.Color, error)
	Delete(ctx context.Context, color *domain.Color) error
	ExistsByNameAndStoreID(ctx context.Context, name, storeID string) (bool, error)
	ExistsByValueAndStoreID(ctx context.Context, value, storeID string) (bool, error)
}

type colorRepository struct {
	colors *document.Collection[colorEntity]
}

// NewColorRepository creates a new instance of ColorRepository backed by
// the colors collection.
func NewColorRepository(db *sql.DB) ColorRepository {
	return &colorRepository{
		colors: document.NewCollection[colorEntity](db, "colors"),
	}
}

// FindByStoreID retrieves all colors belonging to a store.
func (r *colorRepository) FindByStoreID(ctx context.Context, storeID string) ([]*domain.Color, error) {
	entities, err := r.colors.Find(ctx, document.Filter{"store_id": storeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list colors by store: %w", err)
	}

	return mapSlice(entities, colorToDomain), nil
}

// FindByID retrieves a color by ID.
func (r *colorRepository) FindByID(ctx context.Context, id string) (*domain.Color, error) {
	entity, err := r.colors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrColorNotFound
		}
		return nil, fmt.Errorf("failed to find color by ID: %w", err)
	}

	return colorToDomain(entity), nil
}

// Save upserts a color, re-stamping timestamps and assigning an identifier
// on first save. A conflict on either unique index is reported as
// ErrColorAlreadyExists.
func (r *colorRepository) Save(ctx context.Context, color *domain.Color) (*domain.Color, error) {
	color.Touch()

	entity := colorToEntity(color)
	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}

	if err := r.colors.Save(ctx, entity.ID, entity); err != nil {
		if errors.Is(err, document.ErrConflict) {
			return nil, ErrColorAlreadyExists
		}
		return nil, fmt.Errorf("failed to save color: %w", err)
	}

	return colorToDomain(entity), nil
}

// Delete removes an already-fetched color from the collection.
func (r *colorRepository) Delete(ctx context.Context, color *domain.Color) error {
	entity := colorToEntity(color)

	if err := r.colors.Delete(ctx, entity.ID); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrColorNotFound
		}
		return fmt.Errorf("failed to delete color: %w", err)
	}

	return nil
}

// ExistsByNameAndStoreID probes the name-uniqueness predicate.
func (r *colorRepository) ExistsByNameAndStoreID(ctx context.Context, name, storeID string) (bool, error) {
	exists, err := r.colors.Exists(ctx, document.Filter{"name": name, "store_id": storeID})
	if err != nil {
		return false, fmt.Errorf("failed to check color name: %w", err)
	}

	return exists, nil
}

// ExistsByValueAndStoreID probes the value-uniqueness predicate.
func (r *colorRepository) ExistsByValueAndStoreID(ctx context.Context, value, storeID string) (bool, error) {
	exists, err := r.colors.Exists(ctx, document.Filter{"value": value, "store_id": storeID})
	if err != nil {
		return false, fmt.Errorf("failed to check color value: %w", err)
	}

	return exists, nil
}
