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
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this title already exists in the store")
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	FindByStoreID(ctx context.Context, storeID string) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Save(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, category *domain.Category) error
	ExistsByTitleAndStoreID(ctx context.Context, title, storeID string) (bool, error)
}

type categoryRepository struct {
	categories *document.Collection[categoryEntity]
}

// NewCategoryRepository creates a new instance of CategoryRepository backed
// by the categories collection.
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{
		categories: document.NewCollection[categoryEntity](db, "categories"),
	}
}

// FindByStoreID retrieves all categories belonging to a store. An empty
// store yields an empty slice, not an error.
func (r *categoryRepository) FindByStoreID(ctx context.Context, storeID string) ([]*domain.Category, error) {
	entities, err := r.categories.Find(ctx, document.Filter{"store_id": storeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories by store: %w", err)
	}

	return mapSlice(entities, categoryToDomain), nil
}

// FindByID retrieves a category by ID.
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	entity, err := r.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return categoryToDomain(entity), nil
}

// Save upserts a category, re-stamping timestamps and assigning an
// identifier on first save. A unique-index conflict on (title, store_id)
// is reported as ErrCategoryAlreadyExists.
func (r *categoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	category.Touch()

	entity := categoryToEntity(category)
	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}

	if err := r.categories.Save(ctx, entity.ID, entity); err != nil {
		if errors.Is(err, document.ErrConflict) {
			return nil, ErrCategoryAlreadyExists
		}
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	return categoryToDomain(entity), nil
}

// Delete removes an already-fetched category from the collection.
func (r *categoryRepository) Delete(ctx context.Context, category *domain.Category) error {
	entity := categoryToEntity(category)

	if err := r.categories.Delete(ctx, entity.ID); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// ExistsByTitleAndStoreID is a pass-through existence probe scoped by the
// tenant key; it never loads document bodies.
func (r *categoryRepository) ExistsByTitleAndStoreID(ctx context.Context, title, storeID string) (bool, error) {
	exists, err := r.categories.Exists(ctx, document.Filter{"title": title, "store_id": storeID})
	if err != nil {
		return false, fmt.Errorf("failed to check category title: %w", err)
	}

	return exists, nil
}
