package service

import (
	"context"
	"fmt"

	"catalog-core/internal/domain"
	"catalog-core/internal/repository"
)

// CategoryService defines the interface for category business logic.
type CategoryService interface {
	FindByStoreID(ctx context.Context, storeID string) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// FindByStoreID lists a store's categories. An empty store is a valid,
// non-error result.
func (s *categoryService) FindByStoreID(ctx context.Context, storeID string) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for store %q: %w", storeID, err)
	}

	return categories, nil
}

// FindByID retrieves a single category, failing with
// repository.ErrCategoryNotFound when absent.
func (s *categoryService) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category with id %q: %w", id, err)
	}

	return category, nil
}

// Create persists a new category after checking the per-store title
// uniqueness invariant. The pre-check gives a precise error message; the
// store's unique index remains the authoritative backstop, so a racing
// duplicate still surfaces as ErrCategoryAlreadyExists from the save.
func (s *categoryService) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	taken, err := s.categoryRepo.ExistsByTitleAndStoreID(ctx, category.Title, category.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category title: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("category with title %q in store %q: %w",
			category.Title, category.StoreID, repository.ErrCategoryAlreadyExists)
	}

	category.Touch()

	created, err := s.categoryRepo.Save(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

// Update loads the existing category, overwrites its title and description
// (identifier and store are immutable after creation), re-stamps UpdatedAt,
// and returns the merged, persisted entity.
func (s *categoryService) Update(ctx context.Context, id string, category *domain.Category) (*domain.Category, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = category.Title
	existing.Description = category.Description
	existing.Touch()

	updated, err := s.categoryRepo.Save(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update category with id %q: %w", id, err)
	}

	return updated, nil
}

// Delete removes a category. The entity is fetched first; a missing id
// fails with NotFound before any delete reaches the store.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("failed to delete category with id %q: %w", id, err)
	}

	return nil
}
