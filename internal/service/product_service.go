package service

import (
	"context"
	"fmt"

	"catalog-core/internal/domain"
	"catalog-core/internal/repository"
)

// ProductService defines the interface for product business logic.
// Products carry no uniqueness invariant; the interesting work is the
// relationship resolution owned by the repository.
type ProductService interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByStoreID(ctx context.Context, storeID string) ([]*domain.Product, error)
	FindByCategoryID(ctx context.Context, categoryID string) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService.
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// FindAll lists the entire catalog across all stores.
func (s *productService) FindAll(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// FindByStoreID lists a store's products.
func (s *productService) FindByStoreID(ctx context.Context, storeID string) ([]*domain.Product, error) {
	products, err := s.productRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for store %q: %w", storeID, err)
	}

	return products, nil
}

// FindByCategoryID lists products referencing a category.
func (s *productService) FindByCategoryID(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	products, err := s.productRepo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for category %q: %w", categoryID, err)
	}

	return products, nil
}

// FindByID retrieves a single product, failing with
// repository.ErrProductNotFound when absent.
func (s *productService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product with id %q: %w", id, err)
	}

	return product, nil
}

// Create persists a new product. There is no uniqueness check; the
// repository resolves category/color references and stamps timestamps.
func (s *productService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	created, err := s.productRepo.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return created, nil
}

// Update loads the existing product, overwrites its mutable fields,
// re-stamps UpdatedAt, and persists through the same save path as create;
// the preserved identifier makes the save an upsert of the same document.
func (s *productService) Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Images = product.Images
	existing.Price = product.Price
	existing.Title = product.Title
	existing.Description = product.Description
	existing.CategoryID = product.CategoryID
	existing.ColorID = product.ColorID
	existing.Touch()

	updated, err := s.productRepo.Save(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with id %q: %w", id, err)
	}

	return updated, nil
}

// Delete removes a product, fetching it first so a missing id fails with
// NotFound before any delete reaches the store.
func (s *productService) Delete(ctx context.Context, id string) error {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("failed to delete product with id %q: %w", id, err)
	}

	return nil
}
