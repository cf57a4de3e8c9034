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

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access. Besides
// plain lookups it owns relationship resolution: bare category and color
// identifiers on the domain side become embedded sub-documents on save and
// are extracted back on read.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByStoreID(ctx context.Context, storeID string) ([]*domain.Product, error)
	FindByCategoryID(ctx context.Context, categoryID string) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, product *domain.Product) error
}

type productRepository struct {
	products   *document.Collection[productEntity]
	categories *document.Collection[categoryEntity]
	colors     *document.Collection[colorEntity]
	strictRefs bool
}

// NewProductRepository creates a new instance of ProductRepository. With
// strictRefs enabled a save referencing a missing category or color fails;
// otherwise the dangling reference is embedded as absent.
func NewProductRepository(db *sql.DB, strictRefs bool) ProductRepository {
	return &productRepository{
		products:   document.NewCollection[productEntity](db, "products"),
		categories: document.NewCollection[categoryEntity](db, "categories"),
		colors:     document.NewCollection[colorEntity](db, "colors"),
		strictRefs: strictRefs,
	}
}

// FindAll retrieves the full, unfiltered catalog.
func (r *productRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	entities, err := r.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return mapSlice(entities, productToDomain), nil
}

// FindByStoreID retrieves all products belonging to a store.
func (r *productRepository) FindByStoreID(ctx context.Context, storeID string) ([]*domain.Product, error) {
	entities, err := r.products.Find(ctx, document.Filter{"store_id": storeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list products by store: %w", err)
	}

	return mapSlice(entities, productToDomain), nil
}

// FindByCategoryID retrieves all products whose embedded category carries
// the given identifier.
func (r *productRepository) FindByCategoryID(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	filter := document.Filter{"category": map[string]any{"id": categoryID}}

	entities, err := r.products.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}

	return mapSlice(entities, productToDomain), nil
}

// FindByID retrieves a product by ID.
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	entity, err := r.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return productToDomain(entity), nil
}

// Save upserts a product. Timestamps are re-stamped here regardless of what
// the service layer already did, the identifier is assigned on first save,
// and category/color references are resolved into embedded sub-documents.
func (r *productRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.Touch()

	entity := productToEntity(product)
	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}

	if err := r.resolveRelations(ctx, product, entity); err != nil {
		return nil, err
	}

	if err := r.products.Save(ctx, entity.ID, entity); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return productToDomain(entity), nil
}

// Delete removes an already-fetched product from the collection.
func (r *productRepository) Delete(ctx context.Context, product *domain.Product) error {
	entity := productToEntity(product)

	if err := r.products.Delete(ctx, entity.ID); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (r *productRepository) resolveRelations(ctx context.Context, product *domain.Product, entity *productEntity) error {
	if product.CategoryID != "" {
		category, err := r.categories.FindByID(ctx, product.CategoryID)
		switch {
		case err == nil:
			entity.Category = category
		case errors.Is(err, document.ErrNotFound):
			if r.strictRefs {
				return fmt.Errorf("category with id %q: %w", product.CategoryID, ErrCategoryNotFound)
			}
			// Dangling reference: embedded as absent.
		default:
			return fmt.Errorf("failed to resolve category reference: %w", err)
		}
	}

	if product.ColorID != "" {
		color, err := r.colors.FindByID(ctx, product.ColorID)
		switch {
		case err == nil:
			entity.Color = color
		case errors.Is(err, document.ErrNotFound):
			if r.strictRefs {
				return fmt.Errorf("color with id %q: %w", product.ColorID, ErrColorNotFound)
			}
		default:
			return fmt.Errorf("failed to resolve color reference: %w", err)
		}
	}

	return nil
}
