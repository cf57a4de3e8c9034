package repository

import "catalog-core/internal/domain"

// Entity mappers are total over nil: a nil input maps to a nil output
// instead of failing, so call sites can chain lookups without guarding.
// Slice variants preserve input ordering and count.

func categoryToDomain(entity *categoryEntity) *domain.Category {
	if entity == nil {
		return nil
	}

	return &domain.Category{
		ID:          entity.ID,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		Title:       entity.Title,
		Description: entity.Description,
		StoreID:     entity.StoreID,
	}
}

func categoryToEntity(model *domain.Category) *categoryEntity {
	if model == nil {
		return nil
	}

	return &categoryEntity{
		ID:          model.ID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Title:       model.Title,
		Description: model.Description,
		StoreID:     model.StoreID,
	}
}

// updateCategoryEntity merges the mutable fields of the model into an
// already-persisted entity, leaving identity untouched.
func updateCategoryEntity(model *domain.Category, entity *categoryEntity) {
	if model == nil || entity == nil {
		return
	}

	entity.Title = model.Title
	entity.Description = model.Description
	entity.UpdatedAt = model.UpdatedAt
}

func colorToDomain(entity *colorEntity) *domain.Color {
	if entity == nil {
		return nil
	}

	return &domain.Color{
		ID:        entity.ID,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
		Name:      entity.Name,
		Value:     entity.Value,
		StoreID:   entity.StoreID,
	}
}

func colorToEntity(model *domain.Color) *colorEntity {
	if model == nil {
		return nil
	}

	return &colorEntity{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Name:      model.Name,
		Value:     model.Value,
		StoreID:   model.StoreID,
	}
}

func updateColorEntity(model *domain.Color, entity *colorEntity) {
	if model == nil || entity == nil {
		return
	}

	entity.Name = model.Name
	entity.Value = model.Value
	entity.UpdatedAt = model.UpdatedAt
}

// productToDomain extracts embedded relations back into bare identifiers.
// A nil embedded sub-document yields an empty identifier, never an error.
func productToDomain(entity *productEntity) *domain.Product {
	if entity == nil {
		return nil
	}

	product := &domain.Product{
		ID:          entity.ID,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		Title:       entity.Title,
		Description: entity.Description,
		Price:       entity.Price,
		Images:      append([]string{}, entity.Images...),
		ReviewID:    entity.ReviewID,
		StoreID:     entity.StoreID,
	}

	if entity.Category != nil {
		product.CategoryID = entity.Category.ID
	}
	if entity.Color != nil {
		product.ColorID = entity.Color.ID
	}

	return product
}

// productToEntity maps the scalar fields only; embedded relations are
// resolved separately by the adapter against the referenced collections.
func productToEntity(model *domain.Product) *productEntity {
	if model == nil {
		return nil
	}

	return &productEntity{
		ID:          model.ID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Title:       model.Title,
		Description: model.Description,
		Price:       model.Price,
		Images:      append([]string{}, model.Images...),
		ReviewID:    model.ReviewID,
		StoreID:     model.StoreID,
	}
}

func updateProductEntity(model *domain.Product, entity *productEntity) {
	if model == nil || entity == nil {
		return
	}

	entity.Title = model.Title
	entity.Description = model.Description
	entity.Price = model.Price
	entity.Images = append([]string{}, model.Images...)
	entity.ReviewID = model.ReviewID
	entity.StoreID = model.StoreID
	entity.UpdatedAt = model.UpdatedAt
}

// mapSlice applies the scalar mapping element-wise, preserving order and
// count. A nil input slice stays nil.
func mapSlice[S, T any](in []S, f func(S) T) []T {
	if in == nil {
		return nil
	}

	out := make([]T, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
