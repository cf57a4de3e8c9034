package service

import (
	"context"
	"errors"
	"testing"

	"catalog-core/internal/domain"
	"catalog-core/internal/repository"

	"github.com/google/uuid"
)

type mockColorRepository struct {
	colors      map[string]*domain.Color
	saveCalls   int
	deleteCalls int
}

func newMockColorRepository() *mockColorRepository {
	return &mockColorRepository{
		colors: make(map[string]*domain.Color),
	}
}

func (m *mockColorRepository) FindByStoreID(ctx context.Context, storeID string) ([]*domain.Color, error) {
	result := []*domain.Color{}
	for _, color := range m.colors {
		if color.StoreID == storeID {
			copied := *color
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockColorRepository) FindByID(ctx context.Context, id string) (*domain.Color, error) {
	color, exists := m.colors[id]
	if !exists {
		return nil, repository.ErrColorNotFound
	}
	copied := *color
	return &copied, nil
}

func (m *mockColorRepository) Save(ctx context.Context, color *domain.Color) (*domain.Color, error) {
	m.saveCalls++

	color.Touch()
	if color.ID == "" {
		color.ID = uuid.NewString()
	}

	// Mirror the store's two unique indexes.
	for _, other := range m.colors {
		if other.ID == color.ID || other.StoreID != color.StoreID {
			continue
		}
		if other.Name == color.Name || other.Value == color.Value {
			return nil, repository.ErrColorAlreadyExists
		}
	}

	stored := *color
	m.colors[color.ID] = &stored

	copied := stored
	return &copied, nil
}

func (m *mockColorRepository) Delete(ctx context.Context, color *domain.Color) error {
	m.deleteCalls++

	if _, exists := m.colors[color.ID]; !exists {
		return repository.ErrColorNotFound
	}
	delete(m.colors, color.ID)
	return nil
}

func (m *mockColorRepository) ExistsByNameAndStoreID(ctx context.Context, name, storeID string) (bool, error) {
	for _, color := range m.colors {
		if color.Name == name && color.StoreID == storeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockColorRepository) ExistsByValueAndStoreID(ctx context.Context, value, storeID string) (bool, error) {
	for _, color := range m.colors {
		if color.Value == value && color.StoreID == storeID {
			return true, nil
		}
	}
	return false, nil
}

func TestColorCreateRejectsDuplicateNameInStore(t *testing.T) {
	repo := newMockColorRepository()
	svc := NewColorService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &domain.Color{Name: "Crimson", Value: "#DC143C", StoreID: "store-1"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(ctx, &domain.Color{Name: "Crimson", Value: "#FF0000", StoreID: "store-1"})
	if !errors.Is(err, repository.ErrColorAlreadyExists) {
		t.Fatalf("expected ErrColorAlreadyExists for a taken name, got: %v", err)
	}
	if repo.saveCalls != 1 {
		t.Errorf("expected 1 save call, got %d", repo.saveCalls)
	}
}

func TestColorCreateRejectsDuplicateValueInStore(t *testing.T) {
	repo := newMockColorRepository()
	svc := NewColorService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &domain.Color{Name: "Crimson", Value: "#DC143C", StoreID: "store-1"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Same value under a different name is still a collision.
	_, err := svc.Create(ctx, &domain.Color{Name: "Cherry", Value: "#DC143C", StoreID: "store-1"})
	if !errors.Is(err, repository.ErrColorAlreadyExists) {
		t.Fatalf("expected ErrColorAlreadyExists for a taken value, got: %v", err)
	}
}

func TestColorCreateAllowsSameColorAcrossStores(t *testing.T) {
	repo := newMockColorRepository()
	svc := NewColorService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &domain.Color{Name: "Crimson", Value: "#DC143C", StoreID: "store-1"}); err != nil {
		t.Fatalf("create in store-1 failed: %v", err)
	}
	if _, err := svc.Create(ctx, &domain.Color{Name: "Crimson", Value: "#DC143C", StoreID: "store-2"}); err != nil {
		t.Fatalf("create in store-2 failed: %v", err)
	}
}

func TestColorUpdateReturnsMergedEntity(t *testing.T) {
	repo := newMockColorRepository()
	svc := NewColorService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Color{Name: "Crimson", Value: "#DC143C", StoreID: "store-1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, &domain.Color{Name: "Scarlet", Value: "#FF2400"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.ID != created.ID || updated.StoreID != "store-1" {
		t.Errorf("identity changed on update: %+v", updated)
	}
	if updated.Name != "Scarlet" || updated.Value != "#FF2400" {
		t.Errorf("mutable fields not overwritten: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}
}

func TestColorUpdateMissingColor(t *testing.T) {
	repo := newMockColorRepository()
	svc := NewColorService(repo)

	_, err := svc.Update(context.Background(), "missing", &domain.Color{Name: "x", Value: "y"})
	if !errors.Is(err, repository.ErrColorNotFound) {
		t.Fatalf("expected ErrColorNotFound, got: %v", err)
	}
	if repo.saveCalls != 0 {
		t.Errorf("update of a missing color reached the store: %d save calls", repo.saveCalls)
	}
}

func TestColorDeleteMissingColor(t *testing.T) {
	repo := newMockColorRepository()
	svc := NewColorService(repo)

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, repository.ErrColorNotFound) {
		t.Fatalf("expected ErrColorNotFound, got: %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Errorf("delete of a missing color reached the store: %d delete calls", repo.deleteCalls)
	}
}

func TestColorDeleteRemovesColor(t *testing.T) {
	repo := newMockColorRepository()
	svc := NewColorService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.Color{Name: "Teal", Value: "#008080", StoreID: "store-1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.FindByID(ctx, created.ID); !errors.Is(err, repository.ErrColorNotFound) {
		t.Errorf("deleted color still readable, err: %v", err)
	}
}
