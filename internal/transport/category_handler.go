package transport

import (
	"net/http"

	"catalog-core/internal/domain"
	"catalog-core/internal/middleware"
	"catalog-core/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CategoryRequest represents the create/update payload for a category
type CategoryRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
}

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Get("/store/{id}", h.ListByStore)
		r.Get("/{id}", h.GetByID)
		r.Post("/{storeId}", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// ListByStore returns all categories of a store; an empty store yields an
// empty JSON array.
func (h *CategoryHandler) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")

	categories, err := h.categoryService.FindByStoreID(r.Context(), storeID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if categories == nil {
		categories = []*domain.Category{}
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// GetByID returns a single category
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, err := h.categoryService.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// Create creates a category inside the store named in the path
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	category := &domain.Category{
		Title:       req.Title,
		Description: req.Description,
		StoreID:     chi.URLParam(r, "storeId"),
	}

	created, err := h.categoryService.Create(r.Context(), category)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Category created",
		zap.String("category_id", created.ID),
		zap.String("store_id", created.StoreID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

// Update overwrites a category's title and description and returns the
// merged, persisted entity.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req CategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	updated, err := h.categoryService.Update(r.Context(), id, &domain.Category{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Category updated", zap.String("category_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, updated)
}

// Delete removes a category
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Category deleted", zap.String("category_id", id))
	w.WriteHeader(http.StatusNoContent)
}
