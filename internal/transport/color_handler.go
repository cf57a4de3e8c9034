package transport

import (
	"net/http"

	"catalog-core/internal/domain"
	"catalog-core/internal/middleware"
	"catalog-core/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ColorRequest represents the create/update payload for a color
type ColorRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Value string `json:"value" validate:"required,max=50"`
}

// ColorHandler handles HTTP requests for color operations
type ColorHandler struct {
	colorService service.ColorService
	logger       *zap.Logger
}

// NewColorHandler creates a new ColorHandler
func NewColorHandler(colorService service.ColorService, logger *zap.Logger) *ColorHandler {
	return &ColorHandler{
		colorService: colorService,
		logger:       logger,
	}
}

// RegisterRoutes registers all color routes
func (h *ColorHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/colors", func(r chi.Router) {
		r.Get("/store/{id}", h.ListByStore)
		r.Get("/{id}", h.GetByID)
		r.Post("/{storeId}", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// ListByStore returns all colors of a store
func (h *ColorHandler) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")

	colors, err := h.colorService.FindByStoreID(r.Context(), storeID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if colors == nil {
		colors = []*domain.Color{}
	}

	middleware.RespondWithJSON(w, http.StatusOK, colors)
}

// GetByID returns a single color
func (h *ColorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	color, err := h.colorService.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, color)
}

// Create creates a color inside the store named in the path
func (h *ColorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ColorRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	color := &domain.Color{
		Name:    req.Name,
		Value:   req.Value,
		StoreID: chi.URLParam(r, "storeId"),
	}

	created, err := h.colorService.Create(r.Context(), color)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Color created",
		zap.String("color_id", created.ID),
		zap.String("store_id", created.StoreID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

// Update overwrites a color's name and value and returns the merged,
// persisted entity.
func (h *ColorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ColorRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	updated, err := h.colorService.Update(r.Context(), id, &domain.Color{
		Name:  req.Name,
		Value: req.Value,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Color updated", zap.String("color_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, updated)
}

// Delete removes a color
func (h *ColorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.colorService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Color deleted", zap.String("color_id", id))
	w.WriteHeader(http.StatusNoContent)
}
