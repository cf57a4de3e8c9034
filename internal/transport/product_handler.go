package transport

import (
	"net/http"

	"catalog-core/internal/domain"
	"catalog-core/internal/middleware"
	"catalog-core/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductRequest represents the create/update payload for a product.
// CategoryID and ColorID are optional weak references; a value that does
// not resolve is persisted as an absent relation unless the service runs
// in strict-references mode.
type ProductRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=1000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images" validate:"omitempty,dive,required"`
	CategoryID  string   `json:"category_id"`
	ColorID     string   `json:"color_id"`
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.ListAll)
		r.Get("/store/{id}", h.ListByStore)
		r.Get("/category/{id}", h.ListByCategory)
		r.Get("/{id}", h.GetByID)
		r.Post("/{storeId}", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// ListAll returns the full, unfiltered catalog
func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.FindAll(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if products == nil {
		products = []*domain.Product{}
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// ListByStore returns all products of a store
func (h *ProductHandler) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")

	products, err := h.productService.FindByStoreID(r.Context(), storeID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if products == nil {
		products = []*domain.Product{}
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// ListByCategory returns all products referencing a category
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	products, err := h.productService.FindByCategoryID(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if products == nil {
		products = []*domain.Product{}
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetByID returns a single product
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.productService.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Create creates a product inside the store named in the path
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	product := &domain.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		StoreID:     chi.URLParam(r, "storeId"),
		CategoryID:  req.CategoryID,
		ColorID:     req.ColorID,
	}

	created, err := h.productService.Create(r.Context(), product)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product created",
		zap.String("product_id", created.ID),
		zap.String("store_id", created.StoreID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

// Update overwrites a product's mutable fields and returns the merged,
// persisted entity.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	updated, err := h.productService.Update(r.Context(), id, &domain.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		CategoryID:  req.CategoryID,
		ColorID:     req.ColorID,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product updated", zap.String("product_id", id))
	middleware.RespondWithJSON(w, http.StatusOK, updated)
}

// Delete removes a product
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.productService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product deleted", zap.String("product_id", id))
	w.WriteHeader(http.StatusNoContent)
}
