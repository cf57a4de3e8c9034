package transport

import (
	"errors"
	"net/http"

	"catalog-core/internal/middleware"
	"catalog-core/internal/repository"

	"go.uber.org/zap"
)

// writeServiceError translates service failures into HTTP responses:
// NotFound → 404, AlreadyExists → 409, anything else → 500. The sentinel
// errors carry entity kind and id through the wrapped message.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrColorNotFound),
		errors.Is(err, repository.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, repository.ErrCategoryAlreadyExists),
		errors.Is(err, repository.ErrColorAlreadyExists):
		middleware.RespondWithError(w, http.StatusConflict, err.Error())

	default:
		logger.Error("Request failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeBadRequest reports a decode or validation failure.
func writeBadRequest(w http.ResponseWriter, logger *zap.Logger, err error) {
	logger.Debug("Request validation failed", zap.Error(err))

	if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
		middleware.RespondWithValidationErrors(w, validationErrors)
		return
	}

	middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
}
