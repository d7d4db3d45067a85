package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/curriculum/backend/internal/models"
	"github.com/curriculum/backend/internal/slug"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to its status code
//
// Unknown errors are logged and answered with 500 and the fallback message.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrLessonNotFound),
		errors.Is(err, models.ErrNoNextLesson),
		errors.Is(err, models.ErrNoPrevLesson),
		errors.Is(err, models.ErrCompletionNotFound),
		errors.Is(err, models.ErrNoImportRun):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrPositionTaken),
		errors.Is(err, models.ErrSlugTaken):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrContentRequired),
		errors.Is(err, models.ErrTitleRequired),
		errors.Is(err, models.ErrSectionRequired),
		errors.Is(err, models.ErrSectionNotFound),
		errors.Is(err, models.ErrPositionRequired),
		errors.Is(err, models.ErrNoFieldsToUpdate),
		errors.Is(err, slug.ErrEmptySlug):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(fallback, zap.Error(err), zap.String("path", r.URL.Path))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
func (h *BaseHandler) decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// idParam parses the positive integer {id} path parameter
func (h *BaseHandler) idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}
