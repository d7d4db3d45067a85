package handlers

import (
	"context"
	"net/http"

	"github.com/curriculum/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminLessonService is the interface that wraps methods for lesson administration
type AdminLessonService interface {
	// GetByID retrieves a lesson by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the lesson.
	//
	// Returns the lesson and models.ErrLessonNotFound if there is no such lesson.
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// Create creates a lesson
	//
	// "ctx" is the context for the request.
	// "req" holds the lesson fields; title, section and position are required.
	//
	// Returns the created lesson with its slug, or a validation error.
	Create(ctx context.Context, req models.CreateLessonRequest) (*models.Lesson, error)
	// Update applies a partial update to a lesson
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the lesson.
	// "req" holds the changed fields.
	//
	// Returns the updated lesson, models.ErrContentRequired when the content would be blank,
	// models.ErrPositionTaken when the position is used by another lesson.
	Update(ctx context.Context, id int, req models.UpdateLessonRequest) (*models.Lesson, error)
	// Delete deletes a lesson and its completions
	//
	// Returns models.ErrLessonNotFound if there is no such lesson.
	Delete(ctx context.Context, id int) error
}

// ContentImportService is the interface that wraps methods for importing lesson content from the upstream repository
type ContentImportService interface {
	// ImportContent imports the content of one lesson
	//
	// "ctx" is the context for the request.
	// "lesson" is the lesson to import.
	//
	// Returns the import result. Content host failures are reported in the result, not as an error.
	ImportContent(ctx context.Context, lesson *models.Lesson) (models.ContentImportResult, error)
}

// ContentImportQueue is the interface that wraps queueing of bulk content imports
type ContentImportQueue interface {
	// EnqueueImportAll queues an import of every lesson with an upstream path
	//
	// "ctx" is the context for the request.
	// "trigger" tells what queued the run.
	//
	// Returns the queued job and an error if the queue is unavailable.
	EnqueueImportAll(ctx context.Context, trigger models.ContentImportTrigger) (*models.ContentImportJob, error)
}

// ContentImportRunReader is the interface that wraps reading the outcome of bulk content imports
type ContentImportRunReader interface {
	// GetLatest retrieves the outcome of the last finished bulk import
	//
	// Returns models.ErrNoImportRun if no run has finished yet.
	GetLatest(ctx context.Context) (*models.ContentImportRun, error)
}

// CompletionReportService is the interface that wraps methods for reading lesson completions
type CompletionReportService interface {
	// CompletingStudents retrieves the IDs of the students who completed a lesson
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the student IDs in completion order and an error if any.
	CompletingStudents(ctx context.Context, lessonID int) ([]int, error)
}

// AdminLessonHandler handles HTTP requests for lesson administration
type AdminLessonHandler struct {
	BaseHandler
	service     AdminLessonService
	imports     ContentImportService
	queue       ContentImportQueue
	runs        ContentImportRunReader
	completions CompletionReportService
}

// NewAdminLessonHandler creates a new admin lesson handler
func NewAdminLessonHandler(
	svc AdminLessonService,
	imports ContentImportService,
	queue ContentImportQueue,
	runs ContentImportRunReader,
	completions CompletionReportService,
	logger *zap.Logger,
) *AdminLessonHandler {
	return &AdminLessonHandler{
		service:     svc,
		imports:     imports,
		queue:       queue,
		runs:        runs,
		completions: completions,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all admin lesson handler routes
func (h *AdminLessonHandler) RegisterRoutes(r chi.Router, apiKeyMiddleware func(http.Handler) http.Handler) {
	r.Route("/admin/lessons", func(r chi.Router) {
		r.Use(apiKeyMiddleware)
		r.Post("/", h.CreateLesson)
		r.Post("/import", h.ImportAll)
		r.Get("/import", h.GetLatestImport)
		r.Patch("/{id}", h.UpdateLesson)
		r.Delete("/{id}", h.DeleteLesson)
		r.Post("/{id}/import", h.ImportLesson)
		r.Get("/{id}/completions", h.GetCompletions)
	})
}

// CreateLesson handles POST /api/v1/admin/lessons
// @Summary Create lesson
// @Description Create a lesson; the slug is derived from the title and course title
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateLessonRequest true "Lesson"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/lessons [post]
func (h *AdminLessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lesson, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to create lesson")
		return
	}

	h.respondJSON(w, http.StatusCreated, lesson)
}

// UpdateLesson handles PATCH /api/v1/admin/lessons/{id}
// @Summary Update lesson
// @Description Partially update a lesson; set regenerateSlug to recompute the slug
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Param request body models.UpdateLessonRequest true "Changed fields"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/lessons/{id} [patch]
func (h *AdminLessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateLessonRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lesson, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to update lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// DeleteLesson handles DELETE /api/v1/admin/lessons/{id}
// @Summary Delete lesson
// @Description Delete a lesson together with its completions
// @Tags admin
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/lessons/{id} [delete]
func (h *AdminLessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "failed to delete lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ImportLesson handles POST /api/v1/admin/lessons/{id}/import
// @Summary Import lesson content
// @Description Replace the lesson content with its file in the upstream curriculum repository
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.ContentImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/lessons/{id}/import [post]
func (h *AdminLessonHandler) ImportLesson(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lesson, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to import lesson content")
		return
	}

	result, err := h.imports.ImportContent(r.Context(), lesson)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to import lesson content")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// ImportAll handles POST /api/v1/admin/lessons/import
// @Summary Import all lesson content
// @Description Queue an import of the upstream content of every lesson with a url.
// @Description The import runs on the worker; GET /api/v1/admin/lessons/import returns its outcome.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 202 {object} models.ContentImportJob
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/lessons/import [post]
func (h *AdminLessonHandler) ImportAll(w http.ResponseWriter, r *http.Request) {
	job, err := h.queue.EnqueueImportAll(r.Context(), models.ContentImportTriggerAPI)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to queue content import")
		return
	}

	h.logger.Info("content import queued", zap.String("task_id", job.TaskID))
	h.respondJSON(w, http.StatusAccepted, job)
}

// GetLatestImport handles GET /api/v1/admin/lessons/import
// @Summary Get latest content import
// @Description Get the outcome of the last finished bulk content import
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.ContentImportRun
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/lessons/import [get]
func (h *AdminLessonHandler) GetLatestImport(w http.ResponseWriter, r *http.Request) {
	run, err := h.runs.GetLatest(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get content import")
		return
	}

	h.respondJSON(w, http.StatusOK, run)
}

// GetCompletions handles GET /api/v1/admin/lessons/{id}/completions
// @Summary Get completing students
// @Description Get the IDs of the students who completed the lesson
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.CompletingStudentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/lessons/{id}/completions [get]
func (h *AdminLessonHandler) GetCompletions(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	studentIDs, err := h.completions.CompletingStudents(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get lesson completions")
		return
	}

	h.respondJSON(w, http.StatusOK, models.CompletingStudentsResponse{LessonID: id, StudentIDs: studentIDs})
}
