package handlers

import (
	"context"
	"net/http"

	"github.com/curriculum/backend/internal/middleware"
	"github.com/curriculum/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for lesson reading and navigation
type LessonService interface {
	// GetBySlug retrieves a lesson by its slug
	//
	// "ctx" is the context for the request.
	// "slugOrID" is the slug of the lesson; a numeric value also matches the lesson ID.
	//
	// Returns the lesson and models.ErrLessonNotFound if there is no such lesson.
	GetBySlug(ctx context.Context, slugOrID string) (*models.Lesson, error)
	// NextLesson retrieves the lesson following "lesson" in curriculum order
	//
	// "ctx" is the context for the request.
	// "lesson" is a lesson returned by GetBySlug.
	//
	// Returns the next lesson and models.ErrNoNextLesson for the last lesson of a course.
	NextLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error)
	// PrevLesson retrieves the lesson preceding "lesson" in curriculum order
	//
	// Please reference NextLesson method for more information; models.ErrNoPrevLesson is returned for the first lesson.
	PrevLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error)
	// Details builds the lesson response with derived attributes
	//
	// "ctx" is the context for the request.
	// "lesson" is a lesson returned by GetBySlug.
	//
	// Returns the response and an error if any.
	Details(ctx context.Context, lesson *models.Lesson) (*models.LessonResponse, error)
}

// CompletionService is the interface that wraps methods for lesson completion by students
type CompletionService interface {
	// Complete marks a lesson as completed by a student
	//
	// "ctx" is the context for the request.
	// "slug" is the slug of the lesson.
	// "studentID" is the ID of the authenticated student.
	//
	// Returns the completion status and an error if any. Completing twice is not an error.
	Complete(ctx context.Context, slug string, studentID int) (*models.CompletionStatusResponse, error)
	// Uncomplete removes the completion of a lesson by a student
	//
	// Please reference Complete method for the parameters.
	// Returns models.ErrCompletionNotFound when the lesson was not completed.
	Uncomplete(ctx context.Context, slug string, studentID int) (*models.CompletionStatusResponse, error)
	// IsCompleted reports whether a student completed a lesson
	//
	// "lessonID" is the ID of a lesson returned by GetBySlug.
	IsCompleted(ctx context.Context, lessonID, studentID int) (bool, error)
}

// LessonHandler handles HTTP requests for reading lessons and tracking their completion
type LessonHandler struct {
	BaseHandler
	service     LessonService
	completions CompletionService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, completions CompletionService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		completions: completions,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
//
// optionalAuthMiddleware identifies the student on GET /lessons/{slug} without requiring a token.
func (h *LessonHandler) RegisterRoutes(r chi.Router, authMiddleware, optionalAuthMiddleware func(http.Handler) http.Handler) {
	r.Route("/lessons/{slug}", func(r chi.Router) {
		r.With(optionalAuthMiddleware).Get("/", h.GetLesson)
		r.Get("/next", h.GetNextLesson)
		r.Get("/prev", h.GetPrevLesson)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/complete", h.CompleteLesson)
			r.Delete("/complete", h.UncompleteLesson)
		})
	})
}

// GetLesson handles GET /api/v1/lessons/{slug}
// @Summary Get lesson
// @Description Get a lesson with its type, position in section and submission flags.
// @Description When an access token is sent, "completed" tells whether the student completed the lesson.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Lesson slug or ID"
// @Success 200 {object} models.LessonResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/lessons/{slug} [get]
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get lesson")
		return
	}

	details, err := h.service.Details(r.Context(), lesson)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get lesson")
		return
	}

	if studentID, ok := middleware.GetStudentID(r.Context()); ok {
		completed, err := h.completions.IsCompleted(r.Context(), lesson.ID, studentID)
		if err != nil {
			h.respondServiceError(w, r, err, "failed to get lesson")
			return
		}
		details.Completed = &completed
	}

	h.respondJSON(w, http.StatusOK, details)
}

// GetNextLesson handles GET /api/v1/lessons/{slug}/next
// @Summary Get next lesson
// @Description Get the lesson following this one in the curriculum order of its course
// @Tags lessons
// @Produce json
// @Param slug path string true "Lesson slug or ID"
// @Success 200 {object} models.LessonNavigationItem
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/lessons/{slug}/next [get]
func (h *LessonHandler) GetNextLesson(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, h.service.NextLesson)
}

// GetPrevLesson handles GET /api/v1/lessons/{slug}/prev
// @Summary Get previous lesson
// @Description Get the lesson preceding this one in the curriculum order of its course
// @Tags lessons
// @Produce json
// @Param slug path string true "Lesson slug or ID"
// @Success 200 {object} models.LessonNavigationItem
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/lessons/{slug}/prev [get]
func (h *LessonHandler) GetPrevLesson(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, h.service.PrevLesson)
}

func (h *LessonHandler) navigate(w http.ResponseWriter, r *http.Request, step func(context.Context, *models.Lesson) (*models.Lesson, error)) {
	lesson, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get lesson")
		return
	}

	neighbour, err := step(r.Context(), lesson)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, models.LessonNavigationItem{
		ID:    neighbour.ID,
		Slug:  neighbour.Slug,
		Title: neighbour.Title,
		Type:  neighbour.Type(),
	})
}

// CompleteLesson handles POST /api/v1/lessons/{slug}/complete
// @Summary Complete lesson
// @Description Mark the lesson as completed by the authenticated student
// @Tags completions
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Lesson slug or ID"
// @Success 200 {object} models.CompletionStatusResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/lessons/{slug}/complete [post]
func (h *LessonHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.GetStudentID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	status, err := h.completions.Complete(r.Context(), chi.URLParam(r, "slug"), studentID)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to complete lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, status)
}

// UncompleteLesson handles DELETE /api/v1/lessons/{slug}/complete
// @Summary Uncomplete lesson
// @Description Remove the completion of the lesson by the authenticated student
// @Tags completions
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Lesson slug or ID"
// @Success 200 {object} models.CompletionStatusResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/lessons/{slug}/complete [delete]
func (h *LessonHandler) UncompleteLesson(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.GetStudentID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	status, err := h.completions.Uncomplete(r.Context(), chi.URLParam(r, "slug"), studentID)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to uncomplete lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, status)
}
