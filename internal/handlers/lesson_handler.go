package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lessonforge/backend/internal/models"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for the lesson store.
type LessonService interface {
	// Method GetLessons retrieve all lessons, newest first.
	//
	// A storage failure degrades to an empty list.
	GetLessons(ctx context.Context) ([]models.Lesson, error)
	// Method GetLesson retrieve a lesson by its ID.
	//
	// models.ErrLessonNotFound is returned for an unknown ID, *models.StorageError for storage failures.
	GetLesson(ctx context.Context, id int) (*models.Lesson, error)
	// Method CreateLesson validate the input, generate the lesson body and store it.
	//
	// *models.ValidationError is returned for invalid input, in which case nothing is stored.
	CreateLesson(ctx context.Context, input *models.CreateLessonInput) (*models.Lesson, error)
	// Method DeleteLesson remove a lesson by its ID and report whether it existed.
	DeleteLesson(ctx context.Context, id int) (bool, error)
	// Method ContinueLesson append a generated continuation to a lesson.
	//
	// Content is only ever extended and read time only ever grows.
	ContinueLesson(ctx context.Context, id int) (*models.Lesson, error)
}

// LessonHandler handles HTTP requests for lessons
type LessonHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all lesson routes under /lessons
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/", h.GetLessons)
		r.Post("/", h.CreateLesson)
		r.Get("/{id}", h.GetLesson)
		r.Delete("/{id}", h.DeleteLesson)
		r.Post("/{id}/continue", h.ContinueLesson)
	})
}

// GetLessons handles GET /api/lessons
// @Summary List lessons
// @Description Get all lessons ordered by creation time, newest first
// @Tags lessons
// @Produce json
// @Success 200 {array} models.Lesson
// @Failure 500 {object} map[string]string
// @Router /lessons [get]
func (h *LessonHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.service.GetLessons(r.Context())
	if err != nil {
		h.logger.Error("failed to get lessons", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get lessons")
		return
	}

	h.respondJSON(w, http.StatusOK, lessons)
}

// GetLesson handles GET /api/lessons/{id}
// @Summary Get a lesson
// @Description Get a single lesson by its ID
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string "Invalid lesson ID"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id} [get]
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.lessonID(w, r)
	if !ok {
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "failed to get lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// CreateLesson handles POST /api/lessons
// @Summary Create a lesson
// @Description Generate and store a new lesson for a topic.
// @Description The topic is trimmed and must keep at least 3 characters.
// @Description gradeLevel must be one of elementary, middle, high, college, adult.
// @Description lessonStyle must be one of exploratory, lecture, socratic, practical, storytelling.
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.CreateLessonRequest true "Lesson creation request"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} map[string]string "Invalid request body, topic shorter than 3 characters after trimming, or gradeLevel/lessonStyle outside the accepted values"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons [post]
func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.CreateLesson(r.Context(), &models.CreateLessonInput{CreateLessonRequest: req})
	if err != nil {
		h.handleServiceError(w, err, "failed to create lesson")
		return
	}

	h.respondJSON(w, http.StatusCreated, lesson)
}

// DeleteLesson handles DELETE /api/lessons/{id}
// @Summary Delete a lesson
// @Description Delete a lesson by its ID
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid lesson ID"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id} [delete]
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.lessonID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteLesson(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "failed to delete lesson")
		return
	}
	if !deleted {
		h.respondError(w, http.StatusNotFound, models.ErrLessonNotFound.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "lesson deleted successfully"})
}

// ContinueLesson handles POST /api/lessons/{id}/continue
// @Summary Continue a lesson
// @Description Append more generated content to a lesson and increase its read time
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string "Invalid lesson ID"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id}/continue [post]
func (h *LessonHandler) ContinueLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.lessonID(w, r)
	if !ok {
		return
	}

	lesson, err := h.service.ContinueLesson(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "failed to continue lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// lessonID parses the {id} URL parameter and writes a 400 response when it is not a number
func (h *LessonHandler) lessonID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid lesson ID")
		return 0, false
	}
	return id, true
}

// handleServiceError maps lesson store errors to HTTP responses
func (h *LessonHandler) handleServiceError(w http.ResponseWriter, err error, message string) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.respondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, models.ErrLessonNotFound):
		h.respondError(w, http.StatusNotFound, models.ErrLessonNotFound.Error())
	default:
		h.logger.Error(message, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, message)
	}
}
