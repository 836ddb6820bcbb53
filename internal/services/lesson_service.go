package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lessonforge/backend/internal/content"
	"github.com/lessonforge/backend/internal/models"
	"go.uber.org/zap"
)

// LessonRepository is the interface that wraps methods for lesson storage.
// Both the in-memory and the MySQL backends implement it.
type LessonRepository interface {
	// Method GetAll retrieve all lessons ordered by creation time, newest first.
	//
	// Lessons with equal creation time are returned in insertion order.
	GetAll(ctx context.Context) ([]models.Lesson, error)
	// Method GetByID retrieve a lesson by its ID.
	//
	// models.ErrLessonNotFound is returned when no lesson has the given ID.
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// Method Create persist a new lesson and set its ID.
	//
	// On error the lesson must not be considered stored.
	Create(ctx context.Context, lesson *models.Lesson) error
	// Method Delete remove a lesson by its ID.
	//
	// Returns false with a nil error when no lesson had the given ID.
	Delete(ctx context.Context, id int) (bool, error)
	// Method AppendContent atomically append "extra" to the lesson content and add "readTimeIncrement" to its read time.
	//
	// Returns the updated lesson or models.ErrLessonNotFound.
	AppendContent(ctx context.Context, id int, extra string, readTimeIncrement int) (*models.Lesson, error)
}

type lessonService struct {
	repo   LessonRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewLessonService creates a new lesson service
func NewLessonService(repo LessonRepository, logger *zap.Logger) *lessonService {
	return &lessonService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// GetLessons retrieves all lessons, newest first.
//
// A storage failure is logged and an empty list is returned instead of an error.
func (s *lessonService) GetLessons(ctx context.Context) ([]models.Lesson, error) {
	lessons, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get lessons, returning empty list", zap.Error(err))
		return []models.Lesson{}, nil
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}

	return lessons, nil
}

// GetLesson retrieves a lesson by its ID
func (s *lessonService) GetLesson(ctx context.Context, id int) (*models.Lesson, error) {
	if id <= 0 {
		return nil, models.ErrLessonNotFound
	}

	lesson, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrLessonNotFound) {
			return nil, models.ErrLessonNotFound
		}
		s.logger.Error("failed to get lesson", zap.Error(err), zap.Int("id", id))
		return nil, asStorageError("get lesson", err)
	}

	return lesson, nil
}

// CreateLesson validates the input, fills generated fields and stores the lesson.
//
// Content, read time and quiz are generated only when not supplied by the caller.
// A supplied read time is raised to content.MinReadTime, and a quiz is kept only when IncludeQuiz is set.
func (s *lessonService) CreateLesson(ctx context.Context, input *models.CreateLessonInput) (*models.Lesson, error) {
	if input == nil {
		return nil, &models.ValidationError{Message: "lesson input is required"}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		Topic:                  input.Topic,
		GradeLevel:             input.GradeLevel,
		LessonStyle:            input.LessonStyle,
		AdditionalInstructions: input.AdditionalInstructions,
		IncludeQuiz:            input.IncludeQuiz,
		Content:                input.Content,
		ReadTime:               input.ReadTime,
		Quiz:                   input.Quiz,
		CreatedAt:              s.now().UTC().Truncate(time.Microsecond),
	}

	if lesson.Content == "" {
		lesson.Content = content.InitialFor(lesson.Topic, lesson.GradeLevel, lesson.LessonStyle)
	}
	if lesson.ReadTime <= 0 {
		lesson.ReadTime = content.EstimateReadTime(lesson.Content)
	}
	lesson.ReadTime = max(lesson.ReadTime, content.MinReadTime)

	switch {
	case !lesson.IncludeQuiz:
		lesson.Quiz = nil
	case lesson.Quiz == nil:
		lesson.Quiz = content.Quiz(lesson.Topic)
	}
	for i, q := range lesson.Quiz {
		if !q.Valid() {
			return nil, &models.ValidationError{
				Field:   "quiz",
				Message: fmt.Sprintf("quiz question %d has correct answer %d out of range", i+1, q.CorrectAnswer),
			}
		}
	}

	if err := s.repo.Create(ctx, lesson); err != nil {
		s.logger.Error("failed to create lesson", zap.Error(err), zap.String("topic", lesson.Topic))
		return nil, asStorageError("create lesson", err)
	}

	s.logger.Info("lesson created", zap.Int("id", lesson.ID), zap.String("topic", lesson.Topic))
	return lesson, nil
}

// DeleteLesson removes a lesson and reports whether it existed
func (s *lessonService) DeleteLesson(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete lesson", zap.Error(err), zap.Int("id", id))
		return false, asStorageError("delete lesson", err)
	}

	return deleted, nil
}

// ContinueLesson appends a generated continuation to the lesson and increases its read time
func (s *lessonService) ContinueLesson(ctx context.Context, id int) (*models.Lesson, error) {
	lesson, err := s.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.AppendContent(ctx, id, content.Continuation(lesson.Topic), content.ContinueReadTimeIncrement)
	if err != nil {
		if errors.Is(err, models.ErrLessonNotFound) {
			return nil, models.ErrLessonNotFound
		}
		s.logger.Error("failed to continue lesson", zap.Error(err), zap.Int("id", id))
		return nil, asStorageError("continue lesson", err)
	}

	return updated, nil
}

// SeedExamples stores the example lessons
func (s *lessonService) SeedExamples(ctx context.Context) error {
	for _, example := range content.ExampleLessons() {
		if _, err := s.CreateLesson(ctx, &example); err != nil {
			return fmt.Errorf("failed to seed lesson %q: %w", example.Topic, err)
		}
	}
	return nil
}

// asStorageError keeps an existing *models.StorageError and wraps anything else
func asStorageError(op string, err error) error {
	var storageErr *models.StorageError
	if errors.As(err, &storageErr) {
		return storageErr
	}
	return &models.StorageError{Op: op, Err: err}
}
