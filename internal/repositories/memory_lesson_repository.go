package repositories

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/lessonforge/backend/internal/models"
	"go.uber.org/zap"
)

// memoryLessonRepository keeps lessons in process memory.
// IDs start at 1 and are never reused, even after deletes.
type memoryLessonRepository struct {
	mu      sync.RWMutex
	lessons map[int]*models.Lesson
	nextID  int
	logger  *zap.Logger
}

// NewMemoryLessonRepository creates an empty in-memory lesson repository
func NewMemoryLessonRepository(logger *zap.Logger) *memoryLessonRepository {
	return &memoryLessonRepository{
		lessons: make(map[int]*models.Lesson),
		nextID:  1,
		logger:  logger,
	}
}

// GetAll returns copies of all lessons, newest first, ties in insertion order
func (r *memoryLessonRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lessons := make([]models.Lesson, 0, len(r.lessons))
	for _, lesson := range r.lessons {
		lessons = append(lessons, *lesson.Clone())
	}

	slices.SortFunc(lessons, func(a, b models.Lesson) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return lessons, nil
}

// GetByID returns a copy of the lesson with the given ID
func (r *memoryLessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lesson, ok := r.lessons[id]
	if !ok {
		return nil, models.ErrLessonNotFound
	}
	return lesson.Clone(), nil
}

// Create stores a copy of lesson under the next ID and sets lesson.ID
func (r *memoryLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lesson.CreatedAt.IsZero() {
		lesson.CreatedAt = time.Now().UTC()
	}
	lesson.ID = r.nextID
	r.nextID++
	r.lessons[lesson.ID] = lesson.Clone()

	r.logger.Debug("lesson stored in memory", zap.Int("id", lesson.ID))
	return nil
}

// Delete removes a lesson and reports whether it existed
func (r *memoryLessonRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lessons[id]; !ok {
		return false, nil
	}
	delete(r.lessons, id)
	return true, nil
}

// AppendContent appends extra to the lesson content and increases its read time
func (r *memoryLessonRepository) AppendContent(ctx context.Context, id int, extra string, readTimeIncrement int) (*models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lesson, ok := r.lessons[id]
	if !ok {
		return nil, models.ErrLessonNotFound
	}
	lesson.Content += extra
	lesson.ReadTime += readTimeIncrement

	return lesson.Clone(), nil
}
