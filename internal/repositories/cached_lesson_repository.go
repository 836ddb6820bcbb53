package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lessonforge/backend/internal/models"
	"go.uber.org/zap"
)

const (
	lessonCacheKeyPrefix = "lesson:"
	// lessonTombstone marks a deleted lesson so a racing read-through cannot bring it back
	lessonTombstone    = "deleted"
	lessonTombstoneTTL = time.Minute
)

// lessonBackend is the set of lesson storage methods wrapped by the cache
type lessonBackend interface {
	GetAll(ctx context.Context) ([]models.Lesson, error)
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int) (bool, error)
	AppendContent(ctx context.Context, id int, extra string, readTimeIncrement int) (*models.Lesson, error)
}

// cachedLessonRepository is a Redis read-through cache for single lesson lookups.
// Redis failures are logged and never returned to the caller.
// Mutations overwrite the cache entry while read-through fills only use SETNX,
// so a fill that loaded the lesson before a mutation never replaces the mutation's entry.
type cachedLessonRepository struct {
	next   lessonBackend
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedLessonRepository wraps next with a Redis cache of lessons by ID
func NewCachedLessonRepository(next lessonBackend, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *cachedLessonRepository {
	return &cachedLessonRepository{
		next:   next,
		redis:  rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func lessonCacheKey(id int) string {
	return fmt.Sprintf("%s%d", lessonCacheKeyPrefix, id)
}

// GetAll is not cached
func (r *cachedLessonRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	return r.next.GetAll(ctx)
}

// GetByID serves the lesson from Redis when present, otherwise loads and caches it
func (r *cachedLessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	key := lessonCacheKey(id)

	data, err := r.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == lessonTombstone {
			return nil, models.ErrLessonNotFound
		}
		var lesson models.Lesson
		decodeErr := json.Unmarshal(data, &lesson)
		if decodeErr == nil {
			return &lesson, nil
		}
		r.logger.Warn("failed to decode cached lesson", zap.Int("id", id), zap.Error(decodeErr))
		r.evict(ctx, id)
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("failed to read lesson from cache", zap.Int("id", id), zap.Error(err))
	}

	lesson, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, lesson)
	return lesson, nil
}

// Create is not cached; the lesson is cached on its first read
func (r *cachedLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	return r.next.Create(ctx, lesson)
}

// Delete removes the lesson and replaces its cache entry with a tombstone
func (r *cachedLessonRepository) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if err := r.redis.Set(ctx, lessonCacheKey(id), lessonTombstone, lessonTombstoneTTL).Err(); err != nil {
		r.logger.Warn("failed to write lesson tombstone to cache", zap.Int("id", id), zap.Error(err))
		r.evict(ctx, id)
	}
	return deleted, nil
}

// AppendContent updates the lesson and caches the updated version
func (r *cachedLessonRepository) AppendContent(ctx context.Context, id int, extra string, readTimeIncrement int) (*models.Lesson, error) {
	lesson, err := r.next.AppendContent(ctx, id, extra, readTimeIncrement)
	if err != nil {
		r.evict(ctx, id)
		return nil, err
	}

	data, encodeErr := json.Marshal(lesson)
	if encodeErr == nil {
		encodeErr = r.redis.Set(ctx, lessonCacheKey(id), data, r.ttl).Err()
	}
	if encodeErr != nil {
		r.logger.Warn("failed to write updated lesson to cache", zap.Int("id", id), zap.Error(encodeErr))
		r.evict(ctx, id)
	}
	return lesson, nil
}

// store fills the cache after a miss without overwriting an entry written meanwhile
func (r *cachedLessonRepository) store(ctx context.Context, lesson *models.Lesson) {
	data, err := json.Marshal(lesson)
	if err != nil {
		r.logger.Warn("failed to encode lesson for cache", zap.Int("id", lesson.ID), zap.Error(err))
		return
	}
	if err := r.redis.SetNX(ctx, lessonCacheKey(lesson.ID), data, r.ttl).Err(); err != nil {
		r.logger.Warn("failed to write lesson to cache", zap.Int("id", lesson.ID), zap.Error(err))
	}
}

func (r *cachedLessonRepository) evict(ctx context.Context, id int) {
	if err := r.redis.Del(ctx, lessonCacheKey(id)).Err(); err != nil {
		r.logger.Warn("failed to evict lesson from cache", zap.Int("id", id), zap.Error(err))
	}
}
