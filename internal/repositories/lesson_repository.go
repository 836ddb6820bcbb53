package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lessonforge/backend/internal/models"
	"go.uber.org/zap"
)

const lessonColumns = `id, topic, grade_level, lesson_style, additional_instructions, include_quiz, content, read_time, quiz, created_at`

type lessonRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewLessonRepository creates a new MySQL backed lesson repository
func NewLessonRepository(db *sql.DB, logger *zap.Logger) *lessonRepository {
	return &lessonRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLesson(s rowScanner) (*models.Lesson, error) {
	var lesson models.Lesson
	var instructions sql.NullString
	var quizJSON sql.NullString
	err := s.Scan(
		&lesson.ID,
		&lesson.Topic,
		&lesson.GradeLevel,
		&lesson.LessonStyle,
		&instructions,
		&lesson.IncludeQuiz,
		&lesson.Content,
		&lesson.ReadTime,
		&quizJSON,
		&lesson.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if instructions.Valid {
		lesson.AdditionalInstructions = &instructions.String
	}
	if quizJSON.Valid && quizJSON.String != "" && quizJSON.String != "null" {
		if err := json.Unmarshal([]byte(quizJSON.String), &lesson.Quiz); err != nil {
			return nil, fmt.Errorf("failed to decode quiz: %w", err)
		}
	}

	return &lesson, nil
}

// GetAll retrieves all lessons, newest first.
// Lessons created at the same moment keep their insertion order.
func (r *lessonRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query lessons", zap.Error(err))
		return nil, &models.StorageError{Op: "query lessons", Err: err}
	}
	defer rows.Close()

	lessons := make([]models.Lesson, 0)
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			r.logger.Error("failed to scan lesson", zap.Error(err))
			return nil, &models.StorageError{Op: "scan lesson", Err: err}
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, &models.StorageError{Op: "iterate lessons", Err: err}
	}

	return lessons, nil
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	lesson, err := scanLesson(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLessonNotFound
	}
	if err != nil {
		r.logger.Error("failed to query lesson by id", zap.Error(err), zap.Int("id", id))
		return nil, &models.StorageError{Op: "get lesson by id", Err: err}
	}

	return lesson, nil
}

// Create inserts a new lesson and sets its ID
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	quiz, err := quizValue(lesson.Quiz)
	if err != nil {
		return &models.StorageError{Op: "encode quiz", Err: err}
	}

	query := `
		INSERT INTO lessons (topic, grade_level, lesson_style, additional_instructions, include_quiz, content, read_time, quiz, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		lesson.Topic,
		string(lesson.GradeLevel),
		string(lesson.LessonStyle),
		nullString(lesson.AdditionalInstructions),
		lesson.IncludeQuiz,
		lesson.Content,
		lesson.ReadTime,
		quiz,
		lesson.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert lesson", zap.Error(err), zap.String("topic", lesson.Topic))
		return &models.StorageError{Op: "create lesson", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return &models.StorageError{Op: "get last insert id", Err: err}
	}

	lesson.ID = int(id)
	return nil
}

// Delete removes a lesson by ID and reports whether a row existed
func (r *lessonRepository) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM lessons WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete lesson", zap.Error(err), zap.Int("id", id))
		return false, &models.StorageError{Op: "delete lesson", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err), zap.Int("id", id))
		return false, &models.StorageError{Op: "get rows affected", Err: err}
	}

	return rowsAffected > 0, nil
}

// AppendContent appends extra to the lesson content and increases its read time in one statement.
// It returns the updated lesson.
func (r *lessonRepository) AppendContent(ctx context.Context, id int, extra string, readTimeIncrement int) (*models.Lesson, error) {
	query := `
		UPDATE lessons
		SET content = CONCAT(content, ?), read_time = read_time + ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, extra, readTimeIncrement, id)
	if err != nil {
		r.logger.Error("failed to append lesson content", zap.Error(err), zap.Int("id", id))
		return nil, &models.StorageError{Op: "append lesson content", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err), zap.Int("id", id))
		return nil, &models.StorageError{Op: "get rows affected", Err: err}
	}
	if rowsAffected == 0 {
		return nil, models.ErrLessonNotFound
	}

	return r.GetByID(ctx, id)
}

func quizValue(quiz []models.QuizQuestion) (any, error) {
	if quiz == nil {
		return nil, nil
	}
	data, err := json.Marshal(quiz)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
