package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lessonforge/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var lessonRowColumns = []string{"id", "topic", "grade_level", "lesson_style", "additional_instructions", "include_quiz", "content", "read_time", "quiz", "created_at"}

const quizJSON = `[{"question":"What is a primary characteristic of Photosynthesis?","options":["a","b","c","d"],"correctAnswer":1}]`

// setupLessonTestRepository creates a lesson repository with a mock database
func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	repo := NewLessonRepository(db, logger)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewLessonRepository(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	db := &sql.DB{}

	repo := NewLessonRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestLessonRepository_GetAll(t *testing.T) {
	newer := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedIDs   []int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(2, "Photosynthesis", "middle", "lecture", nil, true, "<p>b</p>", 5, quizJSON, newer).
					AddRow(1, "Fractions", "elementary", "practical", "use pizza", false, "<p>a</p>", 7, nil, older)
				mock.ExpectQuery(`SELECT (.+) FROM lessons ORDER BY created_at DESC, id ASC`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedIDs:   []int{2, 1},
		},
		{
			name: "empty result",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM lessons ORDER BY created_at DESC, id ASC`).
					WillReturnRows(sqlmock.NewRows(lessonRowColumns))
			},
			expectedError: false,
			expectedIDs:   []int{},
		},
		{
			name: "database query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM lessons`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow("invalid", "Fractions", "elementary", "practical", nil, false, "<p>a</p>", 7, nil, older)
				mock.ExpectQuery(`SELECT (.+) FROM lessons`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name: "invalid quiz json",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(1, "Fractions", "elementary", "practical", nil, true, "<p>a</p>", 7, "{broken", older)
				mock.ExpectQuery(`SELECT (.+) FROM lessons`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
		{
			name: "rows iteration error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(1, "Fractions", "elementary", "practical", nil, false, "<p>a</p>", 7, nil, older).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`SELECT (.+) FROM lessons`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				var storageErr *models.StorageError
				assert.True(t, errors.As(err, &storageErr))
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				ids := make([]int, 0, len(result))
				for _, lesson := range result {
					ids = append(ids, lesson.ID)
				}
				assert.Equal(t, tt.expectedIDs, ids)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_GetAllMapsColumns(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	createdAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(lessonRowColumns).
		AddRow(3, "Photosynthesis", "middle", "lecture", "focus on leaves", true, "<p>body</p>", 9, quizJSON, createdAt)
	mock.ExpectQuery(`SELECT (.+) FROM lessons`).WillReturnRows(rows)

	result, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)

	lesson := result[0]
	assert.Equal(t, 3, lesson.ID)
	assert.Equal(t, "Photosynthesis", lesson.Topic)
	assert.Equal(t, models.GradeLevelMiddle, lesson.GradeLevel)
	assert.Equal(t, models.LessonStyleLecture, lesson.LessonStyle)
	require.NotNil(t, lesson.AdditionalInstructions)
	assert.Equal(t, "focus on leaves", *lesson.AdditionalInstructions)
	assert.True(t, lesson.IncludeQuiz)
	assert.Equal(t, "<p>body</p>", lesson.Content)
	assert.Equal(t, 9, lesson.ReadTime)
	require.Len(t, lesson.Quiz, 1)
	assert.Equal(t, 1, lesson.Quiz[0].CorrectAnswer)
	assert.Len(t, lesson.Quiz[0].Options, 4)
	assert.Equal(t, createdAt, lesson.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_GetByID(t *testing.T) {
	createdAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		storageError  bool
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(1, "Fractions", "elementary", "practical", nil, false, "<p>a</p>", 5, nil, createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM lessons WHERE id = \? LIMIT 1`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "lesson not found",
			id:   999,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM lessons WHERE id = \? LIMIT 1`).
					WithArgs(999).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrLessonNotFound,
		},
		{
			name: "database error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM lessons WHERE id = \? LIMIT 1`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			storageError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.id)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			case tt.storageError:
				var storageErr *models.StorageError
				assert.True(t, errors.As(err, &storageErr))
				assert.Contains(t, err.Error(), "failed to get lesson by id")
				assert.Nil(t, result)
			default:
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, 1, result.ID)
				assert.Nil(t, result.AdditionalInstructions)
				assert.Nil(t, result.Quiz)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_Create(t *testing.T) {
	instructions := "keep it short"
	createdAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		lesson        *models.Lesson
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name: "success with quiz",
			lesson: &models.Lesson{
				Topic:                  "Photosynthesis",
				GradeLevel:             models.GradeLevelMiddle,
				LessonStyle:            models.LessonStyleLecture,
				AdditionalInstructions: &instructions,
				IncludeQuiz:            true,
				Content:                "<p>body</p>",
				ReadTime:               5,
				Quiz: []models.QuizQuestion{
					{
						Question:      "What is a primary characteristic of Photosynthesis?",
						Options:       []string{"a", "b", "c", "d"},
						CorrectAnswer: 1,
					},
				},
				CreatedAt: createdAt,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO lessons \(topic, grade_level, lesson_style, additional_instructions, include_quiz, content, read_time, quiz, created_at\) VALUES \(\?, \?, \?, \?, \?, \?, \?, \?, \?\)`).
					WithArgs("Photosynthesis", "middle", "lecture", "keep it short", true, "<p>body</p>", 5, quizJSON, createdAt).
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			expectedError: false,
			expectedID:    7,
		},
		{
			name: "success without optional fields",
			lesson: &models.Lesson{
				Topic:       "Fractions",
				GradeLevel:  models.GradeLevelElementary,
				LessonStyle: models.LessonStylePractical,
				Content:     "<p>body</p>",
				ReadTime:    5,
				CreatedAt:   createdAt,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO lessons`).
					WithArgs("Fractions", "elementary", "practical", nil, false, "<p>body</p>", 5, nil, createdAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedError: false,
			expectedID:    1,
		},
		{
			name: "database error",
			lesson: &models.Lesson{
				Topic:       "Fractions",
				GradeLevel:  models.GradeLevelElementary,
				LessonStyle: models.LessonStylePractical,
				Content:     "<p>body</p>",
				ReadTime:    5,
				CreatedAt:   createdAt,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO lessons`).
					WillReturnError(errors.New("constraint violation"))
			},
			expectedError: true,
		},
		{
			name: "last insert id error",
			lesson: &models.Lesson{
				Topic:       "Fractions",
				GradeLevel:  models.GradeLevelElementary,
				LessonStyle: models.LessonStylePractical,
				Content:     "<p>body</p>",
				ReadTime:    5,
				CreatedAt:   createdAt,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO lessons`).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no id")))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.lesson)

			if tt.expectedError {
				var storageErr *models.StorageError
				assert.True(t, errors.As(err, &storageErr))
				assert.Zero(t, tt.lesson.ID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.lesson.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expected      bool
		expectedError bool
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM lessons WHERE id = \?`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expected: true,
		},
		{
			name: "lesson not found",
			id:   999,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM lessons WHERE id = \?`).
					WithArgs(999).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expected: false,
		},
		{
			name: "database error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM lessons WHERE id = \?`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "rows affected error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM lessons WHERE id = \?`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected error")))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			deleted, err := repo.Delete(context.Background(), tt.id)

			if tt.expectedError {
				var storageErr *models.StorageError
				assert.True(t, errors.As(err, &storageErr))
				assert.False(t, deleted)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, deleted)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_AppendContent(t *testing.T) {
	createdAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		storageError  bool
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE lessons SET content = CONCAT\(content, \?\), read_time = read_time \+ \? WHERE id = \?`).
					WithArgs("<p>more</p>", 5, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(1, "Fractions", "elementary", "practical", nil, false, "<p>a</p><p>more</p>", 10, nil, createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM lessons WHERE id = \? LIMIT 1`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "lesson not found",
			id:   999,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE lessons SET content = CONCAT\(content, \?\)`).
					WithArgs("<p>more</p>", 5, 999).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: models.ErrLessonNotFound,
		},
		{
			name: "database error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE lessons`).
					WillReturnError(errors.New("database error"))
			},
			storageError: true,
		},
		{
			name: "reload error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE lessons`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT (.+) FROM lessons WHERE id = \?`).
					WillReturnError(errors.New("connection reset"))
			},
			storageError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.AppendContent(context.Background(), tt.id, "<p>more</p>", 5)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			case tt.storageError:
				var storageErr *models.StorageError
				assert.True(t, errors.As(err, &storageErr))
				assert.Nil(t, result)
			default:
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "<p>a</p><p>more</p>", result.Content)
				assert.Equal(t, 10, result.ReadTime)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
