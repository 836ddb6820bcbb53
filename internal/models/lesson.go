package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// GradeLevel represents the audience a lesson is written for
type GradeLevel string

const (
	GradeLevelElementary GradeLevel = "elementary"
	GradeLevelMiddle     GradeLevel = "middle"
	GradeLevelHigh       GradeLevel = "high"
	GradeLevelCollege    GradeLevel = "college"
	GradeLevelAdult      GradeLevel = "adult"
)

// GradeLevels lists all accepted grade levels
var GradeLevels = []GradeLevel{
	GradeLevelElementary,
	GradeLevelMiddle,
	GradeLevelHigh,
	GradeLevelCollege,
	GradeLevelAdult,
}

// LessonStyle represents the teaching approach of a lesson
type LessonStyle string

const (
	LessonStyleExploratory  LessonStyle = "exploratory"
	LessonStyleLecture      LessonStyle = "lecture"
	LessonStyleSocratic     LessonStyle = "socratic"
	LessonStylePractical    LessonStyle = "practical"
	LessonStyleStorytelling LessonStyle = "storytelling"
)

// LessonStyles lists all accepted lesson styles
var LessonStyles = []LessonStyle{
	LessonStyleExploratory,
	LessonStyleLecture,
	LessonStyleSocratic,
	LessonStylePractical,
	LessonStyleStorytelling,
}

// MinTopicLength is the minimal number of characters in a lesson topic
const MinTopicLength = 3

// QuizQuestion represents a multiple choice question attached to a lesson
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Valid reports whether CorrectAnswer points into Options
func (q QuizQuestion) Valid() bool {
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}

// Lesson represents a generated lesson
type Lesson struct {
	ID                     int            `json:"id"`
	Topic                  string         `json:"topic"`
	GradeLevel             GradeLevel     `json:"gradeLevel"`
	LessonStyle            LessonStyle    `json:"lessonStyle"`
	AdditionalInstructions *string        `json:"additionalInstructions"`
	IncludeQuiz            bool           `json:"includeQuiz"`
	Content                string         `json:"content"`
	ReadTime               int            `json:"readTime"`
	Quiz                   []QuizQuestion `json:"quiz"`
	CreatedAt              time.Time      `json:"createdAt"`
}

// Clone returns a deep copy of the lesson
func (l *Lesson) Clone() *Lesson {
	if l == nil {
		return nil
	}
	c := *l
	if l.AdditionalInstructions != nil {
		instructions := *l.AdditionalInstructions
		c.AdditionalInstructions = &instructions
	}
	if l.Quiz != nil {
		c.Quiz = make([]QuizQuestion, len(l.Quiz))
		for i, q := range l.Quiz {
			c.Quiz[i] = QuizQuestion{
				Question:      q.Question,
				Options:       slices.Clone(q.Options),
				CorrectAnswer: q.CorrectAnswer,
			}
		}
	}
	return &c
}

// CreateLessonRequest represents a request to create a lesson
type CreateLessonRequest struct {
	Topic                  string      `json:"topic" minLength:"3" example:"Photosynthesis"`
	GradeLevel             GradeLevel  `json:"gradeLevel" enums:"elementary,middle,high,college,adult" example:"middle"`
	LessonStyle            LessonStyle `json:"lessonStyle" enums:"exploratory,lecture,socratic,practical,storytelling" example:"lecture"`
	AdditionalInstructions *string     `json:"additionalInstructions,omitempty"`
	IncludeQuiz            bool        `json:"includeQuiz" example:"true"`
}

// Validate checks the request against the lesson creation rules.
// Topic is trimmed in place. The returned error is always a *ValidationError.
func (r *CreateLessonRequest) Validate() error {
	r.Topic = strings.TrimSpace(r.Topic)
	if r.Topic == "" {
		return &ValidationError{Field: "topic", Message: "topic is required"}
	}
	if utf8.RuneCountInString(r.Topic) < MinTopicLength {
		return &ValidationError{
			Field:   "topic",
			Message: fmt.Sprintf("topic must be at least %d characters long", MinTopicLength),
		}
	}

	if r.GradeLevel == "" {
		return &ValidationError{Field: "gradeLevel", Message: "grade level is required"}
	}
	if !slices.Contains(GradeLevels, r.GradeLevel) {
		return &ValidationError{
			Field:   "gradeLevel",
			Message: fmt.Sprintf("invalid grade level: %s, must be one of %s", r.GradeLevel, joinValues(GradeLevels)),
		}
	}

	if r.LessonStyle == "" {
		return &ValidationError{Field: "lessonStyle", Message: "lesson style is required"}
	}
	if !slices.Contains(LessonStyles, r.LessonStyle) {
		return &ValidationError{
			Field:   "lessonStyle",
			Message: fmt.Sprintf("invalid lesson style: %s, must be one of %s", r.LessonStyle, joinValues(LessonStyles)),
		}
	}

	return nil
}

// CreateLessonInput is a validated creation request plus optional overrides.
// Empty Content, zero ReadTime and nil Quiz are filled by the lesson store.
type CreateLessonInput struct {
	CreateLessonRequest
	Content  string
	ReadTime int
	Quiz     []QuizQuestion
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
