// Package content produces the template based lesson bodies and quizzes
package content

import (
	"fmt"
	"strings"

	"github.com/lessonforge/backend/internal/models"
)

const (
	// WordsPerMinute is the reading speed used by EstimateReadTime
	WordsPerMinute = 200
	// MinReadTime is the lower bound of any estimated read time, in minutes
	MinReadTime = 5
	// ContinueReadTimeIncrement is added to the read time of a lesson on every continuation
	ContinueReadTimeIncrement = 5
)

// Initial returns the body of a new lesson about topic
func Initial(topic string) string {
	return initial(topic, "")
}

// InitialFor returns the body of a new lesson about topic whose introduction names
// the audience and the teaching approach
func InitialFor(topic string, gradeLevel models.GradeLevel, lessonStyle models.LessonStyle) string {
	return initial(topic, fmt.Sprintf(" It's designed for %s students using a %s approach.", gradeLevel, lessonStyle))
}

func initial(topic, audience string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Introduction to %s</h2>\n", topic)
	fmt.Fprintf(&b, "<p>This lesson introduces %s.%s It walks through the ideas behind the subject, how they fit together and where they are used.</p>\n\n", topic, audience)

	b.WriteString("<h2>Key Concepts</h2>\n")
	fmt.Fprintf(&b, "<p>Here are some important concepts related to %s:</p>\n", topic)
	b.WriteString("<ul>\n")
	for _, concept := range []string{
		"Understanding the fundamentals",
		"Historical development",
		"Modern applications",
		"Future directions",
	} {
		fmt.Fprintf(&b, "  <li>%s</li>\n", concept)
	}
	b.WriteString("</ul>\n\n")

	b.WriteString("<h2>Main Principles</h2>\n")
	fmt.Fprintf(&b, "<p>The main principles underlying %s include systematic approaches, analytical thinking, and creative problem-solving. These principles help us understand how %s works in various contexts.</p>\n\n", topic, topic)

	b.WriteString("<h2>Practical Applications</h2>\n")
	fmt.Fprintf(&b, "<p>There are numerous practical applications of %s in everyday life and professional settings. These applications demonstrate the versatility and importance of this subject area.</p>\n\n", topic)

	b.WriteString("<h2>Summary</h2>\n")
	fmt.Fprintf(&b, "<p>In this lesson, we have explored the fundamental aspects of %s, including its key concepts, main principles, and practical applications. Understanding these elements provides a solid foundation for further study and application of this important subject.</p>", topic)

	return b.String()
}

// Continuation returns the section appended to a lesson when it is continued.
// The result starts with a blank line and must be concatenated to the existing content.
func Continuation(topic string) string {
	return fmt.Sprintf("\n\n<h2>Advanced Concepts in %s</h2>\n"+
		"<p>Building on the fundamentals, this section looks at how the ideas of %s combine in more demanding situations, "+
		"where the simple rules start to interact and trade-offs have to be weighed.</p>", topic, topic)
}

// Quiz returns three multiple choice questions about topic
func Quiz(topic string) []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			Question: fmt.Sprintf("What is a primary characteristic of %s?", topic),
			Options: []string{
				"It only applies to theoretical contexts",
				"It integrates multiple disciplinary approaches",
				"It was developed in the 21st century",
				"It requires specialized equipment to study",
			},
			CorrectAnswer: 1,
		},
		{
			Question: fmt.Sprintf("Which of the following is NOT typically associated with %s?", topic),
			Options: []string{
				"Systematic analysis",
				"Historical development",
				"Random application without principles",
				"Practical applications",
			},
			CorrectAnswer: 2,
		},
		{
			Question: fmt.Sprintf("What is an important consideration when studying %s?", topic),
			Options: []string{
				"Understanding fundamental principles",
				"Ignoring historical context",
				"Avoiding practical applications",
				"Limiting to a single perspective",
			},
			CorrectAnswer: 0,
		},
	}
}

// EstimateReadTime returns the reading time of content in whole minutes, never less than MinReadTime
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	return max(MinReadTime, minutes)
}
