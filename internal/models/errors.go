package models

import (
	"errors"
	"fmt"
)

// ErrLessonNotFound is returned when no lesson has the requested ID
var ErrLessonNotFound = errors.New("lesson not found")

// ValidationError describes malformed or missing lesson creation input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the backing persistence layer
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
