package models

import "errors"

var (
	ErrInvalidID          = errors.New("id must be positive")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrNoNextLesson       = errors.New("no next lesson")
	ErrNoPrevLesson       = errors.New("no previous lesson")
	ErrContentRequired    = errors.New("content can't be blank")
	ErrPositionTaken      = errors.New("position has already been taken")
	ErrSlugTaken          = errors.New("slug has already been taken")
	ErrTitleRequired      = errors.New("title is required")
	ErrSectionRequired    = errors.New("section is required")
	ErrPositionRequired   = errors.New("position must be positive")
	ErrSectionNotFound    = errors.New("section not found")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided")
	ErrCompletionNotFound = errors.New("lesson completion not found")
	ErrNoImportRun        = errors.New("no content import has finished yet")
)
