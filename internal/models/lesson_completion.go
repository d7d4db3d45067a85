package models

import "time"

// LessonCompletion links a student to a lesson they have finished
type LessonCompletion struct {
	ID        int       `json:"id"`
	LessonID  int       `json:"lessonId"`
	StudentID int       `json:"studentId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompletionStatusResponse represents the completion state of a lesson for a student
type CompletionStatusResponse struct {
	LessonID  int  `json:"lessonId"`
	Completed bool `json:"completed"`
}

// CompletingStudentsResponse lists the students who completed a lesson
type CompletingStudentsResponse struct {
	LessonID   int   `json:"lessonId"`
	StudentIDs []int `json:"studentIds"`
}
