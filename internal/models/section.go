package models

// Section groups lessons inside a course
type Section struct {
	ID       int    `json:"id"`
	CourseID int    `json:"courseId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// Course represents a course owning sections
type Course struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Project represents the project attached to a lesson
type Project struct {
	ID       int    `json:"id"`
	LessonID int    `json:"lessonId"`
	RepoURL  string `json:"repoUrl"`
}
