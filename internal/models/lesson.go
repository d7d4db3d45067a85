package models

import (
	"slices"
	"time"
)

const (
	// LessonTypeLesson is returned by Type for regular lessons
	LessonTypeLesson = "Lesson"
	// LessonTypeProject is returned by Type for project lessons
	LessonTypeProject = "Project"

	rubyLessonTitle = "Ruby"
	rubyCourseTitle = "Ruby Programming"
)

// ProjectsWithoutSubmissions lists project titles that never accept a submission
var ProjectsWithoutSubmissions = []string{
	"Installations",
	"Practicing Git Basics",
	"Building Your Resume",
}

// Lesson represents a curriculum lesson inside a section
type Lesson struct {
	ID        int       `json:"id"`
	Slug      string    `json:"slug"`
	SectionID int       `json:"sectionId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Position  int       `json:"position"`
	URL       string    `json:"url"`
	IsProject bool      `json:"isProject"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Section and Course are loaded together with the lesson when available.
	// Course is nil when the lesson's section has no course.
	Section *Section `json:"-"`
	Course  *Course  `json:"-"`

	decodedContent *string
}

// Type returns "Project" for project lessons and "Lesson" otherwise
func (l *Lesson) Type() string {
	if l.IsProject {
		return LessonTypeProject
	}
	return LessonTypeLesson
}

// HasSubmission reports whether students can submit a solution for the lesson.
//
// Only projects accept submissions, except the ones listed in ProjectsWithoutSubmissions
// and the lessons of the Ruby track.
func (l *Lesson) HasSubmission() bool {
	return l.IsProject &&
		l.acceptsSubmission() &&
		l.isNotARubyProject() // remove once the ruby lessons are revamped
}

// HasLivePreview reports whether a submission for the lesson can carry a live preview link
func (l *Lesson) HasLivePreview() bool {
	return l.HasSubmission() && l.isNotARubyProject()
}

// CourseTitle returns the title of the lesson's course or an empty string when no course is loaded
func (l *Lesson) CourseTitle() string {
	if l.Course == nil {
		return ""
	}
	return l.Course.Title
}

// SlugCandidates returns the strings the lesson slug is built from, in order of preference
func (l *Lesson) SlugCandidates() []string {
	candidates := []string{l.Title}
	if courseTitle := l.CourseTitle(); courseTitle != "" {
		return append(candidates, l.Title+" "+courseTitle)
	}
	return append(candidates, l.Title)
}

// DecodedContent returns the decoded upstream content of the lesson.
//
// load is called only the first time; its result is kept for the lifetime of the Lesson value.
// Errors are not cached, so a failed load is retried on the next call.
func (l *Lesson) DecodedContent(load func() (string, error)) (string, error) {
	if l.decodedContent != nil {
		return *l.decodedContent, nil
	}
	content, err := load()
	if err != nil {
		return "", err
	}
	l.decodedContent = &content
	return content, nil
}

func (l *Lesson) acceptsSubmission() bool {
	return !slices.Contains(ProjectsWithoutSubmissions, l.Title)
}

func (l *Lesson) isNotARubyProject() bool {
	return l.Title != rubyLessonTitle && l.CourseTitle() != rubyCourseTitle
}

// LessonResponse represents a lesson together with its derived attributes
//
// Completed is set only when the request identifies a student.
type LessonResponse struct {
	ID                int      `json:"id"`
	Slug              string   `json:"slug"`
	SectionID         int      `json:"sectionId"`
	CourseID          int      `json:"courseId,omitempty"`
	CourseTitle       string   `json:"courseTitle,omitempty"`
	Title             string   `json:"title"`
	Content           string   `json:"content"`
	Position          int      `json:"position"`
	PositionInSection int      `json:"positionInSection"`
	URL               string   `json:"url"`
	Type              string   `json:"type"`
	HasSubmission     bool     `json:"hasSubmission"`
	HasLivePreview    bool     `json:"hasLivePreview"`
	Project           *Project `json:"project,omitempty"`
	Completed         *bool    `json:"completed,omitempty"`
}

// LessonNavigationItem represents a neighbouring lesson in curriculum order
type LessonNavigationItem struct {
	ID    int    `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// CreateLessonRequest represents a request to create a lesson
type CreateLessonRequest struct {
	SectionID int    `json:"sectionId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Position  int    `json:"position"`
	URL       string `json:"url"`
	IsProject bool   `json:"isProject"`
}

// UpdateLessonRequest represents a request to update a lesson (partial update)
type UpdateLessonRequest struct {
	SectionID      *int    `json:"sectionId,omitempty"`
	Title          *string `json:"title,omitempty"`
	Content        *string `json:"content,omitempty"`
	Position       *int    `json:"position,omitempty"`
	URL            *string `json:"url,omitempty"`
	IsProject      *bool   `json:"isProject,omitempty"`
	RegenerateSlug bool    `json:"regenerateSlug,omitempty"`
}

// IsEmpty reports whether the request changes nothing
func (r *UpdateLessonRequest) IsEmpty() bool {
	return r.SectionID == nil && r.Title == nil && r.Content == nil &&
		r.Position == nil && r.URL == nil && r.IsProject == nil && !r.RegenerateSlug
}
