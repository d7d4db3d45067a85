package models

import "time"

// ContentImportStatus describes the outcome of a content import
type ContentImportStatus string

const (
	ContentImportUpdated   ContentImportStatus = "updated"
	ContentImportUnchanged ContentImportStatus = "unchanged"
	ContentImportFailed    ContentImportStatus = "failed"
)

// ContentImportResult is the outcome of importing the content of one lesson
type ContentImportResult struct {
	LessonID int                 `json:"lessonId"`
	Title    string              `json:"title"`
	Status   ContentImportStatus `json:"status"`
	Error    string              `json:"error,omitempty"`

	// Err holds the failure cause when Status is ContentImportFailed
	Err error `json:"-"`
}

// OK reports whether the import did not fail
func (r ContentImportResult) OK() bool {
	return r.Status != ContentImportFailed
}

// ContentImportSummary aggregates the results of a bulk import
type ContentImportSummary struct {
	Updated   int                   `json:"updated"`
	Unchanged int                   `json:"unchanged"`
	Failed    int                   `json:"failed"`
	Results   []ContentImportResult `json:"results"`
}

// Add records a single import result in the summary
func (s *ContentImportSummary) Add(result ContentImportResult) {
	switch result.Status {
	case ContentImportUpdated:
		s.Updated++
	case ContentImportUnchanged:
		s.Unchanged++
	case ContentImportFailed:
		s.Failed++
	}
	s.Results = append(s.Results, result)
}

// ContentImportTrigger tells what queued a bulk import
type ContentImportTrigger string

const (
	ContentImportTriggerAPI      ContentImportTrigger = "api"
	ContentImportTriggerSchedule ContentImportTrigger = "schedule"
)

// ContentImportJob describes a queued bulk import
type ContentImportJob struct {
	TaskID     string               `json:"taskId"`
	Queue      string               `json:"queue"`
	Trigger    ContentImportTrigger `json:"trigger"`
	EnqueuedAt time.Time            `json:"enqueuedAt"`
}

// ContentImportRun is the outcome of a finished bulk import
//
// Error is set when the run stopped early; Summary then holds the lessons imported before it stopped.
type ContentImportRun struct {
	TaskID     string                `json:"taskId"`
	Trigger    ContentImportTrigger  `json:"trigger"`
	StartedAt  time.Time             `json:"startedAt"`
	FinishedAt time.Time             `json:"finishedAt"`
	Error      string                `json:"error,omitempty"`
	Summary    *ContentImportSummary `json:"summary"`
}
