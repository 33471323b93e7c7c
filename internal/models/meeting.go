package models

import "time"

// Result is what one pipeline run produces.
type Result struct {
	Transcript  string       `json:"transcript"`
	Summary     string       `json:"summary"`
	ActionItems []ActionItem `json:"action_items"`
}

// MeetingStatus tracks a meeting report through processing.
type MeetingStatus string

const (
	MeetingProcessing MeetingStatus = "processing"
	MeetingCompleted  MeetingStatus = "completed"
	MeetingFailed     MeetingStatus = "failed"
)

// Source is the kind of input a meeting came from.
type Source string

const (
	SourceText  Source = "text"
	SourceAudio Source = "audio"
)

// Meeting is the report written for every processed input.
type Meeting struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Source      Source        `json:"source"`
	Status      MeetingStatus `json:"status"`
	Transcript  string        `json:"transcript"`
	Summary     string        `json:"summary"`
	ActionItems []ActionItem  `json:"action_items"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Complete copies res into m and marks it completed.
func (m *Meeting) Complete(res Result, at time.Time) {
	m.Transcript = res.Transcript
	m.Summary = res.Summary
	m.ActionItems = res.ActionItems
	m.Status = MeetingCompleted
	m.UpdatedAt = at
}

// Fail marks m failed.
func (m *Meeting) Fail(at time.Time) {
	m.Status = MeetingFailed
	m.UpdatedAt = at
}
