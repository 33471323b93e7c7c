package models

import "fmt"

// Status is the lifecycle state of an action item.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// UnmarshalText rejects unknown statuses.
func (s *Status) UnmarshalText(b []byte) error {
	v := Status(b)
	if !v.Valid() {
		return fmt.Errorf("unknown action item status %q", string(b))
	}
	*s = v
	return nil
}

// ActionItem is one obligation extracted from meeting text.
// Deadline is the phrase as it appeared in the text, never a parsed date;
// an empty Deadline means none was found.
type ActionItem struct {
	Description string `json:"description" yaml:"description"`
	Assignee    string `json:"assignee" yaml:"assignee"`
	Deadline    string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Status      Status `json:"status" yaml:"status"`
}

// HasDeadline reports whether a deadline phrase was resolved.
func (a ActionItem) HasDeadline() bool {
	return a.Deadline != ""
}
