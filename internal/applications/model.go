package applications

import (
	"fmt"
	"strings"
	"time"
)

// Status is the progress state of a job application.
type Status string

const (
	StatusNotApplied Status = "NOT_APPLIED"
	StatusApplied    Status = "APPLIED"
	StatusInterview  Status = "INTERVIEW"
	StatusOffer      Status = "OFFER"
	StatusRejected   Status = "REJECTED"
)

// ParseStatus validates a status string, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusNotApplied:
		return StatusNotApplied, nil
	case StatusApplied:
		return StatusApplied, nil
	case StatusInterview:
		return StatusInterview, nil
	case StatusOffer:
		return StatusOffer, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
	}
}

// EventType classifies a timeline event.
type EventType string

const (
	EventOptimized    EventType = "OPTIMIZED"
	EventSubmitted    EventType = "SUBMITTED"
	EventStatusChange EventType = "STATUS_CHANGE"
	EventNote         EventType = "NOTE"
)

// Application tracks one job application with its notes and timeline.
type Application struct {
	ID              string
	Company         string
	Role            string
	JobLink         string
	ResumeID        string
	Status          Status
	ApplicationDate *time.Time
	CreatedAt       time.Time
	Notes           []Note
	Timeline        []TimelineEvent
}

// Note is a free-form note attached to an application.
type Note struct {
	ID            string
	ApplicationID string
	Content       string
	CreatedAt     time.Time
}

// TimelineEvent is one entry in an application's history.
type TimelineEvent struct {
	ID            string
	ApplicationID string
	Type          EventType
	Title         string
	Description   string
	Date          time.Time
}
