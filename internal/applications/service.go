package applications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hunterai-backend/internal/jobs"
	"hunterai-backend/internal/resumes"
)

// ResumeGetter resolves a stored resume.
type ResumeGetter interface {
	Get(ctx context.Context, id string) (resumes.Resume, error)
}

// JobGetter resolves a stored job description.
type JobGetter interface {
	Get(ctx context.Context, id string) (jobs.JobDescription, error)
}

// Service contains business logic for application tracking.
type Service struct {
	Repo    Repo
	Resumes ResumeGetter
	Jobs    JobGetter
}

// Create starts tracking an application against a job description, copying
// company, role and link from the posting.
func (s *Service) Create(ctx context.Context, jobDescriptionID, resumeID string) (Application, error) {
	if jobDescriptionID == "" || resumeID == "" {
		return Application{}, fmt.Errorf("%w: jobDescriptionId and resumeId are required", ErrInvalidInput)
	}
	jd, err := s.Jobs.Get(ctx, jobDescriptionID)
	if err != nil {
		return Application{}, err
	}
	if _, err := s.Resumes.Get(ctx, resumeID); err != nil {
		return Application{}, err
	}

	now := time.Now().UTC()
	app := Application{
		ID:        uuid.NewString(),
		Company:   jd.Company,
		Role:      jd.Title,
		JobLink:   jd.URL,
		ResumeID:  resumeID,
		Status:    StatusNotApplied,
		CreatedAt: now,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}

	event := TimelineEvent{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		Type:          EventOptimized,
		Title:         "Resume Optimized",
		Description:   fmt.Sprintf("Resume optimized for %s - %s", jd.Company, jd.Title),
		Date:          now,
	}
	if err := s.Repo.AddEvent(ctx, event); err != nil {
		return Application{}, err
	}

	return s.Repo.GetByID(ctx, app.ID)
}

// Get returns an application with its notes and timeline.
func (s *Service) Get(ctx context.Context, id string) (Application, error) {
	if id == "" {
		return Application{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns applications, optionally filtered by a company/role search term
// or a status.
func (s *Service) List(ctx context.Context, search, status string) ([]Application, error) {
	filter := Filter{Search: strings.TrimSpace(search)}
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = parsed
	}
	return s.Repo.List(ctx, filter)
}

// UpdateStatus moves an application to a new status. The first transition to
// APPLIED stamps the application date.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Application, error) {
	if id == "" {
		return Application{}, ErrInvalidInput
	}
	app, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	now := time.Now().UTC()
	app.Status = status
	if status == StatusApplied && app.ApplicationDate == nil {
		app.ApplicationDate = &now
	}
	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}

	event := TimelineEvent{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		Type:          EventStatusChange,
		Title:         "Status changed to " + strings.ReplaceAll(strings.ToLower(string(status)), "_", " "),
		Description:   "Application status updated",
		Date:          now,
	}
	if err := s.Repo.AddEvent(ctx, event); err != nil {
		return Application{}, err
	}

	return s.Repo.GetByID(ctx, app.ID)
}

// AddNote attaches a note and records it on the timeline.
func (s *Service) AddNote(ctx context.Context, id, content string) (Application, error) {
	if id == "" || strings.TrimSpace(content) == "" {
		return Application{}, fmt.Errorf("%w: note content is required", ErrInvalidInput)
	}
	app, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	now := time.Now().UTC()
	note := Note{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		Content:       content,
		CreatedAt:     now,
	}
	if err := s.Repo.AddNote(ctx, note); err != nil {
		return Application{}, err
	}

	event := TimelineEvent{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		Type:          EventNote,
		Title:         "Note added",
		Description:   content,
		Date:          now,
	}
	if err := s.Repo.AddEvent(ctx, event); err != nil {
		return Application{}, err
	}

	return s.Repo.GetByID(ctx, app.ID)
}
