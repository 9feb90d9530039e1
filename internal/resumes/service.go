package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hunterai-backend/internal/extract"
	"hunterai-backend/internal/shared/storage/object"
	"hunterai-backend/internal/shared/telemetry"
)

// UnparseableSummary is stored when the file is a known format but cannot be decoded.
const UnparseableSummary = "Unable to parse resume. Please ensure the file is a valid PDF or DOCX format."

// Service contains business logic for resumes.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file to object storage, extracts its text and records the
// parsed resume. A file that decodes but yields no recognizable sections still
// produces a record with placeholder content.
func (s *Service) Upload(ctx context.Context, fileName string, data []byte) (Resume, error) {
	if fileName == "" || len(data) == 0 {
		return Resume{}, ErrInvalidInput
	}

	if _, _, _, err := s.Store.Save(ctx, fileName, bytes.NewReader(data)); err != nil {
		return Resume{}, err
	}

	now := time.Now().UTC()
	text, err := extract.Text(data, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return Resume{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		telemetry.Warn("resume text extraction failed", map[string]any{
			"file_name": fileName,
			"error":     err.Error(),
		})
		resume := Resume{
			ID:          uuid.NewString(),
			Name:        fileName,
			Version:     "1.0",
			Summary:     UnparseableSummary,
			Skills:      []string{},
			Experiences: []Experience{},
			Projects:    []Project{},
			CreatedAt:   now,
		}
		if err := s.Repo.Create(ctx, resume); err != nil {
			return Resume{}, err
		}
		return resume, nil
	}

	parsed := Parse(text)
	resume := Resume{
		ID:        uuid.NewString(),
		Name:      fileName,
		Version:   "1.0",
		Summary:   parsed.Summary,
		Skills:    parsed.Skills,
		CreatedAt: now,
	}
	for _, exp := range parsed.Experiences {
		role := exp.Role
		if role == "" {
			role = "Position"
		}
		company := exp.Company
		if company == "" {
			company = "Company"
		}
		resume.Experiences = append(resume.Experiences, Experience{
			ID:       uuid.NewString(),
			ResumeID: resume.ID,
			Role:     role,
			Company:  company,
			Duration: exp.Duration,
			Bullets:  exp.Bullets,
		})
	}
	for _, proj := range parsed.Projects {
		resume.Projects = append(resume.Projects, Project{
			ID:           uuid.NewString(),
			ResumeID:     resume.ID,
			Name:         proj.Name,
			Description:  proj.Description,
			Technologies: proj.Technologies,
		})
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get returns a stored resume by id.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	if id == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}
