package resumes

import "time"

// ResumeResponse is the outward-facing representation of a parsed resume.
type ResumeResponse struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Version          string        `json:"version"`
	CreatedAt        time.Time     `json:"createdAt"`
	OriginalContent  ResumeContent `json:"originalContent"`
	OptimizedContent ResumeContent `json:"optimizedContent"`
}

// ResumeContent groups the extracted sections.
type ResumeContent struct {
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []string          `json:"skills"`
	Projects   []ProjectEntry    `json:"projects"`
}

// ExperienceEntry is one work history entry in a response.
type ExperienceEntry struct {
	ID       string   `json:"id"`
	Company  string   `json:"company"`
	Role     string   `json:"role"`
	Duration string   `json:"duration"`
	Bullets  []string `json:"bullets"`
}

// ProjectEntry is one project entry in a response.
type ProjectEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

func toResponse(resume Resume) ResumeResponse {
	content := ResumeContent{
		Summary:    resume.Summary,
		Experience: make([]ExperienceEntry, 0, len(resume.Experiences)),
		Skills:     resume.Skills,
		Projects:   make([]ProjectEntry, 0, len(resume.Projects)),
	}
	if content.Skills == nil {
		content.Skills = []string{}
	}
	for _, exp := range resume.Experiences {
		bullets := exp.Bullets
		if bullets == nil {
			bullets = []string{}
		}
		content.Experience = append(content.Experience, ExperienceEntry{
			ID:       exp.ID,
			Company:  exp.Company,
			Role:     exp.Role,
			Duration: exp.Duration,
			Bullets:  bullets,
		})
	}
	for _, proj := range resume.Projects {
		techs := proj.Technologies
		if techs == nil {
			techs = []string{}
		}
		content.Projects = append(content.Projects, ProjectEntry{
			ID:           proj.ID,
			Name:         proj.Name,
			Description:  proj.Description,
			Technologies: techs,
		})
	}

	return ResumeResponse{
		ID:        resume.ID,
		Name:      resume.Name,
		Version:   resume.Version,
		CreatedAt: resume.CreatedAt,
		// Optimization is not implemented; the optimized block mirrors the original.
		OriginalContent:  content,
		OptimizedContent: content,
	}
}
