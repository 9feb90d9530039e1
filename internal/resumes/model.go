package resumes

import "time"

// Resume is a parsed résumé with its extracted sections.
type Resume struct {
	ID          string
	Name        string
	Version     string
	Summary     string
	Skills      []string
	Experiences []Experience
	Projects    []Project
	CreatedAt   time.Time
}

// Experience is a single work history entry.
type Experience struct {
	ID       string
	ResumeID string
	Role     string
	Company  string
	Duration string
	Bullets  []string
}

// Project is a single portfolio entry.
type Project struct {
	ID           string
	ResumeID     string
	Name         string
	Description  string
	Technologies []string
}
