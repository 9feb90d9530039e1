package jobs

import "time"

// Source records which extraction path produced a job description.
type Source string

const (
	// SourceScraped means the posting page was fetched and parsed.
	SourceScraped Source = "scraped"
	// SourceText means the pasted text was parsed, either directly or as a
	// fallback after a failed fetch.
	SourceText Source = "text"
	// SourceDefault means neither URL nor text yielded anything.
	SourceDefault Source = "default"
)

// JobDescription is a stored, classified job posting.
type JobDescription struct {
	ID               string
	URL              string
	Title            string
	Company          string
	Description      string
	Source           Source
	RequiredSkills   []string
	Technologies     []string
	Keywords         []string
	SoftSkills       []string
	Responsibilities []string
	CreatedAt        time.Time
}
