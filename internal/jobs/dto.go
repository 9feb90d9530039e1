package jobs

import "time"

// AnalyzeRequest is the inbound payload for job-description analysis. At least
// one of URL or Text must be set.
type AnalyzeRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// JobDescriptionResponse is the outward-facing representation of a posting.
type JobDescriptionResponse struct {
	ID            string        `json:"id"`
	URL           string        `json:"url"`
	Title         string        `json:"title"`
	Company       string        `json:"company"`
	Description   string        `json:"description"`
	Source        Source        `json:"source"`
	CreatedAt     time.Time     `json:"createdAt"`
	ExtractedData ExtractedData `json:"extractedData"`
}

// ExtractedData groups the classification output.
type ExtractedData struct {
	RequiredSkills   []string `json:"requiredSkills"`
	Technologies     []string `json:"technologies"`
	Keywords         []string `json:"keywords"`
	SoftSkills       []string `json:"softSkills"`
	Responsibilities []string `json:"responsibilities"`
}

func toResponse(jd JobDescription) JobDescriptionResponse {
	return JobDescriptionResponse{
		ID:          jd.ID,
		URL:         jd.URL,
		Title:       jd.Title,
		Company:     jd.Company,
		Description: jd.Description,
		Source:      jd.Source,
		CreatedAt:   jd.CreatedAt,
		ExtractedData: ExtractedData{
			RequiredSkills:   orEmpty(jd.RequiredSkills),
			Technologies:     orEmpty(jd.Technologies),
			Keywords:         orEmpty(jd.Keywords),
			SoftSkills:       orEmpty(jd.SoftSkills),
			Responsibilities: orEmpty(jd.Responsibilities),
		},
	}
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
