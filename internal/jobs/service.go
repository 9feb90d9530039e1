package jobs

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"hunterai-backend/internal/shared/telemetry"
)

// Fetcher retrieves and parses a job-posting page.
type Fetcher interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
}

// Service contains business logic for job descriptions.
type Service struct {
	Fetcher Fetcher
	Repo    Repo
}

// Analyze builds a classified job description from a URL or pasted text. A
// failed fetch degrades to text parsing when text is available; it never fails
// the request.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (JobDescription, error) {
	url := strings.TrimSpace(req.URL)
	text := strings.ReplaceAll(strings.TrimSpace(req.Text), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	jd := JobDescription{
		ID:        uuid.NewString(),
		URL:       url,
		CreatedAt: time.Now().UTC(),
	}

	switch {
	case url != "":
		doc, err := s.Fetcher.Document(ctx, url)
		if err != nil {
			telemetry.Warn("job posting fetch failed, falling back to text parsing", map[string]any{
				"url":   url,
				"error": err.Error(),
			})
			s.fillFromText(&jd, text)
			break
		}
		scraped := ScrapeDocument(doc, url)
		jd.Source = SourceScraped
		jd.Title = scraped.Title
		jd.Company = scraped.Company
		jd.Description = scraped.Description
		applyClassification(&jd, Classify(scraped.Description))
	case text != "":
		s.fillFromText(&jd, text)
	default:
		s.fillFromText(&jd, "")
	}

	if err := s.Repo.Create(ctx, jd); err != nil {
		return JobDescription{}, err
	}
	return jd, nil
}

// Get returns a stored job description by id.
func (s *Service) Get(ctx context.Context, id string) (JobDescription, error) {
	if id == "" {
		return JobDescription{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) fillFromText(jd *JobDescription, text string) {
	if text == "" {
		jd.Source = SourceDefault
		jd.Title = DefaultTitle
		jd.Company = DefaultCompany
		applyClassification(jd, Classification{})
		return
	}
	jd.Source = SourceText
	jd.Title = TitleFromText(text)
	jd.Company = CompanyFromText(text)
	jd.Description = text
	applyClassification(jd, Classify(text))
}

func applyClassification(jd *JobDescription, c Classification) {
	jd.RequiredSkills = orEmpty(c.RequiredSkills)
	jd.Technologies = orEmpty(c.Technologies)
	jd.Keywords = orEmpty(c.Keywords)
	jd.SoftSkills = orEmpty(c.SoftSkills)
	jd.Responsibilities = orEmpty(c.Responsibilities)
}
