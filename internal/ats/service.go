package ats

import (
	"context"
	"strings"

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

// Service computes compatibility scores between resumes and job descriptions.
type Service struct {
	Resumes ResumeGetter
	Jobs    JobGetter
}

// Score resolves both records and computes the keyword-match score. A posting
// keyword is matched when any resume keyword contains it as a case-insensitive
// substring.
func (s *Service) Score(ctx context.Context, resumeID, jobDescriptionID string) (ScoreResult, error) {
	resume, err := s.Resumes.Get(ctx, resumeID)
	if err != nil {
		return ScoreResult{}, err
	}
	jd, err := s.Jobs.Get(ctx, jobDescriptionID)
	if err != nil {
		return ScoreResult{}, err
	}
	return computeScore(resume, jd), nil
}

// ScoreResult is the outcome of scoring one resume against one posting.
type ScoreResult struct {
	Score   int
	Matched []string
	Missing []string
}

func computeScore(resume resumes.Resume, jd jobs.JobDescription) ScoreResult {
	resumeKeywords := make([]string, 0, len(resume.Skills))
	resumeKeywords = append(resumeKeywords, resume.Skills...)
	for _, exp := range resume.Experiences {
		resumeKeywords = append(resumeKeywords, exp.Bullets...)
	}
	for _, proj := range resume.Projects {
		resumeKeywords = append(resumeKeywords, proj.Technologies...)
	}

	jobKeywords := make([]string, 0, len(jd.RequiredSkills)+len(jd.Keywords)+len(jd.Technologies))
	jobKeywords = append(jobKeywords, jd.RequiredSkills...)
	jobKeywords = append(jobKeywords, jd.Keywords...)
	jobKeywords = append(jobKeywords, jd.Technologies...)

	matched := []string{}
	matchedSet := make(map[string]bool)
	for _, keyword := range jobKeywords {
		if containsAny(resumeKeywords, keyword) {
			matched = append(matched, keyword)
			matchedSet[keyword] = true
		}
	}

	missing := []string{}
	for _, keyword := range jobKeywords {
		if !matchedSet[keyword] {
			missing = append(missing, keyword)
		}
	}

	score := 0
	if len(jobKeywords) > 0 {
		score = len(matched) * 100 / len(jobKeywords)
	}

	return ScoreResult{Score: score, Matched: matched, Missing: missing}
}

func containsAny(haystacks []string, needle string) bool {
	lowerNeedle := strings.ToLower(needle)
	for _, hay := range haystacks {
		if strings.Contains(strings.ToLower(hay), lowerNeedle) {
			return true
		}
	}
	return false
}
