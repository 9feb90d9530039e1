package jobs

import (
	"regexp"
	"strings"
)

// Classification holds the vocabulary matches and responsibilities pulled out
// of a posting's description.
type Classification struct {
	RequiredSkills   []string
	Technologies     []string
	Keywords         []string
	SoftSkills       []string
	Responsibilities []string
}

const maxResponsibilities = 10

var (
	bulletRespRe   = regexp.MustCompile(`(?:^|\n)[•\-*]\s*([^\n]+)`)
	numberedRespRe = regexp.MustCompile(`(?:^|\n)\d+[.)]\s*([^\n]+)`)
)

// Classify matches the description against the fixed vocabularies and extracts
// bullet-style responsibility lines.
func Classify(description string) Classification {
	return Classification{
		RequiredSkills:   matchVocabulary(description, techSkills, capitalize),
		Technologies:     matchVocabulary(description, techStack, capitalize),
		Keywords:         matchVocabulary(description, commonKeywords, func(s string) string { return s }),
		SoftSkills:       matchVocabulary(description, softSkillsVocab, capitalize),
		Responsibilities: extractResponsibilities(description),
	}
}

// matchVocabulary returns the vocabulary entries contained in text, in
// vocabulary order, transformed by normalize. Case-insensitive.
func matchVocabulary(text string, vocab []string, normalize func(string) string) []string {
	lower := strings.ToLower(text)
	out := []string{}
	for _, entry := range vocab {
		if strings.Contains(lower, entry) {
			out = append(out, normalize(entry))
		}
	}
	return out
}

// extractResponsibilities collects bullet lines from the description. Numbered
// lines are used only when no bullet lines qualified.
func extractResponsibilities(description string) []string {
	out := collectListItems(description, bulletRespRe)
	if len(out) == 0 {
		out = collectListItems(description, numberedRespRe)
	}
	return out
}

func collectListItems(text string, re *regexp.Regexp) []string {
	out := []string{}
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		if len(out) >= maxResponsibilities {
			break
		}
		item := strings.TrimSpace(match[1])
		if len(item) > 10 && len(item) < 200 {
			out = append(out, item)
		}
	}
	return out
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

var titleLabels = []string{"Job Title:", "Position:", "Role:", "Title:"}
var companyLabels = []string{"Company:", "Employer:", "Organization:"}

// TitleFromText scans pasted text for a title label and returns the remainder
// of that line, or the placeholder when nothing qualifies.
func TitleFromText(text string) string {
	if v, ok := labeledValue(text, titleLabels); ok {
		return v
	}
	return DefaultTitle
}

// CompanyFromText scans pasted text for a company label.
func CompanyFromText(text string) string {
	if v, ok := labeledValue(text, companyLabels); ok {
		return v
	}
	return DefaultCompany
}

func labeledValue(text string, labels []string) (string, bool) {
	for _, label := range labels {
		idx := strings.Index(text, label)
		if idx < 0 {
			continue
		}
		rest := text[idx+len(label):]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[:nl]
		}
		rest = strings.TrimSpace(rest)
		if len(rest) < 100 {
			return rest, true
		}
	}
	return "", false
}
