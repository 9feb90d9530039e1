package resumes

import (
	"regexp"
	"strings"
)

// Parsed is the result of running the section heuristics over raw résumé text.
type Parsed struct {
	Summary     string
	Experiences []ParsedExperience
	Skills      []string
	Projects    []ParsedProject
}

// ParsedExperience is one segmented work history entry.
type ParsedExperience struct {
	Role     string
	Company  string
	Duration string
	Bullets  []string
}

// ParsedProject is one segmented project entry.
type ParsedProject struct {
	Name         string
	Description  string
	Technologies []string
}

const (
	// DefaultSummary is used when no qualifying summary lines are found.
	DefaultSummary = "Experienced professional seeking new opportunities."

	maxExperiences = 10
	maxProjects    = 10
)

// commonSkills is the fallback dictionary scanned against the whole document
// when no skills section header exists. Order is preserved in the output.
var commonSkills = []string{
	"Java", "Python", "JavaScript", "TypeScript", "React", "Angular", "Vue",
	"Node.js", "Spring", "Django", "Flask", "Express", "SQL", "PostgreSQL",
	"MongoDB", "MySQL", "Redis", "Docker", "Kubernetes", "AWS", "Azure",
	"Git", "Linux", "HTML", "CSS", "REST", "GraphQL", "Microservices",
}

var (
	summaryHeaderRe    = regexp.MustCompile(`(?i)(summary|objective|profile|about)`)
	experienceHeaderRe = regexp.MustCompile(`(?i)(experience|employment|work history|professional experience)`)
	skillsHeaderRe     = regexp.MustCompile(`(?i)(skills|technical skills|technologies|tools)`)
	projectsHeaderRe   = regexp.MustCompile(`(?i)(projects|project|portfolio)`)

	experienceBreakRe = regexp.MustCompile(`(?i)(education|skills|projects|certifications|awards)`)
	skillsBreakRe     = regexp.MustCompile(`(?i)(experience|education|projects|certifications)`)
	projectsBreakRe   = regexp.MustCompile(`(?i)(education|certifications|awards|references)`)

	allCapsRe  = regexp.MustCompile(`^[A-Z\s]+$`)
	yearRe     = regexp.MustCompile(`\d{4}`)
	presentRe  = regexp.MustCompile(`(Present|Current|Now)`)
	dateHintRe = regexp.MustCompile(`\d{4}|(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}`)
	durationRe = regexp.MustCompile(`(\d{4}|(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4})\s*-\s*(\d{4}|Present|Current|Now)`)

	roleSeparatorRe  = regexp.MustCompile(`\s+\|\s+|\s+-\s+|\s+at\s+`)
	numberedBulletRe = regexp.MustCompile(`^\d+\.\s+`)
	bulletMarkerRe   = regexp.MustCompile(`^[•\-*]\s*|^\d+\.\s*`)
	projectBulletRe  = regexp.MustCompile(`^[•\-*]\s+`)
	projectTechRe    = regexp.MustCompile(`(Java|Python|JavaScript|React|Node|SQL|AWS|Docker)`)
	listSplitRe      = regexp.MustCompile(`[,|•\-]`)
)

// Parse runs the line-scan heuristics over raw document text. It is a total
// function: unmatched sections yield empty values, never an error.
func Parse(text string) Parsed {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(normalized, "\n")

	return Parsed{
		Summary:     extractSummary(lines),
		Experiences: extractExperiences(lines),
		Skills:      extractSkills(normalized, lines),
		Projects:    extractProjects(lines),
	}
}

// sectionIndex returns the first line index matching header, or -1.
// Matching is containment, not exactness, so a bullet mentioning a header
// token qualifies too; that imprecision is part of the heuristic.
func sectionIndex(lines []string, header *regexp.Regexp) int {
	for i, line := range lines {
		if header.MatchString(strings.TrimSpace(line)) {
			return i
		}
	}
	return -1
}

func extractSummary(lines []string) string {
	var summary strings.Builder
	inSummary := false
	summaryLines := 0

	limit := len(lines)
	if limit > 20 {
		limit = 20
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if summaryHeaderRe.MatchString(line) {
			inSummary = true
			continue
		}

		if inSummary || (i < 5 && summaryLines < 3) {
			if len(line) > 10 && !allCapsRe.MatchString(line) {
				summary.WriteString(line)
				summary.WriteString(" ")
				summaryLines++
				if summaryLines >= 3 {
					break
				}
			}
		}
	}

	result := strings.TrimSpace(summary.String())
	if result == "" {
		return DefaultSummary
	}
	return result
}

func extractExperiences(lines []string) []ParsedExperience {
	experiences := []ParsedExperience{}

	start := sectionIndex(lines, experienceHeaderRe)
	if start == -1 {
		// No header; fall back to the first line carrying a date pattern.
		for i := range lines {
			if dateHintRe.MatchString(lines[i]) && i < len(lines)-1 {
				start = i
				break
			}
		}
	}
	if start == -1 {
		return experiences
	}

	var current *ParsedExperience
	var bullets []string

	for i := start + 1; i < len(lines) && len(experiences) < maxExperiences; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if yearRe.MatchString(line) || presentRe.MatchString(line) {
			// New entry: flush the previous one with its bullets.
			if current != nil {
				current.Bullets = append([]string{}, bullets...)
				experiences = append(experiences, *current)
			}
			current = &ParsedExperience{}
			bullets = bullets[:0]

			parts := roleSeparatorRe.Split(line, -1)
			if len(parts) >= 2 {
				current.Role = strings.TrimSpace(parts[0])
				current.Company = strings.TrimSpace(parts[1])
			} else {
				current.Role = line
				if i+1 < len(lines) {
					current.Company = strings.TrimSpace(lines[i+1])
					i++
				}
			}

			if yearRe.MatchString(line) {
				current.Duration = durationRe.FindString(line)
			}
		} else if current != nil {
			switch {
			case strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
				strings.HasPrefix(line, "*") || numberedBulletRe.MatchString(line):
				bullets = append(bullets, bulletMarkerRe.ReplaceAllString(line, ""))
			case len(line) > 20 && !allCapsRe.MatchString(line):
				// A plain descriptive line counts once per entry.
				if len(bullets) == 0 {
					bullets = append(bullets, line)
				}
			}
		}

		if experienceBreakRe.MatchString(line) {
			break
		}
	}

	if current != nil && len(experiences) < maxExperiences {
		current.Bullets = append([]string{}, bullets...)
		experiences = append(experiences, *current)
	}

	return experiences
}

func extractSkills(text string, lines []string) []string {
	skills := []string{}

	start := sectionIndex(lines, skillsHeaderRe)
	if start == -1 {
		// No section; scan the whole document against the dictionary,
		// keeping the dictionary's order and canonical casing.
		lower := strings.ToLower(text)
		for _, skill := range commonSkills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				skills = append(skills, skill)
			}
		}
		return skills
	}

	limit := len(lines)
	if limit > start+20 {
		limit = start + 20
	}
	for i := start + 1; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if skillsBreakRe.MatchString(line) {
			break
		}
		for _, token := range listSplitRe.Split(line, -1) {
			token = strings.TrimSpace(token)
			if len(token) > 2 && len(token) < 50 {
				skills = append(skills, token)
			}
		}
	}

	return skills
}

func extractProjects(lines []string) []ParsedProject {
	projects := []ParsedProject{}

	start := sectionIndex(lines, projectsHeaderRe)
	if start == -1 {
		return projects
	}

	var current *ParsedProject

	for i := start + 1; i < len(lines) && len(projects) < maxProjects; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if len(line) > 5 && len(line) < 100 &&
			!yearRe.MatchString(line) && !projectBulletRe.MatchString(line) {
			if current != nil {
				projects = append(projects, *current)
			}
			current = &ParsedProject{Name: line, Technologies: []string{}}
		} else if current != nil {
			if current.Description == "" && len(line) > 10 {
				current.Description = bulletMarkerRe.ReplaceAllString(line, "")
			} else if projectTechRe.MatchString(line) {
				for _, tech := range listSplitRe.Split(line, -1) {
					tech = strings.TrimSpace(tech)
					if len(tech) > 2 && len(tech) < 30 {
						current.Technologies = append(current.Technologies, tech)
					}
				}
			}
		}

		if projectsBreakRe.MatchString(line) {
			break
		}
	}

	if current != nil && len(projects) < maxProjects {
		projects = append(projects, *current)
	}

	return projects
}
