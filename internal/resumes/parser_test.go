package resumes

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestExtractSummaryAfterHeader(t *testing.T) {
	text := strings.Join([]string{
		"JOHN DOE",
		"Professional Summary",
		"Seasoned backend engineer with ten years of experience.",
		"Focused on distributed systems and developer tooling.",
	}, "\n")

	parsed := Parse(text)
	if !strings.Contains(parsed.Summary, "Seasoned backend engineer") {
		t.Fatalf("expected summary from lines after header, got %q", parsed.Summary)
	}
	if !strings.Contains(parsed.Summary, "distributed systems") {
		t.Fatalf("expected second summary line accumulated, got %q", parsed.Summary)
	}
}

func TestExtractSummaryCapsAtThreeLines(t *testing.T) {
	text := strings.Join([]string{
		"Summary",
		"First qualifying sentence with enough length.",
		"Second qualifying sentence with enough length.",
		"Third qualifying sentence with enough length.",
		"Fourth line that must not appear.",
	}, "\n")

	parsed := Parse(text)
	if strings.Contains(parsed.Summary, "Fourth line") {
		t.Fatalf("summary should stop after three lines, got %q", parsed.Summary)
	}
}

func TestExtractSummaryLeadingLinesWithoutHeader(t *testing.T) {
	text := strings.Join([]string{
		"Jane Smith, full stack developer in Berlin.",
		"Builds web applications end to end.",
	}, "\n")

	parsed := Parse(text)
	if !strings.Contains(parsed.Summary, "Jane Smith") {
		t.Fatalf("expected leading lines as summary, got %q", parsed.Summary)
	}
}

func TestExtractSummaryDefault(t *testing.T) {
	// Short and all-caps lines never qualify.
	parsed := Parse("JD\nCV\nNAME")
	if parsed.Summary != DefaultSummary {
		t.Fatalf("expected default summary, got %q", parsed.Summary)
	}
}

func TestExtractExperiencesSeparators(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		role    string
		company string
	}{
		{"pipe", "Senior Engineer | Initech | 2019 - 2022", "Senior Engineer", "Initech"},
		{"dash", "Senior Engineer - Initech 2019 - Present", "Senior Engineer", "Initech 2019"},
		{"at", "Senior Engineer at Initech 2019 - 2022", "Senior Engineer", "Initech 2019"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := "Experience\n" + tc.line + "\n• Shipped things\n"
			parsed := Parse(text)
			if len(parsed.Experiences) != 1 {
				t.Fatalf("expected 1 experience, got %d", len(parsed.Experiences))
			}
			exp := parsed.Experiences[0]
			if exp.Role != tc.role {
				t.Errorf("role: expected %q, got %q", tc.role, exp.Role)
			}
			if exp.Company != tc.company {
				t.Errorf("company: expected %q, got %q", tc.company, exp.Company)
			}
		})
	}
}

func TestExtractExperiencesCompanyOnNextLine(t *testing.T) {
	text := strings.Join([]string{
		"Work History",
		"Principal Engineer 2018-2021",
		"Globex Corporation",
		"• Led the data platform team",
	}, "\n")

	parsed := Parse(text)
	if len(parsed.Experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(parsed.Experiences))
	}
	exp := parsed.Experiences[0]
	if exp.Company != "Globex Corporation" {
		t.Errorf("expected company consumed from next line, got %q", exp.Company)
	}
	if len(exp.Bullets) != 1 || exp.Bullets[0] != "Led the data platform team" {
		t.Errorf("expected stripped bullet, got %v", exp.Bullets)
	}
}

func TestExtractExperiencesDuration(t *testing.T) {
	text := "Experience\nEngineer | Acme | Jan 2020 - Present\n• Built APIs\n"
	parsed := Parse(text)
	if len(parsed.Experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(parsed.Experiences))
	}
	if got := parsed.Experiences[0].Duration; got != "Jan 2020 - Present" {
		t.Errorf("expected duration range, got %q", got)
	}
}

func TestExtractExperiencesBulletMarkers(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"Engineer | Acme | 2020 - 2021",
		"• Glyph bullet",
		"- Dash bullet",
		"* Star bullet",
		"1. Numbered bullet",
	}, "\n")

	parsed := Parse(text)
	if len(parsed.Experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(parsed.Experiences))
	}
	want := []string{"Glyph bullet", "Dash bullet", "Star bullet", "Numbered bullet"}
	if !reflect.DeepEqual(parsed.Experiences[0].Bullets, want) {
		t.Errorf("expected %v, got %v", want, parsed.Experiences[0].Bullets)
	}
}

func TestExtractExperiencesDescriptiveLineOnlyOnce(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"Engineer | Acme | 2020 - 2021",
		"Responsible for the ingestion pipeline end to end.",
		"Another descriptive line that should be ignored entirely.",
	}, "\n")

	parsed := Parse(text)
	if len(parsed.Experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(parsed.Experiences))
	}
	bullets := parsed.Experiences[0].Bullets
	if len(bullets) != 1 {
		t.Fatalf("expected a single descriptive bullet, got %v", bullets)
	}
}

func TestExtractExperiencesStopsAtNextSection(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"Engineer | Acme | 2020 - 2021",
		"• Built APIs",
		"Education",
		"Engineer | Othercorp | 2015 - 2019",
	}, "\n")

	parsed := Parse(text)
	if len(parsed.Experiences) != 1 {
		t.Fatalf("expected extraction to stop at education header, got %d entries", len(parsed.Experiences))
	}
}

func TestExtractExperiencesCappedAtTen(t *testing.T) {
	var b strings.Builder
	b.WriteString("Experience\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "Engineer %d | Company %d | 2020 - 2021\n", i, i)
	}

	parsed := Parse(b.String())
	if len(parsed.Experiences) > 10 {
		t.Fatalf("expected at most 10 experiences, got %d", len(parsed.Experiences))
	}
}

func TestExtractExperiencesDateFallbackWithoutHeader(t *testing.T) {
	text := strings.Join([]string{
		"Jane Smith",
		"Jan 2019 timeline begins here",
		"Engineer | Acme | 2020 - 2021",
		"• Did the work",
	}, "\n")

	parsed := Parse(text)
	if len(parsed.Experiences) == 0 {
		t.Fatal("expected date-pattern fallback to locate experience region")
	}
}

func TestExtractSkillsFromSection(t *testing.T) {
	text := strings.Join([]string{
		"Skills",
		"Go, Python, PostgreSQL",
		"Docker • Kubernetes",
		"Education",
		"BSc Computer Science",
	}, "\n")

	parsed := Parse(text)
	want := []string{"Python", "PostgreSQL", "Docker", "Kubernetes"}
	// "Go" is dropped by the 2-char minimum.
	if !reflect.DeepEqual(parsed.Skills, want) {
		t.Errorf("expected %v, got %v", want, parsed.Skills)
	}
}

func TestExtractSkillsDictionaryFallback(t *testing.T) {
	text := "Built services in python with postgresql and deployed on aws using docker."
	parsed := Parse(text)
	// "sql" matches inside "postgresql" by substring containment.
	want := []string{"Python", "SQL", "PostgreSQL", "Docker", "AWS"}
	if !reflect.DeepEqual(parsed.Skills, want) {
		t.Errorf("expected dictionary order and casing %v, got %v", want, parsed.Skills)
	}
}

func TestExtractProjects(t *testing.T) {
	text := strings.Join([]string{
		"Projects",
		"Inventory Tracker",
		"• A warehouse inventory system used by three teams.",
		"• Python, PostgreSQL, Docker",
	}, "\n")

	parsed := Parse(text)
	if len(parsed.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d: %+v", len(parsed.Projects), parsed.Projects)
	}
	proj := parsed.Projects[0]
	if proj.Name != "Inventory Tracker" {
		t.Errorf("expected project name, got %q", proj.Name)
	}
	if proj.Description != "A warehouse inventory system used by three teams." {
		t.Errorf("expected stripped description, got %q", proj.Description)
	}
	want := []string{"Python", "PostgreSQL", "Docker"}
	if !reflect.DeepEqual(proj.Technologies, want) {
		t.Errorf("expected technologies %v, got %v", want, proj.Technologies)
	}
}

func TestExtractProjectsStopsAtEducation(t *testing.T) {
	text := strings.Join([]string{
		"Projects",
		"Inventory Tracker",
		"• A warehouse inventory system used by three teams.",
		"Education",
		"Some Degree Name Here",
	}, "\n")

	parsed := Parse(text)
	for _, proj := range parsed.Projects {
		if proj.Name == "Some Degree Name Here" {
			t.Fatalf("lines after the education header must not become projects: %+v", parsed.Projects)
		}
	}
	if len(parsed.Projects) == 0 || parsed.Projects[0].Name != "Inventory Tracker" {
		t.Fatalf("expected first project preserved, got %+v", parsed.Projects)
	}
}

func TestExtractProjectsEmptyWithoutHeader(t *testing.T) {
	parsed := Parse("Just a resume without any side work section at all.")
	if len(parsed.Projects) != 0 {
		t.Fatalf("expected no projects, got %d", len(parsed.Projects))
	}
}

func TestExtractProjectsCappedAtTen(t *testing.T) {
	var b strings.Builder
	b.WriteString("Projects\n")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "Project Number %c\n", 'A'+i%26)
	}

	parsed := Parse(b.String())
	if len(parsed.Projects) > 10 {
		t.Fatalf("expected at most 10 projects, got %d", len(parsed.Projects))
	}
}

func TestParseNormalizesLineEndings(t *testing.T) {
	text := "Summary\r\nBackend engineer with a focus on reliability.\r\n"
	parsed := Parse(text)
	if !strings.Contains(parsed.Summary, "Backend engineer") {
		t.Fatalf("expected CRLF input to parse, got %q", parsed.Summary)
	}
}

func TestParseNeverReturnsEmptySummary(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "A\nB\nC"} {
		if got := Parse(text).Summary; got == "" {
			t.Fatalf("summary must never be empty for input %q", text)
		}
	}
}
