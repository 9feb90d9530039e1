package jobs

// Fixed vocabularies used to classify a posting's description. Matching is
// case-insensitive substring containment; results keep vocabulary order.
var (
	techSkills = []string{
		"java", "python", "javascript", "typescript", "react", "angular", "vue",
		"node.js", "spring", "django", "flask", "express", "sql", "postgresql",
		"mysql", "mongodb", "redis", "aws", "azure", "docker", "kubernetes",
		"git", "ci/cd", "rest api", "graphql", "microservices", "agile", "scrum",
	}

	techStack = []string{
		"react", "angular", "vue", "next.js", "nuxt", "svelte",
		"node.js", "express", "nest.js", "spring boot", "django", "flask",
		"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
		"jenkins", "github actions", "gitlab ci", "circleci",
	}

	commonKeywords = []string{
		"full-stack", "full stack", "frontend", "front-end", "backend", "back-end",
		"full-time", "remote", "hybrid", "onsite", "on-site",
		"senior", "junior", "mid-level", "entry-level",
		"startup", "enterprise", "saas", "b2b", "b2c",
	}

	softSkillsVocab = []string{
		"communication", "teamwork", "collaboration", "leadership",
		"problem-solving", "problem solving", "analytical", "creative",
		"time management", "organization", "adaptability", "flexibility",
	}
)

// jobBoardSelectors maps a job-board hostname to its selector chain. The first
// entry targets the title, the rest target description content.
var jobBoardSelectors = map[string][]string{
	"linkedin.com":     {"h1.job-title", ".job-details__main-content", ".description__text"},
	"indeed.com":       {"h2.jobTitle", "#jobDescriptionText", ".jobsearch-jobDescriptionText"},
	"glassdoor.com":    {"h2.jobTitle", ".jobDescriptionContent", ".desc"},
	"monster.com":      {"h1.title", "#JobDescription", ".job-details"},
	"ziprecruiter.com": {"h1.job_title", "#job_description", ".job_description"},
}

// companyDomainSelectors is tried for the company field when the hostname is a
// known job board.
var companyDomainSelectors = []string{
	".company-name", ".employer", "[class*='company']",
	"a[href*='company']", ".job-company",
}

var genericTitleSelectors = []string{
	"h1.job-title", "h1.title", "h2.jobTitle",
	"h1[class*='job']", "h1[class*='title']",
	"meta[property='og:title']", "title",
}

var genericCompanySelectors = []string{
	".company", "[class*='company']", "[class*='employer']",
	"meta[property='og:site_name']",
}

var genericDescriptionSelectors = []string{
	"#jobDescriptionText", ".job-description", ".description",
	"[class*='description']", "[id*='description']",
	"main", "article", ".content",
}
