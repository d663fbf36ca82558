package resume

import (
	"regexp"
	"strings"
)

// Extraction patterns for pasted profile text (LinkedIn export, bio, etc.).
var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?\d[\d\s().-]{8,}\d`)
	linkedinRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+`)
	nameRe     = regexp.MustCompile(`^[A-Z][A-Za-z.'-]*(?:\s+[A-Z][A-Za-z.'-]*){1,4}$`)
	summaryRe  = regexp.MustCompile(`(?is)\b(?:about|summary)\b[:\s]+(\S[\s\S]{18,598}\S)`)
)

// techKeywords is the fixed vocabulary recognized by the skill scanner.
// Keys are lowercase; values carry canonical casing for output.
var techKeywords = map[string]string{
	"go": "Go", "golang": "Go", "python": "Python", "java": "Java",
	"javascript": "JavaScript", "typescript": "TypeScript", "c++": "C++",
	"c#": "C#", "rust": "Rust", "ruby": "Ruby", "php": "PHP", "kotlin": "Kotlin",
	"swift": "Swift", "sql": "SQL", "mysql": "MySQL", "postgresql": "PostgreSQL",
	"mongodb": "MongoDB", "redis": "Redis", "sqlite": "SQLite",
	"react": "React", "vue": "Vue", "angular": "Angular", "node.js": "Node.js",
	"nodejs": "Node.js", "django": "Django", "flask": "Flask", "spring": "Spring",
	"docker": "Docker", "kubernetes": "Kubernetes", "terraform": "Terraform",
	"aws": "AWS", "azure": "Azure", "gcp": "GCP", "linux": "Linux", "git": "Git",
	"graphql": "GraphQL", "grpc": "gRPC", "kafka": "Kafka", "spark": "Spark",
	"pandas": "Pandas", "numpy": "NumPy", "tableau": "Tableau", "excel": "Excel",
	"html": "HTML", "css": "CSS", "ci/cd": "CI/CD", "jenkins": "Jenkins",
	"machine learning": "Machine Learning", "etl": "ETL",
}

// ProfileFields holds what could be extracted from free profile text. Empty
// fields mean "nothing found, keep the prior value".
type ProfileFields struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	Summary  string
	Skills   []string
}

// ExtractProfileFields pulls contact data, a summary, and known skills out of
// pasted free text. It never fails: anything it cannot find is left empty.
func ExtractProfileFields(text string) ProfileFields {
	var f ProfileFields

	f.Email = emailRe.FindString(text)
	f.LinkedIn = normalizeLinkedIn(linkedinRe.FindString(text))
	f.Phone = findPhone(text)
	f.Name = findName(text)

	if m := summaryRe.FindStringSubmatch(text); m != nil {
		f.Summary = clampLen(strings.TrimSpace(m[1]), MaxSummaryLen)
	}

	f.Skills = scanSkills(text)
	return f
}

// ApplyProfileText merges extracted fields into rec. Extracted values only
// overwrite when non-empty; skills merge with the usual dedup rule.
func ApplyProfileText(rec Record, text string) Record {
	f := ExtractProfileFields(text)
	out := rec.Clone()

	if f.Name != "" {
		out.Personal.Name = f.Name
	}
	if f.Email != "" {
		out.Personal.Email = f.Email
	}
	if f.Phone != "" {
		out.Personal.Phone = f.Phone
	}
	if f.LinkedIn != "" {
		out.Personal.LinkedIn = f.LinkedIn
	}
	if f.Summary != "" {
		out.Personal.Summary = f.Summary
	}
	if len(f.Skills) > 0 {
		out.Skills = MergeSkills(out.Skills, f.Skills)
	}
	return out
}

// normalizeLinkedIn forces an https scheme onto a bare linkedin.com match.
func normalizeLinkedIn(u string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}

// findPhone returns the first digit-heavy token with at least 10 digits.
func findPhone(text string) string {
	for _, cand := range phoneRe.FindAllString(text, -1) {
		digits := 0
		for _, r := range cand {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 10 {
			return strings.TrimSpace(cand)
		}
	}
	return ""
}

// findName scans the first 8 non-empty lines for a capitalized 2-5 word line,
// skipping lines that look like contact data. First qualifying line wins.
func findName(text string) string {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > 8 {
			break
		}
		if emailRe.MatchString(line) || linkedinRe.MatchString(line) || findPhone(line) != "" {
			continue
		}
		n := len([]rune(line))
		if n < 2 || n > 60 || !nameRe.MatchString(line) {
			continue
		}
		if words := len(strings.Fields(line)); words < 2 || words > 5 {
			continue
		}
		return line
	}
	return ""
}

// scanSkills walks comma/newline/pipe-delimited fragments and collects known
// tech keywords in canonical casing, deduplicated in scan order.
func scanSkills(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for _, frag := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '|'
		}) {
			frag = strings.TrimSpace(frag)
			lower := strings.ToLower(frag)
			lower = strings.TrimSpace(strings.TrimPrefix(lower, "skills:"))
			canon, ok := techKeywords[lower]
			if !ok {
				continue
			}
			if !seen[canon] {
				seen[canon] = true
				out = append(out, canon)
			}
		}
	}
	return out
}
