// Package resume implements the resume record model and the deterministic
// text-processing core: tokenization, keyword ranking, job matching, and the
// offline rewrite transforms used when the LLM is unavailable.
package resume

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// Field length caps. Transforms truncate, never reject.
const (
	MaxSummaryLen = 500
	MaxFieldLen   = 300
	MaxSkillLen   = 40
	MaxSkills     = 30
)

// Personal is the contact block of a resume.
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Photo    string `json:"photo"`
	Summary  string `json:"summary"`
}

// Experience is a single work history entry.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project is a single portfolio entry.
type Project struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Tech        string `json:"tech"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Score       string `json:"score"`
}

// Certification is a single certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Record is a complete resume. Value semantics: transforms take a Record and
// return a new one, every field not explicitly altered is carried over as-is.
type Record struct {
	Personal       Personal        `json:"personal"`
	Skills         []string        `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
}

// Clone returns a deep copy of r. Slices are copied so callers can mutate the
// result without aliasing the original.
func (r Record) Clone() Record {
	out := r
	out.Skills = append([]string(nil), r.Skills...)
	out.Experience = append([]Experience(nil), r.Experience...)
	out.Projects = append([]Project(nil), r.Projects...)
	out.Education = append([]Education(nil), r.Education...)
	out.Certifications = append([]Certification(nil), r.Certifications...)
	return out
}

// Corpus flattens the record into one searchable text blob. Section order is
// fixed so the same record always yields the same corpus string.
func (r Record) Corpus() string {
	var sb strings.Builder
	sb.WriteString(r.Personal.Summary)
	sb.WriteByte(' ')
	sb.WriteString(strings.Join(r.Skills, " "))
	for _, e := range r.Experience {
		sb.WriteByte(' ')
		sb.WriteString(e.Role)
		sb.WriteByte(' ')
		sb.WriteString(e.Company)
		sb.WriteByte(' ')
		sb.WriteString(e.Description)
	}
	for _, p := range r.Projects {
		sb.WriteByte(' ')
		sb.WriteString(p.Name)
		sb.WriteByte(' ')
		sb.WriteString(p.Description)
		sb.WriteByte(' ')
		sb.WriteString(p.Tech)
	}
	for _, e := range r.Education {
		sb.WriteByte(' ')
		sb.WriteString(e.Degree)
		sb.WriteByte(' ')
		sb.WriteString(e.Institution)
	}
	for _, c := range r.Certifications {
		sb.WriteByte(' ')
		sb.WriteString(c.Name)
		sb.WriteByte(' ')
		sb.WriteString(c.Issuer)
	}
	return sb.String()
}

// MergeSkills appends extra skills into existing, deduplicating
// case-insensitively and preserving first occurrence. Entries are trimmed and
// capped at MaxSkillLen runes; the merged list is capped at MaxSkills.
func MergeSkills(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing)+len(extra))
	out := make([]string, 0, len(existing)+len(extra))
	add := func(s string) {
		s = strutil.TruncateWith(strings.TrimSpace(s), MaxSkillLen, "")
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if seen[key] || len(out) >= MaxSkills {
			return
		}
		seen[key] = true
		out = append(out, s)
	}
	for _, s := range existing {
		add(s)
	}
	for _, s := range extra {
		add(s)
	}
	return out
}

// clampLen truncates s to limit runes.
func clampLen(s string, limit int) string {
	return strutil.TruncateWith(s, limit, "")
}
