package resume

import "strings"

// RoleProfile is a static tailoring target: a focus skill set plus the
// sentence prepended to the summary.
type RoleProfile struct {
	FocusSkills   []string
	SummaryPrefix string
}

// roleProfiles maps canonical role names to their profiles. Lookup is
// case-insensitive via normalizeRole. Read-only after init.
var roleProfiles = map[string]RoleProfile{
	"Software Engineer": {
		FocusSkills: []string{
			"Go", "Python", "JavaScript", "SQL", "Git",
			"REST APIs", "Docker", "Testing", "CI/CD", "Linux",
		},
		SummaryPrefix: "Software engineer focused on building reliable, well-tested systems and shipping maintainable code.",
	},
	"Data Analyst": {
		FocusSkills: []string{
			"SQL", "Python", "Excel", "Tableau", "Pandas",
			"Statistics", "Data Visualization", "ETL", "Reporting",
		},
		SummaryPrefix: "Data analyst who turns raw data into clear, decision-ready insight through rigorous analysis and visualization.",
	},
}

// Roles returns the supported tailoring role names.
func Roles() []string {
	return []string{"Software Engineer", "Data Analyst"}
}

// normalizeRole resolves a user-supplied role string to a canonical profile key.
func normalizeRole(role string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(role))
	for name := range roleProfiles {
		if strings.ToLower(name) == want {
			return name, true
		}
	}
	return "", false
}

// TailorForRole rewrites rec toward the given target role: the role's focus
// skills are merged into the skill list, the role sentence is prepended to the
// summary (capped at MaxSummaryLen), and experience entries with an empty role
// are filled with the target role name. An unknown role returns rec unchanged.
func TailorForRole(rec Record, role string) Record {
	name, ok := normalizeRole(role)
	if !ok {
		return rec
	}
	profile := roleProfiles[name]

	out := rec.Clone()
	out.Skills = MergeSkills(out.Skills, profile.FocusSkills)

	if strings.TrimSpace(out.Personal.Summary) == "" {
		out.Personal.Summary = profile.SummaryPrefix
	} else {
		out.Personal.Summary = clampLen(profile.SummaryPrefix+" "+out.Personal.Summary, MaxSummaryLen)
	}

	for i := range out.Experience {
		if strings.TrimSpace(out.Experience[i].Role) == "" {
			out.Experience[i].Role = name
		}
	}
	return out
}
