package resume

// Normalize coerces a loosely-typed value (LLM output parsed as JSON, possibly
// wrapped in a {"resume": ...} envelope) into a well-formed Record. Every
// string field falls back to baseline when the input value is missing or not a
// string; list fields fall back to the entire baseline list when missing,
// empty, or not a sequence. Skills is the one asymmetry: it defaults to an
// empty list, never to baseline. Never returns an error, whatever the shape.
func Normalize(raw any, baseline Record) Record {
	obj, _ := raw.(map[string]any)
	if inner, ok := obj["resume"].(map[string]any); ok {
		obj = inner
	}

	out := baseline.Clone()

	if p, ok := obj["personal"].(map[string]any); ok {
		out.Personal.Name = strField(p, "name", baseline.Personal.Name)
		out.Personal.Email = strField(p, "email", baseline.Personal.Email)
		out.Personal.Phone = strField(p, "phone", baseline.Personal.Phone)
		out.Personal.Address = strField(p, "address", baseline.Personal.Address)
		out.Personal.LinkedIn = strField(p, "linkedin", baseline.Personal.LinkedIn)
		out.Personal.GitHub = strField(p, "github", baseline.Personal.GitHub)
		out.Personal.Photo = strField(p, "photo", baseline.Personal.Photo)
		out.Personal.Summary = clampLen(strField(p, "summary", baseline.Personal.Summary), MaxSummaryLen)
	}

	out.Skills = normalizeSkills(obj["skills"])

	out.Experience = normalizeList(obj["experience"], baseline.Experience, func(m map[string]any) Experience {
		return Experience{
			Company:     strField(m, "company", ""),
			Role:        strField(m, "role", ""),
			Duration:    strField(m, "duration", ""),
			Description: clampLen(strField(m, "description", ""), MaxFieldLen),
		}
	})
	out.Projects = normalizeList(obj["projects"], baseline.Projects, func(m map[string]any) Project {
		return Project{
			Name:        strField(m, "name", ""),
			Link:        strField(m, "link", ""),
			Description: clampLen(strField(m, "description", ""), MaxFieldLen),
			Tech:        clampLen(strField(m, "tech", ""), MaxFieldLen),
		}
	})
	out.Education = normalizeList(obj["education"], baseline.Education, func(m map[string]any) Education {
		return Education{
			Degree:      strField(m, "degree", ""),
			Institution: strField(m, "institution", ""),
			Year:        strField(m, "year", ""),
			Score:       strField(m, "score", ""),
		}
	})
	out.Certifications = normalizeList(obj["certifications"], baseline.Certifications, func(m map[string]any) Certification {
		return Certification{
			Name:   strField(m, "name", ""),
			Issuer: strField(m, "issuer", ""),
			Year:   strField(m, "year", ""),
		}
	})

	return out
}

// strField returns m[key] if it is a string, else fallback.
func strField(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return fallback
}

// normalizeSkills coerces a value to a string list capped at MaxSkills.
// Defaults to empty, not to any baseline.
func normalizeSkills(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok || s == "" {
			continue
		}
		out = append(out, clampLen(s, MaxSkillLen))
		if len(out) >= MaxSkills {
			break
		}
	}
	return out
}

// normalizeList coerces a value to a typed entry list via coerce, falling back
// to the entire baseline list when the value is missing, empty, or not a
// sequence of objects.
func normalizeList[T any](v any, baseline []T, coerce func(map[string]any) T) []T {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return baseline
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, coerce(m))
	}
	if len(out) == 0 {
		return baseline
	}
	return out
}
