package resume

import (
	"fmt"
	"regexp"
	"strings"
)

// Static word dictionaries for the offline translate fallback. Keys and values
// are lowercase; substitution is whole-word and case-insensitive. Anything not
// in the dictionary passes through unchanged.
var dictionaries = map[string]map[string]string{
	"spanish": {
		"developed": "desarrollado", "built": "construido", "created": "creado",
		"designed": "diseñado", "managed": "gestionado", "led": "lideró",
		"improved": "mejorado", "implemented": "implementado", "and": "y",
		"with": "con", "project": "proyecto", "projects": "proyectos",
		"team": "equipo", "software": "software", "engineer": "ingeniero",
		"developer": "desarrollador", "data": "datos", "analysis": "análisis",
		"experience": "experiencia", "skills": "habilidades", "summary": "resumen",
	},
	"french": {
		"developed": "développé", "built": "construit", "created": "créé",
		"designed": "conçu", "managed": "géré", "led": "dirigé",
		"improved": "amélioré", "implemented": "implémenté", "and": "et",
		"with": "avec", "project": "projet", "projects": "projets",
		"team": "équipe", "software": "logiciel", "engineer": "ingénieur",
		"developer": "développeur", "data": "données", "analysis": "analyse",
		"experience": "expérience", "skills": "compétences", "summary": "résumé",
	},
	"german": {
		"developed": "entwickelt", "built": "gebaut", "created": "erstellt",
		"designed": "entworfen", "managed": "verwaltet", "led": "geleitet",
		"improved": "verbessert", "implemented": "implementiert", "and": "und",
		"with": "mit", "project": "projekt", "projects": "projekte",
		"team": "team", "software": "software", "engineer": "ingenieur",
		"developer": "entwickler", "data": "daten", "analysis": "analyse",
		"experience": "erfahrung", "skills": "kenntnisse", "summary": "zusammenfassung",
	},
}

var wordRe = regexp.MustCompile(`[A-Za-z]+`)

// SupportedLanguages returns the languages with an offline dictionary.
func SupportedLanguages() []string {
	return []string{"spanish", "french", "german"}
}

// translateText substitutes dictionary words in s, preserving word boundaries.
// Matching is case-insensitive; replacements use the dictionary's casing.
func translateText(s string, dict map[string]string) string {
	return wordRe.ReplaceAllStringFunc(s, func(w string) string {
		if t, ok := dict[strings.ToLower(w)]; ok {
			return t
		}
		return w
	})
}

// Translate renders rec into the target language using the static dictionary:
// summary, experience roles and descriptions, project descriptions and tech,
// and every skill are substituted word by word; all other fields pass through.
// An unknown language degrades to a bracketed tag prefixed to the summary.
func Translate(rec Record, language string) Record {
	lang := strings.ToLower(strings.TrimSpace(language))
	out := rec.Clone()

	dict, ok := dictionaries[lang]
	if !ok {
		out.Personal.Summary = clampLen(fmt.Sprintf("[%s] %s", language, rec.Personal.Summary), MaxSummaryLen)
		return out
	}

	out.Personal.Summary = clampLen(translateText(out.Personal.Summary, dict), MaxSummaryLen)
	for i := range out.Experience {
		out.Experience[i].Role = clampLen(translateText(out.Experience[i].Role, dict), MaxFieldLen)
		out.Experience[i].Description = clampLen(translateText(out.Experience[i].Description, dict), MaxFieldLen)
	}
	for i := range out.Projects {
		out.Projects[i].Description = clampLen(translateText(out.Projects[i].Description, dict), MaxFieldLen)
		out.Projects[i].Tech = clampLen(translateText(out.Projects[i].Tech, dict), MaxFieldLen)
	}
	for i := range out.Skills {
		out.Skills[i] = clampLen(translateText(out.Skills[i], dict), MaxSkillLen)
	}
	return out
}
