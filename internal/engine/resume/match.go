package resume

import (
	"fmt"
	"math"
	"strings"
)

// Independent display caps. The missing list and the suggestion phrase are
// bounded separately; do not unify them.
const (
	maxMissingSkills    = 10
	maxSuggestedMissing = 5
)

// Fixed suggestion texts. Never parameterized.
const (
	tipQuantify    = "Quantify your bullet points: add numbers, percentages, or outcomes to each experience entry."
	tipMirrorTitle = "Mirror the job title and tool names from the posting in your summary and most recent role."
	msgStrong      = "Keyword coverage looks strong. Review phrasing so it mirrors the posting."
	msgEmptyJD     = "Paste a fuller job description to compute keyword coverage."
)

// MatchResult is the outcome of scoring a resume against a job description.
// Derived, not persisted; recompute on every description change.
type MatchResult struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingSkills   []string `json:"missing_skills"`
	SuggestedEdits  []string `json:"suggested_edits"`
}

// ComputeJobMatch scores how many of the job description's top keywords appear
// in the resume corpus. Score is round(matched/total*100) in [0,100]. Matched
// and missing keywords keep job-description ranking order; missing is capped
// at maxMissingSkills. SuggestedEdits always has exactly three entries, except
// for an empty description which yields the single guidance message.
func ComputeJobMatch(rec Record, jobDescription string) MatchResult {
	keywords := TopKeywords(jobDescription, 0)
	if len(keywords) == 0 {
		return MatchResult{
			Score:           0,
			MatchedKeywords: []string{},
			MissingSkills:   []string{},
			SuggestedEdits:  []string{msgEmptyJD},
		}
	}

	resumeTokens := TokenSet(rec.Corpus())

	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if resumeTokens[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := int(math.Round(float64(len(matched)) / float64(len(keywords)) * 100))

	var missingTip string
	if len(missing) == 0 {
		missingTip = msgStrong
	} else {
		shown := missing
		if len(shown) > maxSuggestedMissing {
			shown = shown[:maxSuggestedMissing]
		}
		missingTip = fmt.Sprintf("Add the missing keywords where truthful: %s.", strings.Join(shown, ", "))
	}

	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}

	return MatchResult{
		Score:           score,
		MatchedKeywords: matched,
		MissingSkills:   missing,
		SuggestedEdits:  []string{missingTip, tipQuantify, tipMirrorTitle},
	}
}
