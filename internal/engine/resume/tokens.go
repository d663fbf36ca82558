package resume

import "strings"

// DefaultKeywordLimit caps TopKeywords output when the caller passes no limit.
const DefaultKeywordLimit = 24

// stopWords filters conjunctions and resume filler that add noise to keyword
// matching. Read-only after init.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "such": true,
	"experience": true, "experienced": true, "skills": true, "skill": true,
	"years": true, "strong": true, "ability": true, "knowledge": true,
	"responsible": true, "working": true, "looking": true, "candidate": true,
	"required": true, "requirements": true, "including": true, "must": true,
	"plus": true, "etc": true,
}

// isTokenRune reports whether r survives token cleaning. The alphabet keeps
// tech spellings like "c++", "c#", "node.js" and "ci/cd" intact.
func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '#' || r == '.' || r == '/' || r == '-':
		return true
	}
	return false
}

// Tokenize splits text into cleaned lowercase tokens: whitespace-run split,
// lowercase, strip characters outside [a-z0-9+#./-], drop fragments shorter
// than 3 runes or in the stop-word set. Duplicates are preserved in original
// order so callers can count frequencies.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	var b strings.Builder
	for _, f := range fields {
		b.Reset()
		for _, r := range f {
			if isTokenRune(r) {
				b.WriteRune(r)
			}
		}
		tok := strings.Trim(b.String(), "./-")
		if len([]rune(tok)) < 3 || stopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// TokenSet tokenizes text into a unique keyword set.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		set[tok] = true
	}
	return set
}

// TopKeywords returns the limit most frequent tokens of text, descending by
// count with ties broken by first appearance. limit <= 0 means
// DefaultKeywordLimit. Empty or all-stop-word text yields an empty slice.
func TopKeywords(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultKeywordLimit
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range Tokenize(text) {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	if len(order) == 0 {
		return nil
	}

	// Insertion-sort style stable ranking: order already holds first-seen
	// order, so a stable sort by count keeps ties deterministic.
	ranked := append([]string(nil), order...)
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && counts[ranked[j]] > counts[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
