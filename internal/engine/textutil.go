package engine

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/anatolykoptev/go-kit/strutil"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// looksLikeHTML reports whether s is probably pasted HTML rather than plain text.
func looksLikeHTML(s string) bool {
	head := strings.ToLower(s)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<body") ||
		strings.Contains(head, "<div") || strings.Contains(head, "<p>") ||
		strings.Contains(head, "<br") || strings.Contains(head, "<li")
}

// CleanJobText normalizes a pasted job description for tokenization. HTML-ish
// input is converted to markdown text; conversion failures fall back to a
// plain tag strip.
func CleanJobText(s string) string {
	if !looksLikeHTML(s) {
		return strings.TrimSpace(s)
	}
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, " "))
	}
	return strings.TrimSpace(md)
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}
