package engine

import (
	"strings"
	"testing"
)

func TestCleanJobText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains []string
		excludes []string
	}{
		{
			name:     "plain text untouched",
			in:       "  Senior Go Engineer. Requirements: Go, SQL, Docker.  ",
			contains: []string{"Senior Go Engineer", "Docker"},
		},
		{
			name:     "html stripped",
			in:       "<div><p>Senior Go Engineer</p><li>Go</li><li>SQL</li></div>",
			contains: []string{"Senior Go Engineer", "SQL"},
			excludes: []string{"<div>", "<li>"},
		},
		{
			name:     "empty",
			in:       "",
			contains: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanJobText(tt.in)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("CleanJobText() = %q, missing %q", got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("CleanJobText() = %q, should not contain %q", got, bad)
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Truncate = %q, want %q", got, "hel")
	}
	if got := Truncate("hi", 10); got != "hi" {
		t.Errorf("Truncate = %q, want %q", got, "hi")
	}
}
