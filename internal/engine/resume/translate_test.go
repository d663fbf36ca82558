package resume

import (
	"strings"
	"testing"
)

func TestTranslateText(t *testing.T) {
	dict := dictionaries["spanish"]
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "basic substitution",
			in:   "Developed and built a project",
			want: "desarrollado y construido a proyecto",
		},
		{
			name: "case-insensitive lookup",
			in:   "DEVELOPED And Built",
			want: "desarrollado y construido",
		},
		{
			name: "whole words only",
			in:   "android androids",
			want: "android androids",
		},
		{
			name: "unknown words pass through",
			in:   "Kubernetes cluster with Grafana",
			want: "Kubernetes cluster con Grafana",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateText(tt.in, dict); got != tt.want {
				t.Errorf("translateText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslateKnownLanguage(t *testing.T) {
	rec := Record{
		Personal: Personal{Name: "Jane Smith", Summary: "Experienced software engineer"},
		Skills:   []string{"data analysis"},
		Experience: []Experience{
			{Company: "Acme", Role: "Software Engineer", Description: "Led the team and improved the project"},
		},
		Projects: []Project{{Name: "gr", Description: "Built with the team", Tech: "software"}},
	}

	out := Translate(rec, "French")

	if out.Personal.Name != "Jane Smith" {
		t.Errorf("Name = %q, want pass-through", out.Personal.Name)
	}
	if out.Personal.Summary != "Experienced logiciel ingénieur" {
		t.Errorf("Summary = %q", out.Personal.Summary)
	}
	if out.Experience[0].Role != "logiciel ingénieur" {
		t.Errorf("Role = %q", out.Experience[0].Role)
	}
	if out.Experience[0].Description != "dirigé the équipe et amélioré the projet" {
		t.Errorf("Description = %q", out.Experience[0].Description)
	}
	if out.Experience[0].Company != "Acme" {
		t.Errorf("Company = %q, want pass-through", out.Experience[0].Company)
	}
	if out.Projects[0].Description != "construit avec the équipe" {
		t.Errorf("Project description = %q", out.Projects[0].Description)
	}
	if out.Projects[0].Name != "gr" {
		t.Errorf("Project name = %q, want pass-through", out.Projects[0].Name)
	}
	if out.Skills[0] != "données analyse" {
		t.Errorf("Skill = %q", out.Skills[0])
	}

	// Input untouched.
	if rec.Skills[0] != "data analysis" {
		t.Error("Translate mutated its input")
	}
}

func TestTranslateUnknownLanguage(t *testing.T) {
	rec := Record{
		Personal:   Personal{Summary: "Developed things"},
		Skills:     []string{"developed"},
		Experience: []Experience{{Description: "built stuff"}},
	}
	out := Translate(rec, "Klingon")

	if out.Personal.Summary != "[Klingon] Developed things" {
		t.Errorf("Summary = %q", out.Personal.Summary)
	}
	// Only the summary is tagged; everything else passes through unchanged.
	if out.Skills[0] != "developed" || out.Experience[0].Description != "built stuff" {
		t.Errorf("unknown language altered fields: %v / %q", out.Skills, out.Experience[0].Description)
	}
}

func TestTranslateClampsSummary(t *testing.T) {
	rec := Record{Personal: Personal{Summary: strings.Repeat("developed ", 80)}}
	out := Translate(rec, "german")
	if n := len([]rune(out.Personal.Summary)); n > MaxSummaryLen {
		t.Errorf("summary is %d runes, want <= %d", n, MaxSummaryLen)
	}
	if !strings.HasPrefix(out.Personal.Summary, "entwickelt") {
		t.Errorf("summary = %q", out.Personal.Summary[:20])
	}
}

func TestSupportedLanguages(t *testing.T) {
	for _, lang := range SupportedLanguages() {
		if _, ok := dictionaries[lang]; !ok {
			t.Errorf("language %q has no dictionary", lang)
		}
	}
}
