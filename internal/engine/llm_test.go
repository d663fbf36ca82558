package engine

import (
	"context"
	"errors"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "labeled fence",
			raw:  "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "unlabeled fence",
			raw:  "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "no fence",
			raw:  `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n```json\n{}\n```  \n",
			want: "{}",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripFences(tt.raw)
			if got != tt.want {
				t.Errorf("stripFences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"score": 75}`,
			want: `{"score": 75}`,
		},
		{
			name: "labeled fence",
			raw:  "Here you go:\n```json\n{\"score\": 75}\n```\nDone.",
			want: `{"score": 75}`,
		},
		{
			name: "unlabeled fence",
			raw:  "```\n{\"score\": 75}\n```",
			want: `{"score": 75}`,
		},
		{
			name: "prose around object",
			raw:  `Sure! The result is {"score": 75} as requested.`,
			want: `{"score": 75}`,
		},
		{
			name: "nested braces",
			raw:  `prefix {"a": {"b": 2}} suffix`,
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "no json at all",
			raw:  "I could not produce a result.",
			want: "",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "closing brace before opening",
			raw:  "} nothing here {",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSONBlock(tt.raw)
			if got != tt.want {
				t.Errorf("ExtractJSONBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallLLMWithoutClient(t *testing.T) {
	Init(Config{}) // no LLM client configured

	_, err := CallLLM(context.Background(), "hello")
	if !errors.Is(err, ErrLLMUnavailable) {
		t.Errorf("CallLLM without client = %v, want ErrLLMUnavailable", err)
	}
}
