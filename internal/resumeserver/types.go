package resumeserver

import "github.com/anatolykoptev/go_resume/internal/engine/resume"

// --- Tool inputs ---

type JobMatchInput struct {
	Resume         resume.Record `json:"resume" jsonschema:"Resume record to score"`
	JobDescription string        `json:"job_description" jsonschema:"Job posting text (plain text or pasted HTML)"`
}

type JobKeywordsInput struct {
	Text  string `json:"text" jsonschema:"Job posting text to rank keywords from"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max keywords to return (default: 24)"`
}

type EnhanceInput struct {
	Resume resume.Record `json:"resume" jsonschema:"Resume record to tailor"`
	Role   string        `json:"role" jsonschema:"Target role: Software Engineer or Data Analyst"`
}

type ProfileImportInput struct {
	Resume resume.Record `json:"resume,omitempty" jsonschema:"Existing resume record to merge into (optional)"`
	Text   string        `json:"text" jsonschema:"Pasted profile text (LinkedIn export, bio, etc.)"`
}

type TranslateInput struct {
	Resume   resume.Record `json:"resume" jsonschema:"Resume record to translate"`
	Language string        `json:"language" jsonschema:"Target language (offline dictionaries: spanish, french, german)"`
}

type SaveInput struct {
	Resume resume.Record `json:"resume" jsonschema:"Resume record to snapshot"`
	Label  string        `json:"label,omitempty" jsonschema:"Snapshot label (default: untitled)"`
}

type VersionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max versions to list (default: 50)"`
}

type LoadInput struct {
	ID int64 `json:"id,omitempty" jsonschema:"Version id to load (default: most recent)"`
}

// --- Tool outputs ---

type JobKeywordsOutput struct {
	Keywords []string `json:"keywords"`
}

// RewriteOutput is the shared result shape of the AI-backed rewrite tools.
// Note is empty on the AI path and a fixed informational message when the
// offline fallback was applied.
type RewriteOutput struct {
	Resume resume.Record `json:"resume"`
	Note   string        `json:"note,omitempty"`
}

type SaveOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type VersionsOutput struct {
	Versions []resume.Version `json:"versions"`
}

type LoadOutput struct {
	Resume  resume.Record  `json:"resume"`
	Version resume.Version `json:"version"`
}
