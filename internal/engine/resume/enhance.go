package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Informational notes surfaced to the caller when the LLM path degrades to the
// offline transforms. Fixed strings, never errors.
const (
	NoteOffline   = "AI service unavailable — applied the offline rewrite rules instead."
	NoteBadFormat = "AI response format was invalid — applied the offline rewrite rules instead."
)

const enhancePrompt = `You are an expert resume writer tailoring a resume toward a target role.

TARGET ROLE: %s

CURRENT RESUME (JSON):
%s

Rewrite the resume for the target role: sharpen the summary, surface the most
relevant skills first, and fill empty experience roles with the target role
name. Do not invent employers, dates, or credentials.

Return a JSON object with exactly this structure (all values are strings,
skills is an array of strings):
{
  "personal": {"name", "email", "phone", "address", "linkedin", "github", "photo", "summary"},
  "skills": [],
  "experience": [{"company", "role", "duration", "description"}],
  "projects": [{"name", "link", "description", "tech"}],
  "education": [{"degree", "institution", "year", "score"}],
  "certifications": [{"name", "issuer", "year"}]
}

Return ONLY the JSON object, no markdown, no explanation.`

const translatePrompt = `You are a professional translator localizing a resume.

TARGET LANGUAGE: %s

CURRENT RESUME (JSON):
%s

Translate the summary, experience roles and descriptions, project descriptions
and tech lists, and skills into the target language. Keep names, emails, URLs,
companies, and dates unchanged.

Return ONLY the translated resume as a JSON object with the same structure and
keys as the input, no markdown, no explanation.`

const importPrompt = `You are a resume parser. Extract structured resume data from the pasted
profile text below (a LinkedIn export, bio, or similar free text).

PROFILE TEXT:
%s

CURRENT RESUME (JSON) — keep any field the text does not cover:
%s

Return ONLY the updated resume as a JSON object with the same structure and
keys as the current resume, no markdown, no explanation.`

// EnhanceForRole tailors rec toward role via the LLM, degrading to the
// deterministic TailorForRole transform when the call fails or returns
// unparseable output. The returned note is "" on the AI path and one of the
// fixed Note* strings on a fallback.
func EnhanceForRole(ctx context.Context, rec Record, role string) (Record, string) {
	recJSON, _ := json.Marshal(rec)
	prompt := fmt.Sprintf(enhancePrompt, role, recJSON)

	out, note := completeRecord(ctx, "resume_enhance", prompt, rec)
	if note != "" {
		return TailorForRole(rec, role), note
	}
	return out, ""
}

// TranslateRecord translates rec via the LLM, degrading to the static
// dictionary transform (or the language-tag fallback) on failure.
func TranslateRecord(ctx context.Context, rec Record, language string) (Record, string) {
	recJSON, _ := json.Marshal(rec)
	prompt := fmt.Sprintf(translatePrompt, language, recJSON)

	out, note := completeRecord(ctx, "resume_translate", prompt, rec)
	if note != "" {
		return Translate(rec, language), note
	}
	return out, ""
}

// ImportProfile merges pasted profile text into rec via the LLM, degrading to
// the regex-based extraction on failure.
func ImportProfile(ctx context.Context, rec Record, text string) (Record, string) {
	recJSON, _ := json.Marshal(rec)
	prompt := fmt.Sprintf(importPrompt, engine.TruncateRunes(text, 4000, ""), recJSON)

	out, note := completeRecord(ctx, "profile_import", prompt, rec)
	if note != "" {
		return ApplyProfileText(rec, text), note
	}
	return out, ""
}

// completeRecord runs one LLM round-trip and normalizes the response against
// baseline. A non-empty note signals the caller to take its offline fallback.
func completeRecord(ctx context.Context, op, prompt string, baseline Record) (Record, string) {
	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		slog.Warn(op+": llm call failed, using offline fallback", slog.Any("error", err))
		engine.IncrFallbacks()
		return Record{}, NoteOffline
	}

	block := engine.ExtractJSONBlock(raw)
	if block == "" {
		slog.Warn(op+": no JSON in llm response, using offline fallback")
		engine.IncrFallbacks()
		return Record{}, NoteBadFormat
	}

	var loose any
	if err := json.Unmarshal([]byte(block), &loose); err != nil {
		slog.Warn(op+": llm response parse failed, using offline fallback",
			slog.Any("error", err), slog.String("raw", engine.TruncateRunes(block, 200, "...")))
		engine.IncrFallbacks()
		return Record{}, NoteBadFormat
	}

	return Normalize(loose, baseline), ""
}
