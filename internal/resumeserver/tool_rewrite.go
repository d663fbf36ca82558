package resumeserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeEnhance(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_enhance",
		Description: "Tailor a resume toward a target role (Software Engineer or Data Analyst): merges the role's focus skills, rewrites the summary, and fills empty experience roles. Uses the AI service when available and deterministic offline rules otherwise; the note field says which path ran.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input EnhanceInput) (*mcp.CallToolResult, RewriteOutput, error) {
		if strings.TrimSpace(input.Role) == "" {
			return nil, RewriteOutput{}, fmt.Errorf("role is required (supported: %s)", strings.Join(resume.Roles(), ", "))
		}
		engine.IncrTailorRequests()

		rec, note := resume.EnhanceForRole(ctx, input.Resume, input.Role)
		return nil, RewriteOutput{Resume: rec, Note: note}, nil
	})
}

func registerProfileImport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_import",
		Description: "Merge pasted profile text (LinkedIn export, bio) into a resume: extracts name, email, phone, LinkedIn URL, summary, and known tech skills. Uses the AI service when available and regex extraction otherwise. Extracted values only overwrite fields they could fill.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileImportInput) (*mcp.CallToolResult, RewriteOutput, error) {
		if strings.TrimSpace(input.Text) == "" {
			return nil, RewriteOutput{}, errors.New("text is required")
		}
		engine.IncrImportRequests()

		rec, note := resume.ImportProfile(ctx, input.Resume, input.Text)
		return nil, RewriteOutput{Resume: rec, Note: note}, nil
	})
}

func registerResumeTranslate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_translate",
		Description: "Translate a resume's free-text fields into a target language. Uses the AI service when available; offline, spanish/french/german fall back to static word dictionaries and any other language is tagged on the summary.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input TranslateInput) (*mcp.CallToolResult, RewriteOutput, error) {
		if strings.TrimSpace(input.Language) == "" {
			return nil, RewriteOutput{}, errors.New("language is required")
		}
		engine.IncrTranslateRequests()

		rec, note := resume.TranslateRecord(ctx, input.Resume, input.Language)
		return nil, RewriteOutput{Resume: rec, Note: note}, nil
	})
}
