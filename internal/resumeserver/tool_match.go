package resumeserver

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerJobMatch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_match",
		Description: "Score a resume against a job description using keyword coverage. Returns a 0-100 score, matched keywords, up to 10 missing skills, and three suggested edits. Accepts plain text or pasted HTML job postings.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input JobMatchInput) (*mcp.CallToolResult, resume.MatchResult, error) {
		if input.JobDescription == "" {
			return nil, resume.MatchResult{}, errors.New("job_description is required")
		}
		engine.IncrMatchRequests()

		jd := engine.CleanJobText(input.JobDescription)

		recJSON, _ := json.Marshal(input.Resume)
		cacheKey := engine.CacheKey("job_match", string(recJSON), jd)
		if out, ok := engine.CacheLoadJSON[resume.MatchResult](ctx, cacheKey); ok {
			return nil, out, nil
		}

		result := resume.ComputeJobMatch(input.Resume, jd)
		engine.CacheStoreJSON(ctx, cacheKey, result)
		return nil, result, nil
	})
}

func registerJobKeywords(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_keywords",
		Description: "Extract the most frequent keywords from a job posting, ranked by frequency with stop words and short tokens filtered out. Returns up to 24 keywords by default.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input JobKeywordsInput) (*mcp.CallToolResult, JobKeywordsOutput, error) {
		if input.Text == "" {
			return nil, JobKeywordsOutput{}, errors.New("text is required")
		}
		engine.IncrKeywordRequests()

		keywords := resume.TopKeywords(engine.CleanJobText(input.Text), input.Limit)
		if keywords == nil {
			keywords = []string{}
		}
		return nil, JobKeywordsOutput{Keywords: keywords}, nil
	})
}
