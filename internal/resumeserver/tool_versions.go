package resumeserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_resume/internal/engine/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeVersions(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_save",
		Description: "Save a resume snapshot to the local version store under an optional label. Returns the new version id.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input SaveInput) (*mcp.CallToolResult, SaveOutput, error) {
		id, err := resume.SaveVersion(ctx, input.Label, input.Resume)
		if err != nil {
			return nil, SaveOutput{}, err
		}
		return nil, SaveOutput{
			ID:      id,
			Message: fmt.Sprintf("Resume saved as version %d.", id),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_versions",
		Description: "List saved resume snapshots, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input VersionsInput) (*mcp.CallToolResult, VersionsOutput, error) {
		versions, err := resume.ListVersions(ctx, input.Limit)
		if err != nil {
			return nil, VersionsOutput{}, err
		}
		if versions == nil {
			versions = []resume.Version{}
		}
		return nil, VersionsOutput{Versions: versions}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_load",
		Description: "Load a saved resume snapshot by version id, or the most recent one when no id is given.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input LoadInput) (*mcp.CallToolResult, LoadOutput, error) {
		rec, version, err := resume.LoadVersion(ctx, input.ID)
		if err != nil {
			return nil, LoadOutput{}, err
		}
		return nil, LoadOutput{Resume: rec, Version: version}, nil
	})
}
