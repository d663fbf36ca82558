// Package resumeserver registers the resume builder MCP tools.
package resumeserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterTools registers all resume builder tools on the given MCP server:
// job_match, job_keywords, resume_enhance, profile_import, resume_translate,
// resume_save, resume_versions, resume_load.
func RegisterTools(server *mcp.Server) {
	registerJobMatch(server)
	registerJobKeywords(server)
	registerResumeEnhance(server)
	registerProfileImport(server)
	registerResumeTranslate(server)
	registerResumeVersions(server)
}
