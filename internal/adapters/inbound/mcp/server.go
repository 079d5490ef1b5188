package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

const instructions = `skillkraft evaluates agent skill bundles: a directory holding a SKILL.md
with YAML front-matter plus optional references/ and assets/.
Use skillkraft_evaluate on one bundle, skillkraft_sweep on a directory of bundles and
skillkraft_compare on two reports saved with "skillkraft evaluate -o".
Read skillkraft://rules for the rule codes that appear in reports.`

// NewSkillkraftMCPServer builds the stdio MCP surface. Bundle paths in tool
// arguments and resource URIs resolve against rootPath. A panicking handler
// becomes an error result instead of taking the server down.
func NewSkillkraftMCPServer(rootPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"skillkraft",
		version,
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithRecovery(),
		server.WithResourceRecovery(),
	)

	registerTools(s, rootPath)
	registerResources(s, rootPath)

	return s
}
