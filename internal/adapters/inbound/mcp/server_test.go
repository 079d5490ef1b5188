package mcp_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpadapter "github.com/openkraft/skillkraft/internal/adapters/inbound/mcp"
	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundlesDir = "../../../../testdata/bundles"

func TestNewSkillkraftMCPServer(t *testing.T) {
	s := mcpadapter.NewSkillkraftMCPServer(".", "test")
	require.NotNil(t, s)
}

func TestMCPServer_InitializeCarriesInstructions(t *testing.T) {
	s := mcpadapter.NewSkillkraftMCPServer(".", "test")
	msg := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"t","version":"0"}}}`

	resp := s.HandleMessage(context.Background(), json.RawMessage(msg))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"name":"skillkraft"`)
	assert.Contains(t, string(raw), "skillkraft://rules")
	assert.Contains(t, string(raw), "skillkraft_evaluate")
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewSkillkraftMCPServer(".", "test")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"skillkraft_evaluate",
		"skillkraft_compare",
		"skillkraft_sweep",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

func callTool(t *testing.T, root, name string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	s := mcpadapter.NewSkillkraftMCPServer(root, "test")
	tool := s.ListTools()[name]
	require.NotNil(t, tool, "tool %q", name)

	var req mcplib.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	result, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	return result
}

func resultText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content)
	text, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestEvaluateTool_ReturnsReport(t *testing.T) {
	root, err := filepath.Abs(bundlesDir)
	require.NoError(t, err)

	result := callTool(t, root, "skillkraft_evaluate", map[string]any{"path": "perfect-skill"})
	require.False(t, result.IsError, resultText(t, result))

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, "perfect-skill", report.Bundle)
	assert.Equal(t, domain.ModeFull, report.Mode)
	assert.True(t, report.Passed)
}

func TestEvaluateTool_RejectsUnknownMode(t *testing.T) {
	result := callTool(t, bundlesDir, "skillkraft_evaluate", map[string]any{"path": "perfect-skill", "mode": "strict"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown mode")
}

func TestEvaluateTool_MissingBundleIsError(t *testing.T) {
	result := callTool(t, t.TempDir(), "skillkraft_evaluate", map[string]any{"path": "nope"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "critical")
}

func TestSweepTool_ReturnsAllBundles(t *testing.T) {
	root, err := filepath.Abs(bundlesDir)
	require.NoError(t, err)

	result := callTool(t, root, "skillkraft_sweep", map[string]any{"mode": "quick"})
	require.False(t, result.IsError, resultText(t, result))

	var sweep domain.SweepReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &sweep))
	assert.Equal(t, domain.ModeQuick, sweep.Mode)
	assert.NotEmpty(t, sweep.Bundles)
}

func TestRuleCatalog(t *testing.T) {
	catalog := mcpadapter.RuleCatalog()
	require.Len(t, catalog, len(domain.ValidRuleCodes))
	for i, r := range catalog {
		assert.Equal(t, domain.ValidRuleCodes[i], r.Code)
		assert.NotEmpty(t, r.Description)
	}
}
