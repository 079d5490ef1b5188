package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/skillkraft/internal/adapters/outbound/bundle"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/config"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/reportstore"
	"github.com/openkraft/skillkraft/internal/application"
	"github.com/openkraft/skillkraft/internal/domain"
)

var modeOption = mcplib.WithString("mode",
	mcplib.Description("Evaluation mode: quick, full or release (default full)"),
	mcplib.Enum("quick", "full", "release"),
)

// registerTools registers all skillkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, rootPath string) {
	// 1. skillkraft_evaluate
	s.AddTool(
		mcplib.NewTool("skillkraft_evaluate",
			mcplib.WithDescription("Evaluate one skill bundle and return its validation report as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Bundle directory, relative to the server root or absolute"),
			),
			modeOption,
		),
		handleEvaluate(rootPath),
	)

	// 2. skillkraft_compare
	s.AddTool(
		mcplib.NewTool("skillkraft_compare",
			mcplib.WithDescription("Compare two saved JSON reports and return metric deltas and issue changes"),
			mcplib.WithString("baseline",
				mcplib.Required(),
				mcplib.Description("Path to the baseline report JSON"),
			),
			mcplib.WithString("current",
				mcplib.Required(),
				mcplib.Description("Path to the current report JSON"),
			),
		),
		handleCompare(rootPath),
	)

	// 3. skillkraft_sweep
	s.AddTool(
		mcplib.NewTool("skillkraft_sweep",
			mcplib.WithDescription("Evaluate every skill bundle under a directory"),
			mcplib.WithString("path",
				mcplib.Description("Directory to search, relative to the server root (default: root)"),
			),
			modeOption,
		),
		handleSweep(rootPath),
	)
}

func newEvaluateService() *application.EvaluateService {
	return application.NewEvaluateService(bundle.New(), config.New(), gitinfo.New())
}

func handleEvaluate(rootPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		mode, err := modeArg(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := newEvaluateService().Evaluate(ctx, resolve(rootPath, path), mode)
		if domain.IsCritical(err) {
			return errorResult(fmt.Sprintf("critical: %v", err)), nil
		}
		if err != nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleCompare(rootPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		baseline, err := request.RequireString("baseline")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		current, err := request.RequireString("current")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewCompareService(reportstore.New())
		diff, err := svc.CompareFiles(resolve(rootPath, baseline), resolve(rootPath, current))
		if err != nil {
			return errorResult(fmt.Sprintf("compare failed: %v", err)), nil
		}
		return jsonResult(diff)
	}
}

func handleSweep(rootPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		mode, err := modeArg(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewSweepService(newEvaluateService())
		sweep, err := svc.Sweep(ctx, resolve(rootPath, path), mode, 0)
		if sweep == nil {
			return errorResult(fmt.Sprintf("sweep failed: %v", err)), nil
		}
		// Per-bundle critical errors are already recorded in the entries.
		return jsonResult(sweep)
	}
}

func modeArg(request mcplib.CallToolRequest) (domain.Mode, error) {
	raw, _ := request.GetArguments()["mode"].(string)
	if raw == "" {
		return domain.ModeFull, nil
	}
	return domain.ParseMode(raw)
}

// resolve joins a tool path argument onto the server root.
func resolve(rootPath, path string) string {
	if path == "" {
		return rootPath
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootPath, path)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
