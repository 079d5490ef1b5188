package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/openkraft/skillkraft/internal/domain/check"
)

// registerResources registers all skillkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, rootPath string) {
	// 1. skillkraft://rules - rule catalog
	s.AddResource(
		mcplib.NewResource(
			"skillkraft://rules",
			"Rule Catalog",
			mcplib.WithResourceDescription("Every validation rule with its code and whether quick mode runs it"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)

	// 2. skillkraft://bundles/{name} - full-mode report (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"skillkraft://bundles/{name}",
			"Bundle Report",
			mcplib.WithTemplateDescription("Full-mode report for a bundle directory under the server root"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleBundleResource(rootPath),
	)
}

var errNoBundleName = errors.New("bundle name is required")

// RuleInfo describes one validation rule.
type RuleInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Structural  bool   `json:"structural"`
}

// RuleCatalog lists the default rules in evaluation order.
func RuleCatalog() []RuleInfo {
	rules := check.DefaultRules(domain.DefaultProfile().Limits)
	out := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		out = append(out, RuleInfo{Code: r.Code, Description: r.Description, Structural: r.Structural})
	}
	return out
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, RuleCatalog())
	}
}

func handleBundleResource(rootPath string) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Extract bundle name from the arguments (populated by template matching)
		name := templateArg(request.Params.Arguments["name"])
		if name == "" {
			return nil, errNoBundleName
		}

		report, err := newEvaluateService().Evaluate(ctx, resolve(rootPath, name), domain.ModeFull)
		if err != nil {
			return nil, fmt.Errorf("evaluation failed: %w", err)
		}
		return jsonContents(request.Params.URI, report)
	}
}

// templateArg unwraps a template variable, which the server may pass as a
// string or a single-element slice.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
