package bundle

import (
	"bytes"
	"strings"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// analyzeBody walks the markdown AST of the body and records its section
// hierarchy, backtick path mentions and relative link destinations.
// Fenced code blocks are not code spans, so paths inside them do not count.
func analyzeBody(facts *domain.BundleFacts, body string, bodyStart int) {
	src := []byte(body)
	doc := markdown.Parser().Parse(text.NewReader(src))

	minLevel, maxLevel := 0, 0
	seenPaths := make(map[string]bool)
	seenLinks := make(map[string]bool)
	facts.ReferencedPaths = []domain.PathMention{}
	facts.Links = []domain.PathMention{}

	lineOf := func(n ast.Node) int {
		off := nodeOffset(n)
		if off < 0 {
			return 0
		}
		return bytes.Count(src[:off], []byte("\n")) + bodyStart
	}

	addLink := func(n ast.Node, dest string) {
		dest = strings.TrimSpace(dest)
		if domain.IsExternalLink(dest) || seenLinks[dest] {
			return
		}
		seenLinks[dest] = true
		facts.Links = append(facts.Links, domain.PathMention{Path: dest, Line: lineOf(n)})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			facts.HeadingCount++
			if minLevel == 0 || node.Level < minLevel {
				minLevel = node.Level
			}
			if node.Level > maxLevel {
				maxLevel = node.Level
			}
		case *ast.CodeSpan:
			span := strings.TrimSpace(codeSpanText(node, src))
			isPath := domain.IsPathLike(span) || domain.IsAbsoluteSpan(span)
			if isPath && !seenPaths[span] {
				seenPaths[span] = true
				facts.ReferencedPaths = append(facts.ReferencedPaths, domain.PathMention{Path: span, Line: lineOf(node)})
			}
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			addLink(node, string(node.Destination))
		case *ast.Image:
			addLink(node, string(node.Destination))
		}
		return ast.WalkContinue, nil
	})

	if facts.HeadingCount > 0 {
		facts.HeadingDepth = maxLevel - minLevel + 1
	}
}

func codeSpanText(n *ast.CodeSpan, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return b.String()
}

// nodeOffset finds a source offset for an inline node: its first text
// descendant, else the first line of the nearest enclosing block.
func nodeOffset(n ast.Node) int {
	for c := n.FirstChild(); c != nil; c = c.FirstChild() {
		if t, ok := c.(*ast.Text); ok {
			return t.Segment.Start
		}
	}
	for p := n; p != nil; p = p.Parent() {
		if p.Type() == ast.TypeBlock && p.Lines().Len() > 0 {
			return p.Lines().At(0).Start
		}
	}
	return -1
}
