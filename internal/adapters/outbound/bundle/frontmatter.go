package bundle

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/openkraft/skillkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

const fence = "---"

type document struct {
	frontmatter domain.Frontmatter
	body        string
	bodyStart   int // 1-based line of the first body line in SKILL.md
}

// splitDocument separates the YAML front-matter block from the body.
// A document without a leading fence has empty front-matter; an opened but
// unterminated or unparsable block is an error.
func splitDocument(content string) (document, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\ufeff")

	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\n") != fence {
		return document{frontmatter: domain.Frontmatter{Fields: []string{}}, body: content, bodyStart: 1}, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		l := strings.TrimRight(lines[i], " \t\n")
		if l == fence || l == "..." {
			end = i
			break
		}
	}
	if end < 0 {
		return document{}, errors.New("front-matter is not terminated")
	}

	raw := strings.Join(lines[1:end], "")
	fm, err := parseFrontmatter(raw)
	if err != nil {
		return document{}, err
	}
	return document{
		frontmatter: fm,
		body:        strings.Join(lines[end+1:], ""),
		bodyStart:   end + 2,
	}, nil
}

func parseFrontmatter(raw string) (domain.Frontmatter, error) {
	fm := domain.Frontmatter{Fields: []string{}}

	var values map[string]any
	if err := yaml.Unmarshal([]byte(raw), &values); err != nil {
		return fm, fmt.Errorf("parsing front-matter: %w", err)
	}

	for k := range values {
		fm.Fields = append(fm.Fields, k)
	}
	sort.Strings(fm.Fields)

	fm.Name = scalarString(values["name"])
	fm.Description = scalarString(values["description"])
	if v, ok := values["version"]; ok {
		fm.Version = scalarString(v)
	}
	if md, ok := values["metadata"].(map[string]any); ok {
		fm.Metadata = md
	}
	return fm, nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
