package application_test

import (
	"github.com/openkraft/skillkraft/internal/domain"
)

type fakeReader struct {
	facts *domain.BundleFacts
	err   error
}

func (r *fakeReader) Read(string) (*domain.BundleFacts, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.facts, nil
}

type fakeConfig struct {
	cfg domain.ProjectConfig
	err error
}

func (c *fakeConfig) Load(string) (domain.ProjectConfig, error) {
	return c.cfg, c.err
}

type fakeGit struct {
	hash string
	err  error
}

func (g *fakeGit) CommitHash(string) (string, error) {
	return g.hash, g.err
}

type memoryHistory struct {
	entries map[string][]domain.ScoreEntry
}

func (h *memoryHistory) Save(path string, e domain.ScoreEntry) error {
	if h.entries == nil {
		h.entries = map[string][]domain.ScoreEntry{}
	}
	h.entries[path] = append(h.entries[path], e)
	return nil
}

func (h *memoryHistory) Load(path string) ([]domain.ScoreEntry, error) {
	return h.entries[path], nil
}

// scenarioA is a compact, valid bundle: 140 lines, 1200 tokens, no references.
func scenarioA() *domain.BundleFacts {
	return &domain.BundleFacts{
		Path:          "/skills/pdf-tools",
		DirectoryName: "pdf-tools",
		Frontmatter: domain.Frontmatter{
			Name:        "pdf-tools",
			Description: "Work with PDF files.",
			Fields:      []string{"description", "name"},
		},
		BodyLineCount:   140,
		BodyTokenCount:  1200,
		HeadingDepth:    2,
		ReferenceFiles:  []domain.ReferenceFile{},
		AssetFiles:      []string{},
		ReferencedPaths: []domain.PathMention{},
		Links:           []domain.PathMention{},
	}
}

// scenarioB is an oversized bundle that points at an absolute path.
func scenarioB() *domain.BundleFacts {
	f := scenarioA()
	f.BodyLineCount = 800
	f.BodyTokenCount = 3500
	f.ReferencedPaths = []domain.PathMention{{Path: "/home/me/skills/notes.md", Line: 40}}
	return f
}
