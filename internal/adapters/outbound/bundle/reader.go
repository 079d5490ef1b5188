package bundle

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/openkraft/skillkraft/internal/domain"
)

// Reader implements domain.BundleReader by reading a bundle directory.
type Reader struct{}

func New() *Reader {
	return &Reader{}
}

// Read loads the facts of the bundle at path. path may be absolute, relative
// to the working directory, ".", or the SKILL.md file itself.
func (r *Reader) Read(path string) (*domain.BundleFacts, error) {
	dir, err := ResolveDir(path)
	if err != nil {
		return nil, err
	}

	docPath := filepath.Join(dir, domain.MainDocument)
	content, err := os.ReadFile(docPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.BundleError{Kind: domain.KindNotFound, Path: dir, Err: fmt.Errorf("no %s", domain.MainDocument)}
		}
		return nil, &domain.BundleError{Kind: domain.KindUnreadable, Path: docPath, Err: err}
	}

	doc, err := splitDocument(string(content))
	if err != nil {
		return nil, &domain.BundleError{Kind: domain.KindMalformed, Path: docPath, Err: err}
	}

	facts := &domain.BundleFacts{
		Path:           dir,
		DirectoryName:  filepath.Base(dir),
		Frontmatter:    doc.frontmatter,
		BodyLineCount:  countLines(doc.body),
		BodyTokenCount: estimateTokens(doc.body),
		BodyStartLine:  doc.bodyStart,
		Body:           doc.body,
	}
	analyzeBody(facts, doc.body, doc.bodyStart)

	if facts.ReferenceFiles, err = readReferenceFiles(dir); err != nil {
		return nil, err
	}
	if facts.AssetFiles, err = listFiles(dir, domain.AssetsDir); err != nil {
		return nil, err
	}
	return facts, nil
}

// ResolveDir returns the absolute, symlink-free bundle directory for path.
// filepath.Abs handles the "." alias, so every input form for the same
// directory yields the same result.
func ResolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &domain.BundleError{Kind: domain.KindNotFound, Path: path, Err: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &domain.BundleError{Kind: domain.KindNotFound, Path: abs}
		}
		return "", &domain.BundleError{Kind: domain.KindUnreadable, Path: abs, Err: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &domain.BundleError{Kind: domain.KindNotFound, Path: resolved, Err: err}
	}
	if !info.IsDir() {
		if filepath.Base(resolved) == domain.MainDocument {
			return filepath.Dir(resolved), nil
		}
		return "", &domain.BundleError{Kind: domain.KindNotFound, Path: resolved, Err: errors.New("not a bundle directory")}
	}
	return resolved, nil
}

func readReferenceFiles(dir string) ([]domain.ReferenceFile, error) {
	paths, err := listFiles(dir, domain.ReferencesDir)
	if err != nil {
		return nil, err
	}
	refs := make([]domain.ReferenceFile, 0, len(paths))
	for _, rel := range paths {
		lines, err := countFileLines(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, &domain.BundleError{Kind: domain.KindUnreadable, Path: rel, Err: err}
		}
		refs = append(refs, domain.ReferenceFile{Path: rel, Lines: lines})
	}
	return refs, nil
}

// listFiles returns bundle-relative, slash-separated paths of every regular
// file under dir/sub, sorted. A missing collection is empty, not an error.
func listFiles(dir, sub string) ([]string, error) {
	root := filepath.Join(dir, sub)
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return []string{}, nil
	}

	files := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, &domain.BundleError{Kind: domain.KindUnreadable, Path: root, Err: err}
	}
	sort.Strings(files)
	return files, nil
}

const maxLineSize = 1024 * 1024

// countFileLines counts lines, including a final line without a newline.
func countFileLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
	}
	return n, sc.Err()
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// estimateTokens approximates a tokenizer at four characters per token.
func estimateTokens(s string) int {
	return (utf8.RuneCountInString(s) + 3) / 4
}
