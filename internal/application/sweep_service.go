package application

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/openkraft/skillkraft/internal/logger"
	"golang.org/x/sync/errgroup"
)

const bundlePattern = "**/" + domain.MainDocument

// skippedDirs are never descended into during discovery.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// SweepService evaluates every bundle found under a root directory.
type SweepService struct {
	evaluator *EvaluateService
}

func NewSweepService(evaluator *EvaluateService) *SweepService {
	return &SweepService{evaluator: evaluator}
}

// Discover returns the sorted absolute directories under root that contain a
// SKILL.md. Hidden directories, node_modules and vendor are skipped.
func Discover(root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, &domain.BundleError{Kind: domain.KindNotFound, Path: abs, Err: err}
	}
	if !info.IsDir() {
		return nil, &domain.BundleError{Kind: domain.KindNotFound, Path: abs, Err: fmt.Errorf("not a directory")}
	}

	matches, err := doublestar.Glob(os.DirFS(abs), bundlePattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", abs, err)
	}

	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		rel := path.Dir(m)
		if skipped(rel) {
			continue
		}
		dirs = append(dirs, filepath.Join(abs, filepath.FromSlash(rel)))
	}
	sort.Strings(dirs)
	return dirs, nil
}

func skipped(rel string) bool {
	if rel == "." {
		return false
	}
	for _, seg := range strings.Split(rel, "/") {
		if strings.HasPrefix(seg, ".") || skippedDirs[seg] {
			return true
		}
	}
	return false
}

// Sweep evaluates each discovered bundle with at most workers evaluations in
// flight. Bundles are independent, so a critical failure in one does not stop
// the others; those failures are collected into the returned error alongside
// a complete report. A nil report means discovery itself failed.
func (s *SweepService) Sweep(ctx context.Context, root string, mode domain.Mode, workers int) (*domain.SweepReport, error) {
	dirs, err := Discover(root)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.G(ctx).WithField("bundles", len(dirs)).WithField("workers", workers).Debug("sweep started")

	abs, _ := filepath.Abs(root)
	entries := make([]domain.SweepEntry, len(dirs))
	errs := make([]error, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := s.evaluator.Evaluate(gctx, dir, mode)
			entries[i] = domain.SweepEntry{Path: dir, Report: report}
			if err != nil {
				entries[i].Error = err.Error()
				errs[i] = err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sweep := &domain.SweepReport{Root: abs, Mode: mode, Bundles: entries}
	var merr *multierror.Error
	for i, e := range entries {
		switch {
		case errs[i] != nil:
			sweep.Critical++
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", e.Path, errs[i]))
		case e.Report.Passed:
			sweep.Passed++
		default:
			sweep.Failed++
		}
	}
	return sweep, merr.ErrorOrNil()
}
