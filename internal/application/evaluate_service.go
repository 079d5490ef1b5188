package application

import (
	"context"
	"fmt"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/openkraft/skillkraft/internal/domain/check"
	"github.com/openkraft/skillkraft/internal/domain/scoring"
	"github.com/openkraft/skillkraft/internal/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// EvaluateService orchestrates one bundle run:
// read facts → {metric scorers, rule validator} → composite → mode gate.
type EvaluateService struct {
	reader       domain.BundleReader
	configLoader domain.ConfigLoader
	gitInfo      domain.GitInfo
}

// NewEvaluateService wires the service. gitInfo may be nil, in which case
// reports carry no commit hash.
func NewEvaluateService(reader domain.BundleReader, configLoader domain.ConfigLoader, gitInfo domain.GitInfo) *EvaluateService {
	return &EvaluateService{
		reader:       reader,
		configLoader: configLoader,
		gitInfo:      gitInfo,
	}
}

// Evaluate reads the bundle at bundlePath and evaluates it in mode.
// Any error returned is critical: no report is produced.
func (s *EvaluateService) Evaluate(ctx context.Context, bundlePath string, mode domain.Mode) (*domain.Report, error) {
	log := logger.G(ctx).WithFields(logrus.Fields{"bundle": bundlePath, "mode": mode})

	// 1. Snapshot the bundle once
	facts, err := s.reader.Read(bundlePath)
	if err != nil {
		log.WithError(err).Debug("reading bundle failed")
		return nil, err
	}

	// 2. Load config next to the bundle
	cfg, err := s.configLoader.Load(facts.Path)
	if err != nil {
		return nil, &domain.BundleError{Kind: domain.KindMalformed, Path: facts.Path, Err: fmt.Errorf("loading config: %w", err)}
	}

	report := EvaluateFacts(ctx, facts, mode, cfg)

	// 3. Stamp the commit, best effort
	if s.gitInfo != nil {
		if hash, err := s.gitInfo.CommitHash(facts.Path); err == nil {
			report.CommitHash = hash
		} else {
			log.WithError(err).Trace("no commit hash")
		}
	}

	log.WithFields(logrus.Fields{
		"errors":   report.Counts.Error,
		"warnings": report.Counts.Warning,
		"passed":   report.Passed,
	}).Debug("bundle evaluated")
	return report, nil
}

// EvaluateFacts runs the scoring and validation pipeline over an existing
// snapshot. The scorers and the validator only read facts, so they run
// concurrently; the composite and the mode gate wait for all of them.
func EvaluateFacts(ctx context.Context, facts *domain.BundleFacts, mode domain.Mode, cfg domain.ProjectConfig) *domain.Report {
	profile := BuildProfile(cfg)
	rules := check.Select(check.Without(check.DefaultRules(profile.Limits), cfg.IsDisabledRule), mode)

	var (
		g           errgroup.Group
		issues      []domain.Issue
		conciseness domain.MetricResult
		complexity  domain.MetricResult
		disclosure  domain.MetricResult
	)

	g.Go(func() error {
		issues = check.Run(rules, facts)
		return nil
	})
	if mode.ScoresMetrics() {
		g.Go(func() error {
			conciseness = scoring.ScoreConciseness(&profile, facts)
			return nil
		})
		g.Go(func() error {
			complexity = scoring.ScoreComplexity(&profile, facts)
			return nil
		})
		g.Go(func() error {
			disclosure = scoring.ScoreProgressiveDisclosure(&profile, facts)
			return nil
		})
	}
	_ = g.Wait()

	report := &domain.Report{
		Bundle:  facts.DirectoryName,
		Path:    facts.Path,
		Mode:    mode,
		Details: []domain.MetricResult{},
		Issues:  issues,
		Counts:  domain.CountIssues(issues),
		Facts:   facts,
	}

	if mode.ScoresMetrics() {
		compliance := scoring.ScoreSpecCompliance(&profile, issues)
		report.Details = []domain.MetricResult{conciseness, complexity, compliance, disclosure}
		report.Metrics = domain.MetricScores{
			Conciseness:           intPtr(conciseness.Score),
			Complexity:            intPtr(complexity.Score),
			SpecCompliance:        intPtr(compliance.Score),
			ProgressiveDisclosure: intPtr(disclosure.Score),
		}
		overall := scoring.ComputeOverall(&profile, report.Details)
		report.Overall = &overall
		report.Band = domain.BandFor(overall)
	}

	report.Passed = mode.Passed(issues)
	logger.G(ctx).WithField("rules", len(rules)).Trace("pipeline finished")
	return report
}

// BuildProfile constructs a ScoringProfile from defaults and config overrides.
func BuildProfile(cfg domain.ProjectConfig) domain.ScoringProfile {
	base := domain.DefaultProfile()

	for k, w := range cfg.Weights {
		base.Weights[k] = w
	}
	if d := cfg.Deductions; d != nil {
		if d.Error != nil {
			base.Compliance.ErrorDeduction = *d.Error
		}
		if d.Warning != nil {
			base.Compliance.WarningDeduction = *d.Warning
		}
	}
	if l := cfg.Limits; l != nil {
		if l.MaxNameLength != nil {
			base.Limits.MaxNameLength = *l.MaxNameLength
		}
		if l.MaxDescriptionLength != nil {
			base.Limits.MaxDescriptionLength = *l.MaxDescriptionLength
		}
	}
	if b := cfg.Bonus; b != nil {
		if b.ReferenceLinesThreshold != nil {
			base.Conciseness.BonusThreshold = *b.ReferenceLinesThreshold
		}
		if b.Points != nil {
			base.Conciseness.BonusPoints = *b.Points
		}
	}

	return base
}

func intPtr(v int) *int { return &v }
