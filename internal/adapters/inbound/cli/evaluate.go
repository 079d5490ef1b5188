package cli

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/adapters/outbound/bundle"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/config"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/history"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/reportstore"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/skillkraft/internal/application"
	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/openkraft/skillkraft/internal/logger"
	"github.com/spf13/cobra"
)

func newEvaluateService() *application.EvaluateService {
	return application.NewEvaluateService(bundle.New(), config.New(), gitinfo.New())
}

func newEvaluateCmd() *cobra.Command {
	var (
		modeFlag string
		format   string
		output   string
		record   bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate [bundle-path]",
		Short: "Score and validate a skill bundle",
		Long: `Evaluate a skill bundle directory in one of three modes:

  quick    structural rules only, no scores
  full     all rules and scores; warnings do not fail the run
  release  like full, but warnings also fail the run

Exit codes: 0 passed, 1 failed, 2 critical (bundle unreadable).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			if err := validateFormat(format); err != nil {
				return err
			}

			report, err := newEvaluateService().Evaluate(cmd.Context(), bundleArg(args), mode)
			if err != nil {
				return criticalError("evaluation failed", err)
			}

			if output != "" {
				if err := reportstore.New().Save(output, report); err != nil {
					return criticalError("writing report", err)
				}
			}

			if record {
				if _, err := application.NewHistoryService(history.New()).Record(report); err != nil {
					logger.G(cmd.Context()).WithError(err).Warn("recording history failed")
				}
			}

			if format == formatJSON {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if domain.ExitCodeFor(report, nil) == domain.ExitFailed {
				return failedError(fmt.Sprintf("%s failed %s mode", report.Bundle, report.Mode))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeFull), "Evaluation mode (quick, full, release)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the JSON report to this file")
	cmd.Flags().BoolVar(&record, "record", false, "Append the result to the bundle's history")

	return cmd
}
