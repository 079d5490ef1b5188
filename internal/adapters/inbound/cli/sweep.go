package cli

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/skillkraft/internal/application"
	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/openkraft/skillkraft/internal/logger"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	var (
		modeFlag string
		format   string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "sweep [root]",
		Short: "Evaluate every skill bundle under a directory",
		Long:  "Find every directory containing a SKILL.md below root and evaluate each one. Exits 2 if any bundle is critical, else 1 if any failed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			if err := validateFormat(format); err != nil {
				return err
			}

			svc := application.NewSweepService(newEvaluateService())
			sweep, err := svc.Sweep(cmd.Context(), bundleArg(args), mode, workers)
			if sweep == nil {
				return criticalError("sweep failed", err)
			}
			if err != nil {
				logger.G(cmd.Context()).WithError(err).Debug("bundles with critical errors")
			}

			if format == formatJSON {
				if err := renderJSON(cmd, sweep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSweep(sweep))
			}

			if code := sweep.ExitCode(); code != domain.ExitPassed {
				return &ExitError{
					Code:    code,
					Message: fmt.Sprintf("%d failed, %d critical", sweep.Failed, sweep.Critical),
					Silent:  true,
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeFull), "Evaluation mode (quick, full, release)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent evaluations (default: number of CPUs)")

	return cmd
}
