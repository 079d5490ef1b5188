package cli

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/adapters/outbound/reportstore"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/skillkraft/internal/application"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		format           string
		failOnRegression bool
	)

	cmd := &cobra.Command{
		Use:   "compare <baseline.json> <current.json>",
		Short: "Compare two saved reports",
		Long:  "Show metric deltas and the issues introduced or resolved between two reports written with evaluate --output or --format json.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			svc := application.NewCompareService(reportstore.New())
			diff, err := svc.CompareFiles(args[0], args[1])
			if err != nil {
				return criticalError("compare failed", err)
			}

			if format == formatJSON {
				if err := renderJSON(cmd, diff); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderDiff(diff))
			}

			if failOnRegression && diff.Regressed() {
				return failedError("regression detected")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")
	cmd.Flags().BoolVar(&failOnRegression, "fail-on-regression", false, "Exit 1 when the current report regressed")

	return cmd
}
