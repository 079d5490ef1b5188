package cli

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/adapters/outbound/bundle"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/history"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/skillkraft/internal/application"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "history [bundle-path]",
		Short: "Show runs recorded with evaluate --record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			dir, err := bundle.ResolveDir(bundleArg(args))
			if err != nil {
				return criticalError("resolving bundle", err)
			}

			entries, err := application.NewHistoryService(history.New()).List(dir)
			if err != nil {
				return criticalError("loading history", err)
			}

			if format == formatJSON {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")

	return cmd
}
