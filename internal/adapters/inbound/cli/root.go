package cli

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/logger"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "skillkraft",
		Short: "Score and validate agent skill bundles",
		Long:  "skillkraft scores a skill bundle's SKILL.md for conciseness, complexity, spec compliance and progressive disclosure, and gates it by mode.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.SetLogLevel(logLevel); err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			logger.SetLogFormat(logFormat)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEvaluateCmd())
	cmd.AddCommand(newCompareCmd())
	cmd.AddCommand(newSweepCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and reports non-silent errors on stderr.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !isSilent(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
