package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openkraft/skillkraft/internal/adapters/outbound/bundle"
	"github.com/openkraft/skillkraft/internal/adapters/outbound/config"
	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [bundle-path]",
		Short: "Generate a .skillkraft.yaml configuration file",
		Long:  "Create a .skillkraft.yaml in a bundle directory listing every tunable with its default value.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := bundle.ResolveDir(bundleArg(args))
			if err != nil {
				return criticalError("resolving bundle", err)
			}

			dest := filepath.Join(dir, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(domain.DefaultProfile())), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .skillkraft.yaml")

	return cmd
}

// generateConfig renders the defaults as a valid config file. Optional
// sections are commented out so the file changes nothing until edited.
func generateConfig(p domain.ScoringProfile) string {
	var b strings.Builder

	b.WriteString("# skillkraft configuration\n\n")

	b.WriteString("weights:\n")
	// Ordered output for readability
	for _, name := range domain.ValidMetrics {
		fmt.Fprintf(&b, "  %s: %.2f\n", name, p.Weights[name])
	}

	fmt.Fprintf(&b, "\ndeductions:\n  error: %d\n  warning: %d\n", p.Compliance.ErrorDeduction, p.Compliance.WarningDeduction)

	fmt.Fprintf(&b, "\n# limits:\n#   max_name_length: %d\n#   max_description_length: %d\n",
		p.Limits.MaxNameLength, p.Limits.MaxDescriptionLength)

	fmt.Fprintf(&b, "\n# bonus:\n#   reference_lines_threshold: %d\n#   points: %d\n",
		p.Conciseness.BonusThreshold, p.Conciseness.BonusPoints)

	b.WriteString("\n# disabled_rules:\n")
	for _, code := range domain.ValidRuleCodes {
		fmt.Fprintf(&b, "#   - %s\n", code)
	}

	return b.String()
}
