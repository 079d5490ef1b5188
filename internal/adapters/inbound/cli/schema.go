package cli

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/spf13/cobra"
)

// schemaTargets maps --type values to the documents they describe.
var schemaTargets = map[string]func() any{
	"report": func() any { return &domain.Report{} },
	"diff":   func() any { return &domain.ReportDiff{} },
	"sweep":  func() any { return &domain.SweepReport{} },
	"config": func() any { return &domain.ProjectConfig{} },
}

func newSchemaCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of skillkraft's JSON output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			newValue, ok := schemaTargets[target]
			if !ok {
				return fmt.Errorf("unknown schema type %q (valid: report, diff, sweep, config)", target)
			}

			r := &jsonschema.Reflector{}
			return renderJSON(cmd, r.Reflect(newValue()))
		},
	}

	cmd.Flags().StringVar(&target, "type", "report", "Document to describe (report, diff, sweep, config)")

	return cmd
}
