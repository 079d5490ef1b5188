package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: text, json)", format)
	}
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func bundleArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
