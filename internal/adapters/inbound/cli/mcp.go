package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	mcpadapter "github.com/openkraft/skillkraft/internal/adapters/inbound/mcp"
	"github.com/openkraft/skillkraft/internal/logger"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve skillkraft to MCP clients",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var rootPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve evaluate, compare and sweep over stdio",
		Long: `Run an MCP server on stdin/stdout. Tool paths and bundle resource names resolve
against --path. Stdout carries protocol frames only; diagnostics go to the log on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(rootPath)
			if err != nil {
				return criticalError("resolving --path", err)
			}
			if info, err := os.Stat(root); err != nil || !info.IsDir() {
				return criticalError("invalid --path", fmt.Errorf("%s is not a directory", root))
			}

			entry := logger.G(cmd.Context()).WithField("root", root)
			entry.Info("mcp server listening on stdio")

			errWriter := entry.WriterLevel(logrus.ErrorLevel)
			defer errWriter.Close()

			s := mcpadapter.NewSkillkraftMCPServer(root, version)
			return server.ServeStdio(s, server.WithErrorLogger(log.New(errWriter, "mcp: ", 0)))
		},
	}

	cmd.Flags().StringVar(&rootPath, "path", ".", "Directory that bundle paths resolve against")

	return cmd
}
