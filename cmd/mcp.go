package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plumeworks/siteagent/internal/config"
	"github.com/plumeworks/siteagent/internal/logger"
	"github.com/plumeworks/siteagent/internal/mcpserver"
	"github.com/plumeworks/siteagent/internal/persist"
	"github.com/plumeworks/siteagent/internal/schema"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the site mutation tools over MCP stdio",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	store, err := persist.NewStore(config.DataPath())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	srv, err := mcpserver.New(schema.NewRegistry(), store, siteName, Version)
	if err != nil {
		return err
	}

	logger.Info("[MCP] Serving site %q over stdio", siteName)
	return srv.ServeStdio()
}
