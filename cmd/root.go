package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plumeworks/siteagent/internal/logger"
)

var (
	logLevel string
	siteName string
)

var rootCmd = &cobra.Command{
	Use:   "siteagent",
	Short: "Chat-driven website configuration agent",
	Long: `siteagent edits a structured website document through conversation.

Commands:
  siteagent chat       Interactive chat session against a stored site
  siteagent validate   Validate a site document file
  siteagent sections   List the available section types and presets
  siteagent mcp        Serve the mutation tools over MCP stdio`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringVar(&siteName, "site", "default",
		"Named site to operate on")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
