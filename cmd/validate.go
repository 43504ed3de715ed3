package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
)

var validateFix bool

var validateCmd = &cobra.Command{
	Use:   "validate <document.json>",
	Short: "Validate a site document file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateFix, "fix", false,
		"Sanitize the document and write it back in place")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	doc, err := site.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	reg := schema.NewRegistry()
	report := site.Validate(reg, doc)

	if report.Valid {
		color.New(color.FgGreen).Println("document is valid")
		return nil
	}

	red := color.New(color.FgRed)
	for _, e := range report.Errors {
		red.Printf("%s: %s\n", e.Path, e.Message)
	}

	if !validateFix {
		return fmt.Errorf("%d validation error(s)", len(report.Errors))
	}

	fixed := site.Sanitize(reg, doc)
	out, err := fixed.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode sanitized document: %w", err)
	}
	if err := os.WriteFile(args[0], out, 0644); err != nil {
		return err
	}
	color.New(color.FgYellow).Printf("sanitized document written to %s\n", args[0])
	return nil
}
