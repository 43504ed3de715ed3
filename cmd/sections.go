package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/plumeworks/siteagent/internal/schema"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the available section types, presets, and templates",
	Run:   runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) {
	reg := schema.NewRegistry()
	heading := color.New(color.FgCyan, color.Bold)
	name := color.New(color.FgGreen)

	heading.Println("Section types")
	for _, typeName := range reg.Types() {
		def, _ := reg.Definition(typeName)
		fields := make([]string, 0, len(def.ContentSchema))
		for field, spec := range def.ContentSchema {
			if spec.Required {
				field += "*"
			}
			fields = append(fields, field)
		}
		sort.Strings(fields)
		fmt.Printf("  %s  %s\n", name.Sprintf("%-14s", typeName), def.Description)
		fmt.Printf("  %-14s fields: %s\n", "", strings.Join(fields, ", "))
	}

	heading.Println("\nTheme presets")
	for _, key := range reg.PresetKeys() {
		preset, _ := reg.Preset(key)
		fmt.Printf("  %s  %s / %s, %s\n",
			name.Sprintf("%-14s", key), preset.PrimaryColor, preset.SecondaryColor, preset.FontFamily)
	}

	heading.Println("\nPage templates")
	for _, id := range reg.TemplateIDs() {
		tpl, _ := reg.Template(id)
		types := make([]string, 0, len(tpl.Sections))
		for _, s := range tpl.Sections {
			types = append(types, s.Type)
		}
		fmt.Printf("  %s  %s: %s\n", name.Sprintf("%-14s", id), tpl.Name, strings.Join(types, ", "))
	}

	heading.Println("\nNavigation styles")
	fmt.Printf("  %s\n", strings.Join(schema.NavigationStyles, ", "))
}
