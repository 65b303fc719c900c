package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/iconsty"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the LaTeX package from the icon stylesheet",
	Long: `Parse the icon stylesheet and the backward-compatibility list, render
macro definitions for every icon and alias, and write them into the template.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addInputFlags(rootCmd.Flags())
	addInputFlags(generateCmd.Flags())
}

// addInputFlags registers the flags shared by generate and check
func addInputFlags(f *pflag.FlagSet) {
	f.StringSlice("stylesheet", nil, "Stylesheet files or glob patterns (default input/fontawesome_reduced.css)")
	f.String("compat", "", "Backward-compatibility list (default input/backward_cap.txt)")
	f.String("template", "", "Template file (default input/template.sty)")
	f.String("output", "", "Output file (default output/fontawesome.sty)")
	f.String("parser", "", "Stylesheet parser: tdewolff|douceur (douceur is stricter and fails on empty declarations)")
	f.String("order", "", "Render order: codepoint|source")
	f.Int("group-size", 0, "Blank line after every N statements (default 10)")
	f.String("left-delim", "", "Template left delimiter (default <<)")
	f.String("right-delim", "", "Template right delimiter (default >>)")
	f.Bool("strict-compat", false, "Drop compatibility aliases whose target is not a stylesheet icon")
	f.String("selector-prefix", "", "Icon class prefix (default fa-)")
	f.String("macro-prefix", "", `Public macro prefix (default \fa)`)
	f.String("csname-prefix", "", "Low-level csname prefix (default faicon@)")
	f.String("font-command", "", `Font switch command (default \FA)`)
	f.StringSlice("vcs-command", nil, "Version-control descriptor command (default git,describe,--long,--dirty,--tags)")
	f.StringSlice("host-command", nil, "Host descriptor command (default uname,-a)")
	f.String("date-layout", "", "Go time layout for the generation date (default 2006-01-02 15:04)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildConfig()

	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := iconsty.ShouldUseColors(getBoolWithFallback("color", "color", false))
	log := newLogger(cmd.OutOrStdout(), cmd.ErrOrStderr(), config.Verbose, quiet, useColors)
	defer func() { _ = log.Sync() }()

	result, err := iconsty.Generate(cmd.Context(), config, log)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !quiet {
		iconsty.PrintGenerateSummary(cmd.OutOrStdout(), result, useColors)
	}

	return nil
}
