package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/yacobolo/iconsty"
)

// errCheckFailed makes the process exit 1 without printing anything extra
var errCheckFailed = errors.New("check found issues")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the inputs without writing the package",
	Long: `Run every generation stage except the final write and report malformed
rules, dropped duplicate codepoints, malformed compatibility directives and
compatibility targets the stylesheet does not define.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	addInputFlags(f)
	f.Bool("strict", false, "Exit 1 on any issue, not only errors (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|json")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildConfig()

	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := iconsty.ShouldUseColors(getBoolWithFallback("color", "color", false))
	// Diagnostics are reported as issues; stage logging only shows with --verbose
	log := newLogger(cmd.ErrOrStderr(), cmd.ErrOrStderr(), true, quiet || !config.Verbose, useColors)

	result, err := iconsty.Check(config, log)
	if err != nil {
		return err
	}

	format := iconsty.DetermineOutputFormat(getStringWithFallback("output-format", "check.output-format", ""))
	if !quiet {
		if err := iconsty.WriteOutput(cmd.OutOrStdout(), result, format, useColors); err != nil {
			return err
		}
	}

	// Exit code logic: errors always fail, strict mode fails on warnings too
	strict := getBoolWithFallback("strict", "check.strict", false)
	if result.ErrorCount > 0 || (strict && result.WarningCount > 0) {
		return errCheckFailed
	}

	return nil
}
