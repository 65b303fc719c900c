package iconsty

import (
	"fmt"
	"io"

	"github.com/yacobolo/iconsty/internal/iconsty"
)

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format followed by a summary
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows record counts and issue totals only
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format for a format flag value.
// Unknown or empty values fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, useColors bool) error {
	reporter := iconsty.NewReporter(w, useColors)

	switch format {
	case OutputSummary:
		reporter.PrintCheckSummary(*result)
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	default:
		reporter.PrintIssues(result.Issues)
		reporter.PrintCheckSummary(*result)
	}

	return nil
}

// PrintGenerateSummary prints the record counts of a generation run
func PrintGenerateSummary(w io.Writer, result *GenerateResult, useColors bool) {
	iconsty.NewReporter(w, useColors).PrintGenerateSummary(*result)
}

// ShouldUseColors reports whether reporters should color their output.
// force wins; otherwise FORCE_COLOR or a terminal on stdout enables colors.
func ShouldUseColors(force bool) bool {
	return iconsty.ShouldUseColors(force)
}
