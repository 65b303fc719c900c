package iconsty

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles shared by the reporters.
// Lipgloss degrades colors based on terminal capabilities.
var (
	StyleCyan   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	StyleRed    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	StyleGreen  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	StyleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Reporter prints check issues and generation summaries
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// PrintIssues outputs issues in golangci-lint format, sorted by file and line
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		return sorted[i].Pos.Line < sorted[j].Pos.Line
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats one issue: file:line: [severity] message (linter)
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:", issue.Pos.Filename, issue.Pos.Line)
	}

	severity := ""
	switch issue.Severity {
	case SeverityError:
		severity = RenderStyle(StyleRed, "error", r.useColors) + ": "
	case SeverityWarning:
		severity = RenderStyle(StyleYellow, "warning", r.useColors) + ": "
	}

	fmt.Fprintf(r.w, "%s %s%s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		severity,
		issue.Text,
		RenderStyle(StyleGray, " ("+issue.FromLinter+")", r.useColors))

	for _, line := range issue.SourceLines {
		fmt.Fprintf(r.w, "\t%s\n", line)
	}
}

// PrintCheckSummary outputs the issue count summary
func (r *Reporter) PrintCheckSummary(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s (%s, %s):\n",
		pluralizeCount(len(result.Issues), "issue", "issues"),
		RenderStyle(StyleRed, pluralizeCount(result.ErrorCount, "error", "errors"), r.useColors && result.ErrorCount > 0),
		pluralizeCount(result.WarningCount, "warning", "warnings"))
	r.printCounts(result.Generate)
}

// PrintGenerateSummary outputs the record counts of a generation run
func (r *Reporter) PrintGenerateSummary(result GenerateResult) {
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Generated "+result.OutputFile, r.useColors))
	r.printCounts(result)
	if result.Metadata.GitInfo != "" {
		fmt.Fprintln(r.w, RenderStyle(StyleGray,
			fmt.Sprintf("  %s, %s", result.Metadata.GitInfo, result.Metadata.Date), r.useColors))
	}
}

func (r *Reporter) printCounts(result GenerateResult) {
	fmt.Fprintf(r.w, "  Count of icons:            %d (with %s)\n",
		result.IconsGenerated, pluralizeCount(result.AliasesGenerated, "alias", "aliases"))
	fmt.Fprintf(r.w, "  Unique icons:              %d\n", result.UniqueIcons)
	fmt.Fprintf(r.w, "  Backward compatibility:    %d\n", result.CompatGenerated)
	if result.MalformedRecords > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow,
			fmt.Sprintf("  Malformed rules skipped:   %d", result.MalformedRecords), r.useColors))
	}
	if result.SyntaxErrors > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow,
			fmt.Sprintf("  CSS syntax errors:         %d", result.SyntaxErrors), r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
