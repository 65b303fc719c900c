package iconsty

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "iconsty"
	Text        string   `json:"Text"`        // "malformed codepoint \"\\\"zzzz\\\"\""
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Offending input
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "input/backward_cap.txt"
	Line     int    `json:"Line"`     // 12 (0 when the parser does not track lines)
}

// LinterName tags every issue produced by Check
const LinterName = "iconsty"

// CheckResult contains the issues and statistics of a dry run
type CheckResult struct {
	Issues       []Issue
	ErrorCount   int
	WarningCount int
	InfoCount    int
	Generate     GenerateResult // Statistics of the output that would be written
}

// addFindings converts stage findings into issues and tallies them
func (r *CheckResult) addFindings(findings []Finding) {
	for _, f := range findings {
		issue := Issue{
			FromLinter: LinterName,
			Text:       f.Text,
			Severity:   f.Severity,
			Pos:        IssuePos{Filename: f.Source, Line: f.Line},
		}
		if f.Snippet != "" {
			issue.SourceLines = []string{f.Snippet}
		}
		r.Issues = append(r.Issues, issue)

		switch f.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarningCount++
		default:
			r.InfoCount++
		}
	}
}
