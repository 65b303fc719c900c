package iconsty

import (
	"encoding/json"
	"io"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version string      `json:"version"`
	Summary JSONSummary `json:"summary"`
	Stats   JSONStats   `json:"stats"`
	Issues  []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Infos       int `json:"infos"`
}

// JSONStats contains the record counts a generation run would produce
type JSONStats struct {
	FilesParsed       int `json:"files_parsed"`
	RulesParsed       int `json:"rules_parsed"`
	Icons             int `json:"icons"`
	UniqueIcons       int `json:"unique_icons"`
	Aliases           int `json:"aliases"`
	CompatAliases     int `json:"compat_aliases"`
	MalformedRecords  int `json:"malformed_records"`
	SyntaxErrors      int `json:"syntax_errors"`
	DuplicatesDropped int `json:"duplicates_dropped"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Offending input
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		severity := issue.Severity
		if severity == SeverityInfo {
			severity = "info"
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Severity: severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	gen := result.Generate
	return JSONOutput{
		Version: "1.0",
		Summary: JSONSummary{
			TotalIssues: len(result.Issues),
			Errors:      result.ErrorCount,
			Warnings:    result.WarningCount,
			Infos:       result.InfoCount,
		},
		Stats: JSONStats{
			FilesParsed:       gen.FilesParsed,
			RulesParsed:       gen.RulesParsed,
			Icons:             gen.IconsGenerated,
			UniqueIcons:       gen.UniqueIcons,
			Aliases:           gen.AliasesGenerated,
			CompatAliases:     gen.CompatGenerated,
			MalformedRecords:  gen.MalformedRecords,
			SyntaxErrors:      gen.SyntaxErrors,
			DuplicatesDropped: gen.DuplicatesDropped,
		},
		Issues: issues,
	}
}
