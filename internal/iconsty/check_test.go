package iconsty

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	config := testConfig(t)
	config.Runner = &fakeRunner{outputs: map[string]string{}}

	result, err := Check(config, nil)
	require.NoError(t, err, "check never runs the metadata commands")

	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 4, result.WarningCount)
	assert.Equal(t, 0, result.InfoCount)
	assert.Len(t, result.Issues, 5)
	assert.Equal(t, 17, result.Generate.IconsGenerated)

	var unresolved *Issue
	for i := range result.Issues {
		if result.Issues[i].Severity == SeverityError {
			unresolved = &result.Issues[i]
		}
	}
	require.NotNil(t, unresolved)
	assert.Equal(t, LinterName, unresolved.FromLinter)
	assert.Equal(t, "testdata/backward_cap.txt", unresolved.Pos.Filename)
	assert.Equal(t, 5, unresolved.Pos.Line)
	assert.Contains(t, unresolved.Text, `"nowhere"`)
	assert.Equal(t, []string{"* `gone` -> `nowhere`."}, unresolved.SourceLines)
}

func TestCheckReportsSyntaxErrors(t *testing.T) {
	css := filepath.Join(t.TempDir(), "broken.css")
	require.NoError(t, os.WriteFile(css, []byte(`.fa-glass:before { content: "\f000"; }
.fa-bad:before { content: "\f003"; ]] }
.fa-music:before { content: "\f001"; }
`), 0o644))

	config := testConfig(t)
	config.Stylesheets = []string{css}

	result, err := Check(config, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generate.SyntaxErrors)
	assert.Equal(t, 2, result.Generate.UniqueIcons, "rules after the broken one survive")

	var syntax []Issue
	for _, issue := range result.Issues {
		if issue.Pos.Filename == css {
			syntax = append(syntax, issue)
		}
	}
	require.Len(t, syntax, 1)
	assert.Equal(t, SeverityWarning, syntax[0].Severity)
	assert.Equal(t, 2, syntax[0].Pos.Line)
	assert.Contains(t, syntax[0].Text, "stylesheet syntax error")

	var buf bytes.Buffer
	NewReporter(&buf, false).PrintCheckSummary(*result)
	assert.Contains(t, buf.String(), "CSS syntax errors:         1")
}

func TestCheckFatal(t *testing.T) {
	config := testConfig(t)
	config.TemplateFile = "testdata/missing.sty"

	_, err := Check(config, nil)
	require.Error(t, err)
}

func TestReporterPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.PrintIssues([]Issue{
		{FromLinter: LinterName, Text: "second", Severity: SeverityWarning, Pos: IssuePos{Filename: "b.css", Line: 3}},
		{FromLinter: LinterName, Text: "first", Severity: SeverityError, Pos: IssuePos{Filename: "a.txt", Line: 7},
			SourceLines: []string{"* `gone` -> `nowhere`."}},
		{FromLinter: LinterName, Text: "no line", Pos: IssuePos{Filename: "c.css"}},
	})

	assert.Equal(t, "a.txt:7: error: first (iconsty)\n"+
		"\t* `gone` -> `nowhere`.\n"+
		"b.css:3: warning: second (iconsty)\n"+
		"c.css: no line (iconsty)\n", buf.String())
}

func TestReporterSummaries(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.PrintCheckSummary(CheckResult{
		Issues:       make([]Issue, 3),
		ErrorCount:   1,
		WarningCount: 2,
		Generate:     GenerateResult{IconsGenerated: 17, AliasesGenerated: 3, UniqueIcons: 14, CompatGenerated: 3, MalformedRecords: 2},
	})
	out := buf.String()
	assert.Contains(t, out, "3 issues (1 error, 2 warnings):")
	assert.Contains(t, out, "Count of icons:            17 (with 3 aliases)")
	assert.Contains(t, out, "Malformed rules skipped:   2")

	buf.Reset()
	r.PrintGenerateSummary(GenerateResult{
		OutputFile:       "output/fontawesome.sty",
		IconsGenerated:   2,
		AliasesGenerated: 1,
		UniqueIcons:      1,
		Metadata:         Metadata{Date: "2014-06-21 18:04", GitInfo: "v4.1.0"},
	})
	out = buf.String()
	assert.Contains(t, out, "Generated output/fontawesome.sty")
	assert.Contains(t, out, "(with 1 alias)")
	assert.Contains(t, out, "v4.1.0, 2014-06-21 18:04")
	assert.NotContains(t, out, "Malformed")
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
}
