package iconsty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParsers(t *testing.T) {
	for _, backend := range []string{ParserTdewolff, ParserDouceur} {
		t.Run(backend, func(t *testing.T) {
			p, err := NewParser(backend, nil)
			require.NoError(t, err)

			tests := []struct {
				name      string
				css       string
				selectors [][]string
				values    []string
			}{
				{
					name:      "single rule",
					css:       `.fa-glass:before { content: "\f000"; }`,
					selectors: [][]string{{".fa-glass:before"}},
					values:    []string{`"\f000"`},
				},
				{
					name: "selector list",
					css: `.fa-remove:before,
.fa-close:before,
.fa-times:before {
  content: "\f00d";
}`,
					selectors: [][]string{{".fa-remove:before", ".fa-close:before", ".fa-times:before"}},
					values:    []string{`"\f00d"`},
				},
				{
					name:      "first declaration wins",
					css:       `.fa-music:before { content: "\f001"; color: red; }`,
					selectors: [][]string{{".fa-music:before"}},
					values:    []string{`"\f001"`},
				},
				{
					name: "font-face ignored",
					css: `@font-face { font-family: 'FontAwesome'; src: url('font.eot'); }
.fa-search:before { content: "\f002"; }`,
					selectors: [][]string{{".fa-search:before"}},
					values:    []string{`"\f002"`},
				},
				{
					name: "rules nested in media",
					css: `@media print {
  .fa-print:before { content: "\f02f"; }
}
.fa-tag:before { content: "\f02b"; }`,
					selectors: [][]string{{".fa-print:before"}, {".fa-tag:before"}},
					values:    []string{`"\f02f"`, `"\f02b"`},
				},
				{
					name:      "empty stylesheet",
					css:       ``,
					selectors: nil,
					values:    nil,
				},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					rules, findings, err := p.Parse([]byte(tt.css), "test.css")
					require.NoError(t, err)
					assert.Empty(t, findings)
					require.Len(t, rules, len(tt.selectors))

					for i, rule := range rules {
						assert.Equal(t, tt.selectors[i], rule.Selectors)
						assert.Equal(t, tt.values[i], rule.Value)
						assert.Equal(t, "test.css", rule.Source)
					}
				})
			}
		})
	}
}

func TestGrammarParserLines(t *testing.T) {
	css := `.fa-glass:before {
  content: "\f000";
}

.fa-music:before {
  content: "\f001";
}`
	p, err := NewParser(ParserTdewolff, nil)
	require.NoError(t, err)

	rules, _, err := p.Parse([]byte(css), "test.css")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, 1, rules[0].Line)
	assert.Equal(t, 5, rules[1].Line)
}

func TestGrammarParserSyntaxErrors(t *testing.T) {
	tests := []struct {
		name      string
		css       string
		selectors []string
		line      int
	}{
		{
			name: "unbalanced brackets drop only their ruleset",
			css: `.fa-glass:before { content: "\f000"; }
.fa-bad:before { content: "\f003"; ]] }
.fa-music:before { content: "\f001"; }`,
			selectors: []string{".fa-glass:before", ".fa-music:before"},
			line:      2,
		},
		{
			name: "stray closing brace between rulesets",
			css: `.fa-glass:before { content: "\f000"; }
}
.fa-music:before { content: "\f001"; }`,
			selectors: []string{".fa-glass:before", ".fa-music:before"},
			line:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			p, err := NewParser(ParserTdewolff, zap.New(core))
			require.NoError(t, err)

			rules, findings, err := p.Parse([]byte(tt.css), "test.css")
			require.NoError(t, err)

			var got []string
			for _, r := range rules {
				got = append(got, r.Selectors...)
			}
			assert.Equal(t, tt.selectors, got)

			require.NotEmpty(t, findings)
			assert.Equal(t, SeverityWarning, findings[0].Severity)
			assert.Equal(t, "test.css", findings[0].Source)
			assert.Equal(t, tt.line, findings[0].Line)
			assert.Contains(t, findings[0].Text, "stylesheet syntax error")

			assert.NotZero(t, logs.FilterMessage("CSS syntax error, skipping").Len())
		})
	}
}

func TestGrammarParserLinesAfterSyntaxError(t *testing.T) {
	css := `.fa-bad:before { content: "\f003"; ]] }

.fa-music:before {
  content: "\f001";
}`
	p, err := NewParser(ParserTdewolff, nil)
	require.NoError(t, err)

	rules, findings, err := p.Parse([]byte(css), "test.css")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 3, rules[0].Line)
	assert.Equal(t, `"\f001"`, rules[0].Value)
	require.Len(t, findings, 1)
	assert.Equal(t, `.fa-bad:before { content: "\f003"; ]] }`, findings[0].Snippet)
}

func TestDouceurRejectsEmptyDeclarations(t *testing.T) {
	p, err := NewParser(ParserDouceur, nil)
	require.NoError(t, err)

	_, _, err = p.Parse([]byte(`.x { color: red; ; }`), "test.css")
	require.Error(t, err)
}

func TestNewParserUnknown(t *testing.T) {
	_, err := NewParser("sass", nil)
	require.ErrorIs(t, err, ErrUnknownParser)
}

func TestParseFiles(t *testing.T) {
	p, err := NewParser("", nil)
	require.NoError(t, err)

	rules, findings, err := ParseFiles(p, []string{"testdata/icons.css"})
	require.NoError(t, err)
	require.Len(t, rules, 16)
	assert.Empty(t, findings)

	assert.Equal(t, []string{".fa"}, rules[0].Selectors)
	assert.Equal(t, []string{".fa-glass:before"}, rules[1].Selectors)
	assert.Equal(t, 13, rules[1].Line)

	_, _, err = ParseFiles(p, []string{"testdata/missing.css"})
	require.Error(t, err)
}

func TestSelectorClasses(t *testing.T) {
	tests := []struct {
		selector string
		expected []string
	}{
		{".fa-glass:before", []string{"fa-glass"}},
		{".fa.fa-lg", []string{"fa", "fa-lg"}},
		{"i.fa-search-plus::before", []string{"fa-search-plus"}},
		{".fa-500px:before", []string{"fa-500px"}},
		{"#main > .fa-star", []string{"fa-star"}},
		{"div", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectorClasses(tt.selector))
		})
	}
}
