package iconsty

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ErrUnknownParser is returned for an unsupported parser backend name
var ErrUnknownParser = errors.New("unknown stylesheet parser")

// StylesheetParser turns stylesheet source into ordered rules. Syntax errors
// the parser can step over are returned as findings.
type StylesheetParser interface {
	Parse(content []byte, source string) ([]StyleRule, []Finding, error)
}

// NewParser returns the parser backend selected by name
func NewParser(name string, log *zap.Logger) (StylesheetParser, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch name {
	case "", ParserTdewolff:
		return &GrammarParser{log: log.Named("parser")}, nil
	case ParserDouceur:
		return &DouceurParser{log: log.Named("parser")}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
}

// ParseFiles reads and parses every file in order, concatenating their rules
// and findings
func ParseFiles(p StylesheetParser, files []string) ([]StyleRule, []Finding, error) {
	var (
		rules    []StyleRule
		findings []Finding
	)
	for _, file := range files {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, nil, fmt.Errorf("read stylesheet: %w", err)
		}

		fileRules, fileFindings, err := p.Parse(content, file)
		if err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", file, err)
		}
		rules = append(rules, fileRules...)
		findings = append(findings, fileFindings...)
	}
	return rules, findings, nil
}

// GrammarParser is the default backend built on the tdewolff CSS grammar parser
type GrammarParser struct {
	log *zap.Logger
}

// Parse walks the grammar stream and yields one rule per ruleset, including
// rulesets nested in at-rule blocks such as @media. Declarations outside a
// ruleset (@font-face) are ignored.
//
// A ruleset containing a syntax error is dropped and reported; parsing
// resumes after its closing brace. Errors between rulesets are reported and
// stepped over.
func (p *GrammarParser) Parse(content []byte, source string) ([]StyleRule, []Finding, error) {
	p.log.Debug("Parsing CSS", zap.String("source", source), zap.Int("bytes", len(content)))

	var (
		rules    []StyleRule
		findings []Finding
	)
	for start := 0; start < len(content); {
		seg, err := p.parseSegment(content, start, source)
		if err != nil {
			return nil, nil, err
		}
		rules = append(rules, seg.rules...)
		findings = append(findings, seg.findings...)

		if seg.resume < 0 {
			break
		}
		start = seg.resume
	}
	return rules, findings, nil
}

// segment is the outcome of parsing content from one offset
type segment struct {
	rules    []StyleRule
	findings []Finding
	resume   int // Offset to restart parsing from, or -1 when done
}

// parseSegment parses content[start:] until the end of input or until a
// syntax error inside a ruleset, which leaves the grammar parser unable to
// tell where the ruleset ends.
func (p *GrammarParser) parseSegment(content []byte, start int, source string) (segment, error) {
	parser := css.NewParser(parse.NewInput(bytes.NewReader(content[start:])), false)

	var (
		seg       = segment{resume: -1}
		current   *StyleRule
		lastError = -1
	)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if !parser.HasParseError() {
				if err != nil && !errors.Is(err, io.EOF) {
					return seg, err
				}
				if current != nil {
					seg.rules = append(seg.rules, *current)
				}
				return seg, nil
			}

			if current == nil && parser.Offset() == lastError {
				// Same error again: the parser is not advancing
				return seg, nil
			}
			lastError = parser.Offset()

			offset := start + errorOffset(content[start:], err, parser.Offset())
			seg.findings = append(seg.findings, p.syntaxError(content, offset, source, err))

			if current != nil {
				// The broken ruleset is dropped along with its value
				closing := bytes.IndexByte(content[offset:], '}')
				if closing < 0 {
					return seg, nil
				}
				seg.resume = offset + closing + 1
				return seg, nil
			}

		case css.BeginRulesetGrammar:
			current = &StyleRule{
				Selectors: splitSelectors(parser.Values()),
				Source:    source,
				Line:      lineAt(content, start+parser.Offset()),
			}

		case css.DeclarationGrammar:
			if current != nil && current.Value == "" {
				current.Value = joinTokens(parser.Values())
				p.log.Debug("Declaration",
					zap.String("property", string(data)),
					zap.String("value", current.Value))
			}

		case css.EndRulesetGrammar:
			if current != nil {
				seg.rules = append(seg.rules, *current)
				current = nil
			}
		}
	}
}

// syntaxError logs a parse error and turns it into a finding
func (p *GrammarParser) syntaxError(content []byte, offset int, source string, err error) Finding {
	line := lineAt(content, offset)
	msg := err.Error()
	var perr *parse.Error
	if errors.As(err, &perr) {
		msg = perr.Message
	}

	p.log.Warn("CSS syntax error, skipping",
		zap.String("source", source),
		zap.Int("line", line),
		zap.String("error", msg))

	return Finding{
		Severity: SeverityWarning,
		Source:   source,
		Line:     line,
		Text:     "stylesheet syntax error: " + msg,
		Snippet:  strings.TrimSpace(lineText(content, line)),
	}
}

// errorOffset converts the line and column of a parse error into a byte
// offset in content. fallback is used when err carries no position.
func errorOffset(content []byte, err error, fallback int) int {
	var perr *parse.Error
	if !errors.As(err, &perr) || perr.Line < 1 {
		return min(fallback, len(content))
	}

	offset := 0
	for line := 1; line < perr.Line; line++ {
		i := bytes.IndexByte(content[offset:], '\n')
		if i < 0 {
			return len(content)
		}
		offset += i + 1
	}
	for col := 1; col < perr.Column && offset < len(content); col++ {
		_, size := utf8.DecodeRune(content[offset:])
		offset += size
	}
	return offset
}

// splitSelectors splits ruleset prelude tokens into comma-separated selectors
func splitSelectors(tokens []css.Token) []string {
	var selectors []string
	var sb strings.Builder

	flush := func() {
		if s := strings.TrimSpace(sb.String()); s != "" {
			selectors = append(selectors, s)
		}
		sb.Reset()
	}

	for _, t := range tokens {
		if t.TokenType == css.CommaToken {
			flush()
			continue
		}
		sb.Write(t.Data)
	}
	flush()

	return selectors
}

// joinTokens rebuilds the textual form of a declaration value
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// lineAt returns the 1-based line number of the byte offset in content
func lineAt(content []byte, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return bytes.Count(content[:offset], []byte("\n")) + 1
}

// SelectorClasses returns the class names used in a selector, in order:
// ".fa-glass:before" → ["fa-glass"], ".fa.fa-lg" → ["fa", "fa-lg"]
func SelectorClasses(selector string) []string {
	lexer := css.NewLexer(parse.NewInputString(selector))

	var classes []string
	afterDot := false
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		if tt == css.IdentToken && afterDot {
			classes = append(classes, string(text))
		}
		afterDot = tt == css.DelimToken && len(text) > 0 && text[0] == '.'
	}

	return classes
}

// lineText returns the 1-based line of content without its newline
func lineText(content []byte, line int) string {
	lines := bytes.SplitN(content, []byte("\n"), line+1)
	if line < 1 || line > len(lines) {
		return ""
	}
	return string(lines[line-1])
}
