package iconsty

import (
	"context"
	"time"
)

// StyleRule is one parsed ruleset from a stylesheet
type StyleRule struct {
	Selectors []string // ".fa-glass:before", ".fa-search-plus:before"
	Value     string   // First declared value as written: "\"\\f000\""
	Source    string   // File the rule came from
	Line      int      // 1-based line of the ruleset's opening brace
}

// Codepoint is the canonical character code of a glyph: `"F000`
type Codepoint string

// IconName is the pair of identifiers derived from one selector
type IconName struct {
	Short string // "search-plus" (low-level csname)
	Macro string // "\faSearchPlus" (public macro)
}

// IconGroup binds one codepoint to its names. Names[0] is the primary,
// Names[1:] are aliases of it.
type IconGroup struct {
	Codepoint Codepoint
	Names     []IconName
	Source    string
	Line      int
}

// Primary returns the canonical name of the glyph
func (g IconGroup) Primary() IconName {
	return g.Names[0]
}

// Aliases returns every non-primary name of the glyph
func (g IconGroup) Aliases() []IconName {
	return g.Names[1:]
}

// CompatibilityAlias maps a retired icon name forward to its replacement
type CompatibilityAlias struct {
	Old     IconName
	New     IconName
	Comment string // Trailing directive text without terminal punctuation
	Line    int
}

// RenderOrder selects how icon groups are ordered in the rendered blocks
type RenderOrder string

const (
	// OrderCodepoint renders groups by ascending codepoint value
	OrderCodepoint RenderOrder = "codepoint"
	// OrderSource renders groups in first-seen stylesheet order
	OrderSource RenderOrder = "source"
)

// Parser backends
const (
	// ParserTdewolff tolerates syntax errors, dropping only the broken ruleset
	ParserTdewolff = "tdewolff"
	// ParserDouceur rejects some valid CSS (empty declarations) and fails on
	// the first syntax error
	ParserDouceur = "douceur"
)

// Config holds everything a single generation run needs
type Config struct {
	Stylesheets    []string    // Glob patterns: ["input/fontawesome_reduced.css"]
	CompatFile     string      // "input/backward_cap.txt"
	TemplateFile   string      // "input/template.sty"
	OutputFile     string      // "output/fontawesome.sty"
	Parser         string      // "tdewolff" (default) or "douceur"
	Order          RenderOrder // "codepoint" (default) or "source"
	GroupSize      int         // Blank line after every N statements (default: 10)
	SelectorPrefix string      // "fa-"
	MacroPrefix    string      // `\fa`
	CSNamePrefix   string      // "faicon@"
	FontCommand    string      // `\FA`
	LeftDelim      string      // "<<"
	RightDelim     string      // ">>"
	StrictCompat   bool        // Drop compatibility records whose target is undefined
	VCSCommand     []string    // ["git", "describe", "--long", "--dirty", "--tags"]
	HostCommand    []string    // ["uname", "-a"]
	DateLayout     string      // "2006-01-02 15:04"
	Verbose        bool

	// Clock and Runner replace the wall clock and the process runner, mainly in tests
	Clock  func() time.Time
	Runner CommandRunner
}

// CommandRunner executes an external command and returns its standard output
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// DefaultConfig returns the configuration matching the Font Awesome 4 layout
func DefaultConfig() Config {
	return Config{
		Stylesheets:    []string{"input/fontawesome_reduced.css"},
		CompatFile:     "input/backward_cap.txt",
		TemplateFile:   "input/template.sty",
		OutputFile:     "output/fontawesome.sty",
		Parser:         ParserTdewolff,
		Order:          OrderCodepoint,
		GroupSize:      10,
		SelectorPrefix: "fa-",
		MacroPrefix:    `\fa`,
		CSNamePrefix:   "faicon@",
		FontCommand:    `\FA`,
		LeftDelim:      "<<",
		RightDelim:     ">>",
		VCSCommand:     []string{"git", "describe", "--long", "--dirty", "--tags"},
		HostCommand:    []string{"uname", "-a"},
		DateLayout:     "2006-01-02 15:04",
	}
}

// withDefaults fills zero-valued fields from DefaultConfig
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Parser == "" {
		c.Parser = d.Parser
	}
	if c.Order == "" {
		c.Order = d.Order
	}
	if c.GroupSize <= 0 {
		c.GroupSize = d.GroupSize
	}
	if c.SelectorPrefix == "" {
		c.SelectorPrefix = d.SelectorPrefix
	}
	if c.MacroPrefix == "" {
		c.MacroPrefix = d.MacroPrefix
	}
	if c.CSNamePrefix == "" {
		c.CSNamePrefix = d.CSNamePrefix
	}
	if c.FontCommand == "" {
		c.FontCommand = d.FontCommand
	}
	if c.LeftDelim == "" || c.RightDelim == "" {
		c.LeftDelim, c.RightDelim = d.LeftDelim, d.RightDelim
	}
	if len(c.VCSCommand) == 0 {
		c.VCSCommand = d.VCSCommand
	}
	if len(c.HostCommand) == 0 {
		c.HostCommand = d.HostCommand
	}
	if c.DateLayout == "" {
		c.DateLayout = d.DateLayout
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Runner == nil {
		c.Runner = ExecRunner{}
	}
	return c
}

// GenerateResult contains generation stats
type GenerateResult struct {
	OutputFile        string
	FilesParsed       int
	RulesParsed       int
	IconsGenerated    int // Primaries plus aliases
	UniqueIcons       int // Primaries only
	AliasesGenerated  int
	CompatGenerated   int
	MalformedRecords  int
	SyntaxErrors      int // Stylesheet syntax errors stepped over
	DuplicatesDropped int
	Metadata          Metadata
}
