package iconsty

import (
	"fmt"
	"strings"
)

// Renderer serializes icon records into macro-definition statements
type Renderer struct {
	csnamePrefix string
	fontCommand  string
	groupSize    int
}

// NewRenderer creates a renderer from the run configuration
func NewRenderer(config Config) *Renderer {
	config = config.withDefaults()
	return &Renderer{
		csnamePrefix: config.CSNamePrefix,
		fontCommand:  config.FontCommand,
		groupSize:    config.GroupSize,
	}
}

// Blocks holds the three rendered statement blocks
type Blocks struct {
	Icons         string
	Aliases       string
	CompatAliases string

	IconCount   int
	AliasCount  int
	CompatCount int
}

// Render produces all three blocks
func (r *Renderer) Render(groups []IconGroup, compat []CompatibilityAlias) Blocks {
	var b Blocks
	b.Icons, b.IconCount = r.RenderIcons(groups)
	b.Aliases, b.AliasCount = r.RenderAliases(groups)
	b.CompatAliases, b.CompatCount = r.RenderCompat(compat)
	return b
}

// RenderIcons writes one statement per group primary. Groups with aliases
// get a trailing comment listing the alias macros.
func (r *Renderer) RenderIcons(groups []IconGroup) (string, int) {
	w := newBlockWriter(r.groupSize)
	for _, g := range groups {
		if len(g.Names) == 0 {
			continue
		}
		stmt := r.iconStatement(g.Primary(), g.Codepoint)

		if aliases := g.Aliases(); len(aliases) > 0 {
			macros := make([]string, 0, len(aliases))
			for _, a := range aliases {
				macros = append(macros, a.Macro)
			}
			stmt += " % has aliases: " + strings.Join(macros, ", ")
		}
		w.write(stmt)
	}
	return w.String(), w.count
}

// RenderAliases writes one statement per non-primary name of every group
func (r *Renderer) RenderAliases(groups []IconGroup) (string, int) {
	w := newBlockWriter(r.groupSize)
	for _, g := range groups {
		if len(g.Names) == 0 {
			continue
		}
		primary := g.Primary()
		for _, alias := range g.Aliases() {
			w.write(r.aliasStatement(alias, primary))
		}
	}
	return w.String(), w.count
}

// RenderCompat writes one alias statement per compatibility record, pointing
// the old name at the new name's macro
func (r *Renderer) RenderCompat(compat []CompatibilityAlias) (string, int) {
	w := newBlockWriter(r.groupSize)
	for _, c := range compat {
		stmt := r.aliasStatement(c.Old, c.New)
		if c.Comment != "" {
			stmt += " % " + c.Comment
		}
		w.write(stmt)
	}
	return w.String(), w.count
}

// iconStatement binds the low-level csname to the glyph and the public macro
// to the csname under the font switch
func (r *Renderer) iconStatement(icon IconName, cp Codepoint) string {
	return fmt.Sprintf(`\expandafter\def\csname %[1]s%[2]s\endcsname {\symbol{%[3]s}} \def%[4]s {{%[5]s\csname %[1]s%[2]s\endcsname}}`,
		r.csnamePrefix, icon.Short, cp, icon.Macro, r.fontCommand)
}

// aliasStatement binds the alias csname and macro to the primary's macro
func (r *Renderer) aliasStatement(alias, primary IconName) string {
	return fmt.Sprintf(`\expandafter\def\csname %s%s\endcsname {%s} \def%s {%s}`,
		r.csnamePrefix, alias.Short, primary.Macro, alias.Macro, primary.Macro)
}

// blockWriter joins statements, each on its own line, with a blank line
// after every size-th statement
type blockWriter struct {
	sb    strings.Builder
	size  int
	count int
}

func newBlockWriter(size int) *blockWriter {
	return &blockWriter{size: size}
}

func (w *blockWriter) write(stmt string) {
	w.sb.WriteString("\n")
	w.sb.WriteString(stmt)
	w.count++
	if w.size > 0 && w.count%w.size == 0 {
		w.sb.WriteString("\n")
	}
}

func (w *blockWriter) String() string {
	return w.sb.String()
}
