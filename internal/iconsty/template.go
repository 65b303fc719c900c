package iconsty

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"
	"text/template/parse"

	sprig "github.com/go-task/slim-sprig/v3"
)

// ErrMissingPlaceholder is returned when a template lacks a required placeholder
var ErrMissingPlaceholder = errors.New("template is missing placeholder")

// TemplateValues are the variables available for template expansion
type TemplateValues struct {
	Date          string // Generation date
	Machine       string // Host descriptor
	GitInfo       string // Version-control descriptor
	Icons         string // Primary block
	Aliases       string // Alias block
	CompatAliases string // Compatibility block
}

// Placeholders lists the keys every template must reference
var Placeholders = []string{"Date", "Machine", "GitInfo", "Icons", "Aliases", "CompatAliases"}

// Compositor substitutes rendered blocks and metadata into a template
type Compositor struct {
	tmpl *template.Template
}

// LoadTemplate reads and compiles the template file
func LoadTemplate(path, leftDelim, rightDelim string) (*Compositor, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return NewCompositor(string(content), path, leftDelim, rightDelim)
}

// NewCompositor compiles template text and checks that every placeholder
// is referenced
func NewCompositor(text, name, leftDelim, rightDelim string) (*Compositor, error) {
	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	used := make(map[string]bool)
	for _, t := range tmpl.Templates() {
		if t.Tree != nil {
			collectFields(t.Tree.Root, used)
		}
	}

	var missing []string
	for _, p := range Placeholders {
		if !used[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingPlaceholder, strings.Join(missing, ", "))
	}

	return &Compositor{tmpl: tmpl}, nil
}

// Compose expands the template with values
func (c *Compositor) Compose(values TemplateValues) (string, error) {
	var sb strings.Builder
	if err := c.tmpl.Execute(&sb, values); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return sb.String(), nil
}

// collectFields records the top-level field names referenced under node
func collectFields(node parse.Node, used map[string]bool) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			collectFields(child, used)
		}
	case *parse.ActionNode:
		collectFields(n.Pipe, used)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			collectFields(cmd, used)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			collectFields(arg, used)
		}
	case *parse.FieldNode:
		if len(n.Ident) > 0 {
			used[n.Ident[0]] = true
		}
	case *parse.VariableNode:
		// $.Date reaches the root value through the $ variable
		if len(n.Ident) > 1 && n.Ident[0] == "$" {
			used[n.Ident[1]] = true
		}
	case *parse.ChainNode:
		collectFields(n.Node, used)
	case *parse.IfNode:
		collectBranch(&n.BranchNode, used)
	case *parse.RangeNode:
		collectBranch(&n.BranchNode, used)
	case *parse.WithNode:
		collectBranch(&n.BranchNode, used)
	case *parse.TemplateNode:
		collectFields(n.Pipe, used)
	}
}

func collectBranch(b *parse.BranchNode, used map[string]bool) {
	collectFields(b.Pipe, used)
	collectFields(b.List, used)
	collectFields(b.ElseList, used)
}
