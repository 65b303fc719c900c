package iconsty

import (
	douceur "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"go.uber.org/zap"
)

// DouceurParser is the alternative backend built on the douceur stylesheet parser.
// Douceur does not track positions, so rules carry no line number.
//
// Douceur is stricter than the default backend: it rejects some valid CSS,
// such as empty declarations (`.x { color: red; ; }`), and stops at the first
// syntax error, which fails the run.
type DouceurParser struct {
	log *zap.Logger
}

// Parse parses the stylesheet and flattens qualified rules, descending into
// at-rules that embed rules (@media, @supports).
func (p *DouceurParser) Parse(content []byte, source string) ([]StyleRule, []Finding, error) {
	p.log.Debug("Parsing CSS", zap.String("source", source), zap.Int("bytes", len(content)))

	sheet, err := parser.Parse(string(content))
	if err != nil {
		return nil, nil, err
	}

	var rules []StyleRule
	p.collect(sheet.Rules, source, &rules)
	return rules, nil, nil
}

func (p *DouceurParser) collect(in []*douceur.Rule, source string, out *[]StyleRule) {
	for _, r := range in {
		if r.Kind == douceur.AtRule {
			if r.EmbedsRules() {
				p.collect(r.Rules, source, out)
			} else {
				p.log.Debug("Skipping @-rule", zap.String("rule", r.Name))
			}
			continue
		}

		rule := StyleRule{Source: source}
		for _, sel := range r.Selectors {
			if sel != "" {
				rule.Selectors = append(rule.Selectors, sel)
			}
		}
		if len(r.Declarations) > 0 {
			rule.Value = r.Declarations[0].Value
		}
		*out = append(*out, rule)
	}
}
