package iconsty

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Finding severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Finding is a non-fatal problem noticed while building icon records
type Finding struct {
	Severity string
	Source   string
	Line     int
	Text     string
	Snippet  string // Offending input
}

// IconSet maps codepoints to icon groups, keeping first-seen order
type IconSet struct {
	groups   map[Codepoint]*IconGroup
	order    []Codepoint
	shorts   map[string]Codepoint
	Findings []Finding

	RulesParsed       int
	MalformedRecords  int
	EmptyRules        int
	DuplicatesDropped int
}

// BuildIconSet normalizes every rule and groups icon names by codepoint.
//
// The first rule seen for a codepoint wins: its first icon is the primary and
// the rest are aliases. Later rules for the same codepoint are dropped whole.
// Rules with a malformed value, or without any icon selector, are skipped and
// do not claim their codepoint.
func BuildIconSet(rules []StyleRule, namer Namer, log *zap.Logger) *IconSet {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("grouping")

	set := &IconSet{
		groups: make(map[Codepoint]*IconGroup),
		shorts: make(map[string]Codepoint),
	}

	for _, rule := range rules {
		set.RulesParsed++

		cp, ok := NormalizeCodepoint(rule.Value)
		if !ok {
			set.MalformedRecords++
			log.Warn("Wrong hex value in CSS, ignoring this icon",
				zap.String("value", rule.Value),
				zap.String("source", rule.Source),
				zap.Int("line", rule.Line))
			set.Findings = append(set.Findings, Finding{
				Severity: SeverityWarning,
				Source:   rule.Source,
				Line:     rule.Line,
				Text:     fmt.Sprintf("malformed codepoint %q", rule.Value),
				Snippet:  rule.Value,
			})
			continue
		}

		icons := ruleIcons(rule, namer)
		if len(icons) == 0 {
			set.EmptyRules++
			log.Debug("Rule has no icon selectors",
				zap.Strings("selectors", rule.Selectors),
				zap.String("codepoint", string(cp)))
			set.Findings = append(set.Findings, Finding{
				Severity: SeverityWarning,
				Source:   rule.Source,
				Line:     rule.Line,
				Text:     fmt.Sprintf("rule for %s has no %q selector", cp.Hex(), namer.SelectorPrefix),
			})
			continue
		}

		if first, exists := set.groups[cp]; exists {
			set.DuplicatesDropped++
			log.Debug("Duplicate codepoint dropped",
				zap.String("codepoint", string(cp)),
				zap.String("primary", first.Primary().Short))
			set.Findings = append(set.Findings, Finding{
				Severity: SeverityInfo,
				Source:   rule.Source,
				Line:     rule.Line,
				Text: fmt.Sprintf("codepoint %s already defined by %q, rule ignored",
					cp.Hex(), first.Primary().Short),
			})
			continue
		}

		set.groups[cp] = &IconGroup{
			Codepoint: cp,
			Names:     icons,
			Source:    rule.Source,
			Line:      rule.Line,
		}
		set.order = append(set.order, cp)
		for _, icon := range icons {
			if _, seen := set.shorts[icon.Short]; !seen {
				set.shorts[icon.Short] = cp
			}
		}
	}

	return set
}

// ruleIcons returns the icon names of every prefixed class in the rule,
// without repeats
func ruleIcons(rule StyleRule, namer Namer) []IconName {
	var icons []IconName
	seen := make(map[string]bool)

	for _, sel := range rule.Selectors {
		for _, class := range SelectorClasses(sel) {
			if !namer.HasPrefix(class) || seen[class] {
				continue
			}
			seen[class] = true
			icons = append(icons, namer.Normalize(class))
		}
	}

	return icons
}

// Len returns the number of icon groups
func (s *IconSet) Len() int {
	return len(s.order)
}

// Groups returns the icon groups in the requested order
func (s *IconSet) Groups(order RenderOrder) []IconGroup {
	keys := make([]Codepoint, len(s.order))
	copy(keys, s.order)

	if order != OrderSource {
		sort.SliceStable(keys, func(i, j int) bool {
			return keys[i].Less(keys[j])
		})
	}

	groups := make([]IconGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, *s.groups[k])
	}
	return groups
}

// Lookup returns the group whose names include short
func (s *IconSet) Lookup(short string) (IconGroup, bool) {
	cp, ok := s.shorts[short]
	if !ok {
		return IconGroup{}, false
	}
	return *s.groups[cp], true
}

// Codepoint returns the group bound to cp
func (s *IconSet) Codepoint(cp Codepoint) (IconGroup, bool) {
	g, ok := s.groups[cp]
	if !ok {
		return IconGroup{}, false
	}
	return *g, true
}
