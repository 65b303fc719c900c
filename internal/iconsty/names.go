package iconsty

import (
	"strings"
	"unicode"
)

// Namer derives icon identifiers from stylesheet selector names
type Namer struct {
	SelectorPrefix string // "fa-"
	MacroPrefix    string // `\fa`
}

// NewNamer creates a namer from the run configuration
func NewNamer(config Config) Namer {
	config = config.withDefaults()
	return Namer{
		SelectorPrefix: config.SelectorPrefix,
		MacroPrefix:    config.MacroPrefix,
	}
}

// Normalize converts a selector name into its short and macro names:
// "fa-search-plus" → ("search-plus", `\faSearchPlus`).
//
// The selector prefix is matched case-insensitively. A name without the
// prefix is used as the short name verbatim.
func (n Namer) Normalize(name string) IconName {
	short := name
	if n.HasPrefix(name) {
		short = name[len(n.SelectorPrefix):]
	}

	var macro strings.Builder
	macro.WriteString(n.MacroPrefix)
	for _, segment := range strings.Split(short, "-") {
		macro.WriteString(titleCase(segment))
	}

	return IconName{Short: short, Macro: macro.String()}
}

// HasPrefix reports whether name starts with the selector prefix, ignoring case
func (n Namer) HasPrefix(name string) bool {
	return len(name) >= len(n.SelectorPrefix) &&
		strings.EqualFold(name[:len(n.SelectorPrefix)], n.SelectorPrefix)
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest: "plus" → "Plus", "500px" → "500Px", "o" → "O"
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}

	return b.String()
}
