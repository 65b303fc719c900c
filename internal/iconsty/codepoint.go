package iconsty

import (
	"regexp"
	"strconv"
	"strings"
)

// codepointPattern matches an escaped private-use codepoint such as \f000 or \F0A3
var codepointPattern = regexp.MustCompile(`\\([fF][0-9a-fA-F]{3,})`)

// NormalizeCodepoint extracts the escaped hex codepoint from a raw CSS value
// and returns it in character-code form (`"F000`). The second result is false
// when the value contains no escaped codepoint.
func NormalizeCodepoint(raw string) (Codepoint, bool) {
	m := codepointPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return Codepoint(`"` + strings.ToUpper(m[1])), true
}

// Hex returns the hex digits without the character-code marker
func (c Codepoint) Hex() string {
	return strings.TrimPrefix(string(c), `"`)
}

// Value returns the numeric codepoint, or 0 if c is not well formed
func (c Codepoint) Value() uint64 {
	v, err := strconv.ParseUint(c.Hex(), 16, 32)
	if err != nil {
		return 0
	}
	return v
}

// Less orders codepoints by numeric value
func (c Codepoint) Less(other Codepoint) bool {
	if a, b := c.Value(), other.Value(); a != b {
		return a < b
	}
	return c < other
}
