package iconsty

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// compatPattern matches a rename directive:
//
//	* `bar-chart` -> `bar-chart-o` (renamed for clarity).
var compatPattern = regexp.MustCompile("\\*\\s+`(\\S+)`\\s+->\\s+`(\\S+)`(.*)[,.](\\s+)?")

// CompatSet is the result of loading a backward-compatibility file
type CompatSet struct {
	Aliases  []CompatibilityAlias
	Findings []Finding
	Skipped  int // Lines that are not directives
	Dropped  int // Directives rejected by strict target validation
}

// CompatLoader reads rename directives and maps old names to new ones
type CompatLoader struct {
	namer  Namer
	icons  *IconSet // Known stylesheet icons, used to validate targets
	strict bool
	log    *zap.Logger
}

// NewCompatLoader creates a loader. icons may be nil, in which case targets
// are never validated.
func NewCompatLoader(namer Namer, icons *IconSet, strict bool, log *zap.Logger) *CompatLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &CompatLoader{
		namer:  namer,
		icons:  icons,
		strict: strict,
		log:    log.Named("compat"),
	}
}

// LoadFile opens path and loads its directives
func (l *CompatLoader) LoadFile(path string) (*CompatSet, error) {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open compatibility file: %w", err)
	}
	defer f.Close()

	set, err := l.Load(f, path)
	if err != nil {
		return nil, fmt.Errorf("read compatibility file: %w", err)
	}
	return set, nil
}

// Load reads directives line by line. Lines that are not directives are
// logged and skipped.
func (l *CompatLoader) Load(r io.Reader, source string) (*CompatSet, error) {
	set := &CompatSet{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		alias, ok := ParseCompatLine(line, l.namer)
		if !ok {
			set.Skipped++
			l.log.Info("Wrong input", zap.String("line", line), zap.Int("line_number", lineNum))
			if strings.HasPrefix(strings.TrimSpace(line), "*") {
				set.Findings = append(set.Findings, Finding{
					Severity: SeverityWarning,
					Source:   source,
					Line:     lineNum,
					Text:     "malformed compatibility directive",
					Snippet:  line,
				})
			}
			continue
		}
		alias.Line = lineNum

		if l.icons != nil {
			if _, known := l.icons.Lookup(alias.New.Short); !known {
				l.log.Warn("Compatibility target is not defined by the stylesheet",
					zap.String("old", alias.Old.Short),
					zap.String("new", alias.New.Short))
				set.Findings = append(set.Findings, Finding{
					Severity: SeverityError,
					Source:   source,
					Line:     lineNum,
					Text:     fmt.Sprintf("compatibility target %q is not a stylesheet icon", alias.New.Short),
					Snippet:  line,
				})
				if l.strict {
					set.Dropped++
					continue
				}
			}
			if _, shadowed := l.icons.Lookup(alias.Old.Short); shadowed {
				set.Findings = append(set.Findings, Finding{
					Severity: SeverityWarning,
					Source:   source,
					Line:     lineNum,
					Text:     fmt.Sprintf("compatibility name %q is also a stylesheet icon", alias.Old.Short),
					Snippet:  line,
				})
			}
		}

		set.Aliases = append(set.Aliases, alias)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return set, nil
}

// ParseCompatLine parses one rename directive. The second result is false
// when the line is not a directive.
func ParseCompatLine(line string, namer Namer) (CompatibilityAlias, bool) {
	m := compatPattern.FindStringSubmatch(line)
	if m == nil {
		return CompatibilityAlias{}, false
	}

	return CompatibilityAlias{
		Old:     namer.Normalize(m[1]),
		New:     namer.Normalize(m[2]),
		Comment: strings.TrimSpace(m[3]),
	}, true
}
