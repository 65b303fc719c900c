package iconsty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseCompatLine(t *testing.T) {
	namer := NewNamer(Config{})

	tests := []struct {
		name    string
		line    string
		ok      bool
		old     IconName
		new     IconName
		comment string
	}{
		{
			name:    "with comment",
			line:    "* `bar-chart` -> `bar-chart-o` (renamed for clarity).",
			ok:      true,
			old:     IconName{Short: "bar-chart", Macro: `\faBarChart`},
			new:     IconName{Short: "bar-chart-o", Macro: `\faBarChartO`},
			comment: "(renamed for clarity)",
		},
		{
			name: "without comment",
			line: "* `ban-circle` -> `ban`.",
			ok:   true,
			old:  IconName{Short: "ban-circle", Macro: `\faBanCircle`},
			new:  IconName{Short: "ban", Macro: `\faBan`},
		},
		{
			name: "comma terminated",
			line: "  * `zoom-in` -> `search-plus`,",
			ok:   true,
			old:  IconName{Short: "zoom-in", Macro: `\faZoomIn`},
			new:  IconName{Short: "search-plus", Macro: `\faSearchPlus`},
		},
		{
			name: "prefixed names",
			line: "* `fa-remove` -> `fa-times`.",
			ok:   true,
			old:  IconName{Short: "remove", Macro: `\faRemove`},
			new:  IconName{Short: "times", Macro: `\faTimes`},
		},
		{name: "no terminator", line: "* `ban-circle` -> `ban`", ok: false},
		{name: "no arrow", line: "* `ban-circle` `ban`.", ok: false},
		{name: "plain text", line: "Renamed icons", ok: false},
		{name: "empty", line: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias, ok := ParseCompatLine(tt.line, namer)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.old, alias.Old)
			assert.Equal(t, tt.new, alias.New)
			assert.Equal(t, tt.comment, alias.Comment)
		})
	}
}

func TestCompatLoaderWithoutIcons(t *testing.T) {
	input := strings.Join([]string{
		"Renamed icons",
		"",
		"* `bar-chart` -> `bar-chart-o` (renamed for clarity).",
		"* broken directive",
		"* `gone` -> `nowhere`.",
	}, "\n")

	set, err := NewCompatLoader(NewNamer(Config{}), nil, true, nil).Load(strings.NewReader(input), "compat.txt")
	require.NoError(t, err)

	require.Len(t, set.Aliases, 2)
	assert.Equal(t, "bar-chart", set.Aliases[0].Old.Short)
	assert.Equal(t, 3, set.Aliases[0].Line)
	assert.Equal(t, "nowhere", set.Aliases[1].New.Short)
	assert.Equal(t, 3, set.Skipped)
	assert.Equal(t, 0, set.Dropped)

	require.Len(t, set.Findings, 1)
	assert.Equal(t, SeverityWarning, set.Findings[0].Severity)
	assert.Equal(t, 4, set.Findings[0].Line)
	assert.Equal(t, "* broken directive", set.Findings[0].Snippet)
}

func TestCompatLoaderValidatesTargets(t *testing.T) {
	namer := NewNamer(Config{})
	icons := BuildIconSet([]StyleRule{
		rule(`"\f080"`, ".fa-bar-chart-o:before", ".fa-bar-chart:before"),
		rule(`"\f00d"`, ".fa-times:before"),
	}, namer, nil)

	input := strings.Join([]string{
		"* `bar-chart` -> `bar-chart-o` (renamed for clarity).",
		"* `icon-remove` -> `times`.",
		"* `gone` -> `nowhere`.",
	}, "\n")

	t.Run("permissive", func(t *testing.T) {
		set, err := NewCompatLoader(namer, icons, false, nil).Load(strings.NewReader(input), "compat.txt")
		require.NoError(t, err)

		assert.Len(t, set.Aliases, 3)
		assert.Equal(t, 0, set.Dropped)

		require.Len(t, set.Findings, 2)
		assert.Equal(t, SeverityWarning, set.Findings[0].Severity)
		assert.Contains(t, set.Findings[0].Text, `"bar-chart"`)
		assert.Equal(t, SeverityError, set.Findings[1].Severity)
		assert.Contains(t, set.Findings[1].Text, `"nowhere"`)
		assert.Equal(t, 3, set.Findings[1].Line)
	})

	t.Run("strict", func(t *testing.T) {
		set, err := NewCompatLoader(namer, icons, true, zaptest.NewLogger(t)).Load(strings.NewReader(input), "compat.txt")
		require.NoError(t, err)

		require.Len(t, set.Aliases, 2)
		assert.Equal(t, "icon-remove", set.Aliases[1].Old.Short)
		assert.Equal(t, 1, set.Dropped)
	})
}

func TestCompatLoaderLoadFile(t *testing.T) {
	loader := NewCompatLoader(NewNamer(Config{}), nil, false, nil)

	set, err := loader.LoadFile("testdata/backward_cap.txt")
	require.NoError(t, err)
	assert.Len(t, set.Aliases, 3)
	assert.Equal(t, "(renamed for clarity)", set.Aliases[0].Comment)
	assert.Equal(t, "(prefix dropped)", set.Aliases[1].Comment)

	_, err = loader.LoadFile("testdata/missing.txt")
	require.Error(t, err)
}
