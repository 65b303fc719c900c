// Package iconsty generates a LaTeX macro package for an icon font from the
// font's CSS stylesheet.
//
// Each CSS rule binding icon classes to an escaped codepoint becomes one
// primary macro plus alias macros for every further class on the same glyph.
// A plain-text list of renamed icons adds backward-compatibility aliases.
// The rendered blocks are substituted into a template together with the
// generation date, host and version-control descriptors.
//
// # Generation
//
//	config := iconsty.DefaultConfig()
//	config.Stylesheets = []string{"input/font-awesome.css"}
//	result, err := iconsty.Generate(ctx, config, logger)
//
// # Checking
//
// Check runs the same stages without writing and reports malformed rules,
// dropped duplicates and compatibility targets the stylesheet does not define:
//
//	result, err := iconsty.Check(config, logger)
//	iconsty.WriteOutput(os.Stdout, result, iconsty.OutputIssues, false)
//
// # CLI Tool
//
//	go install github.com/yacobolo/iconsty/cmd/iconsty@latest
package iconsty
