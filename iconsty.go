package iconsty

import (
	"context"

	"github.com/yacobolo/iconsty/internal/iconsty"
	"go.uber.org/zap"
)

// Types re-exported from the implementation package
type (
	Config         = iconsty.Config
	GenerateResult = iconsty.GenerateResult
	CheckResult    = iconsty.CheckResult
	Issue          = iconsty.Issue
	Metadata       = iconsty.Metadata
	CommandRunner  = iconsty.CommandRunner
	RenderOrder    = iconsty.RenderOrder
)

// Render orders
const (
	OrderCodepoint = iconsty.OrderCodepoint
	OrderSource    = iconsty.OrderSource
)

// Parser backends
const (
	ParserTdewolff = iconsty.ParserTdewolff
	ParserDouceur  = iconsty.ParserDouceur
)

// Issue severities
const (
	SeverityError   = iconsty.SeverityError
	SeverityWarning = iconsty.SeverityWarning
	SeverityInfo    = iconsty.SeverityInfo
)

// Sentinel errors
var (
	ErrMissingPlaceholder = iconsty.ErrMissingPlaceholder
	ErrNoStylesheets      = iconsty.ErrNoStylesheets
	ErrUnknownParser      = iconsty.ErrUnknownParser
	ErrCommandFailed      = iconsty.ErrCommandFailed
)

// DefaultConfig returns the configuration matching the Font Awesome 4 layout
func DefaultConfig() Config {
	return iconsty.DefaultConfig()
}

// Generate is the main entry point: it reads the stylesheet, compatibility
// file and template, and writes the macro package. A nil logger discards
// diagnostics.
func Generate(ctx context.Context, config Config, log *zap.Logger) (*GenerateResult, error) {
	return iconsty.Generate(ctx, config, log)
}

// Check runs the transform without writing and collects issues
func Check(config Config, log *zap.Logger) (*CheckResult, error) {
	return iconsty.Check(config, log)
}
