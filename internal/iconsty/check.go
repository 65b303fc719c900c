package iconsty

import (
	"fmt"

	"go.uber.org/zap"
)

// Check runs every stage except metadata collection and the final write and
// reports what a generation run would skip, drop or leave unresolved.
//
// Compatibility targets are always validated, so unresolved targets show up
// as errors even though Generate passes them through.
func Check(config Config, log *zap.Logger) (*CheckResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	config = config.withDefaults()

	md := Metadata{
		Date:    config.Clock().Format(config.DateLayout),
		Machine: "check",
		GitInfo: "check",
	}

	build, err := buildDocument(config, md, log)
	if err != nil {
		return nil, fmt.Errorf("check failed: %w", err)
	}

	result := &CheckResult{Generate: *build.result}
	result.addFindings(build.syntax)
	result.addFindings(build.icons.Findings)
	result.addFindings(build.compat.Findings)

	return result, nil
}
