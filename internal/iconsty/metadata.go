package iconsty

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrCommandFailed is returned when a metadata command cannot be run
var ErrCommandFailed = errors.New("metadata command failed")

// Metadata is provenance embedded into the generated file's comments
type Metadata struct {
	Date    string // "2014-06-21 18:04"
	Machine string // `uname -a` output
	GitInfo string // `git describe --long --dirty --tags` output
}

// ExecRunner runs commands on the host
type ExecRunner struct{}

// Run executes name with args and returns its standard output
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return string(out), nil
}

// CollectMetadata reads the clock and runs the host and version-control
// commands. Both commands are required: any failure aborts the run.
func CollectMetadata(ctx context.Context, config Config, log *zap.Logger) (Metadata, error) {
	if log == nil {
		log = zap.NewNop()
	}
	config = config.withDefaults()

	md := Metadata{Date: config.Clock().Format(config.DateLayout)}

	machine, err := runCommand(ctx, config.Runner, config.HostCommand)
	if err != nil {
		return Metadata{}, fmt.Errorf("host descriptor: %w", err)
	}
	md.Machine = machine

	gitInfo, err := runCommand(ctx, config.Runner, config.VCSCommand)
	if err != nil {
		return Metadata{}, fmt.Errorf("version-control descriptor: %w", err)
	}
	md.GitInfo = gitInfo

	log.Info("Started",
		zap.String("git", md.GitInfo),
		zap.String("date", md.Date),
		zap.String("machine", md.Machine))

	return md, nil
}

// runCommand runs argv and returns its trimmed output
func runCommand(ctx context.Context, runner CommandRunner, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrCommandFailed)
	}
	out, err := runner.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCommandFailed, strings.Join(argv, " "), err)
	}
	return strings.TrimSpace(out), nil
}
