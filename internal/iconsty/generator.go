package iconsty

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Generate runs the whole transform and writes the output file.
//
// Every input is read and the output fully composed before anything is
// written, so a failed run leaves any previous output untouched.
func Generate(ctx context.Context, config Config, log *zap.Logger) (*GenerateResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	config = config.withDefaults()

	// 1. Provenance; fails before any parsing happens
	md, err := CollectMetadata(ctx, config, log)
	if err != nil {
		return nil, fmt.Errorf("metadata failed: %w", err)
	}

	build, err := buildDocument(config, md, log)
	if err != nil {
		return nil, err
	}

	log.Info("Writing output", zap.String("path", config.OutputFile))
	if err := WriteOutput(config.OutputFile, build.document); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return build.result, nil
}

// build is everything produced by the read-only stages of a run
type build struct {
	result   *GenerateResult
	syntax   []Finding
	icons    *IconSet
	compat   *CompatSet
	document string
}

// buildDocument runs every stage after metadata collection and composes the
// output in memory
func buildDocument(config Config, md Metadata, log *zap.Logger) (*build, error) {
	result := &GenerateResult{OutputFile: config.OutputFile, Metadata: md}

	// 2. Parse stylesheets
	files, _, err := NewSources().Expand(config.Stylesheets)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesParsed = len(files)

	parser, err := NewParser(config.Parser, log)
	if err != nil {
		return nil, err
	}

	log.Info("Parsing CSS files", zap.Strings("files", files))
	rules, syntaxErrors, err := ParseFiles(parser, files)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	result.SyntaxErrors = len(syntaxErrors)

	// 3. Normalize, group and deduplicate
	namer := NewNamer(config)
	icons := BuildIconSet(rules, namer, log)
	result.RulesParsed = icons.RulesParsed
	result.MalformedRecords = icons.MalformedRecords
	result.DuplicatesDropped = icons.DuplicatesDropped

	// 4. Template; read before rendering so a bad template fails early
	log.Info("Reading template", zap.String("path", config.TemplateFile))
	compositor, err := LoadTemplate(config.TemplateFile, config.LeftDelim, config.RightDelim)
	if err != nil {
		return nil, fmt.Errorf("template failed: %w", err)
	}

	// 5. Backward-compatibility aliases
	log.Info("Reading backward compatibility icons", zap.String("path", config.CompatFile))
	compat, err := NewCompatLoader(namer, icons, config.StrictCompat, log).LoadFile(config.CompatFile)
	if err != nil {
		return nil, fmt.Errorf("compatibility failed: %w", err)
	}

	// 6. Render
	blocks := NewRenderer(config).Render(icons.Groups(config.Order), compat.Aliases)
	result.UniqueIcons = blocks.IconCount
	result.AliasesGenerated = blocks.AliasCount
	result.IconsGenerated = blocks.IconCount + blocks.AliasCount
	result.CompatGenerated = blocks.CompatCount

	log.Info("Summary",
		zap.Int("icons", result.IconsGenerated),
		zap.Int("aliases", result.AliasesGenerated),
		zap.Int("unique", result.UniqueIcons),
		zap.Int("compatibility", result.CompatGenerated))

	// 7. Compose
	document, err := compositor.Compose(TemplateValues{
		Date:          md.Date,
		Machine:       md.Machine,
		GitInfo:       md.GitInfo,
		Icons:         blocks.Icons,
		Aliases:       blocks.Aliases,
		CompatAliases: blocks.CompatAliases,
	})
	if err != nil {
		return nil, fmt.Errorf("template failed: %w", err)
	}

	return &build{
		result:   result,
		syntax:   syntaxErrors,
		icons:    icons,
		compat:   compat,
		document: document,
	}, nil
}

// WriteOutput replaces path with content. The content goes to a temporary
// file in the same directory first and is renamed into place.
func WriteOutput(path, content string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	_, err = tmp.WriteString(content)
	err = multierr.Append(err, tmp.Close())
	if err != nil {
		return err
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
