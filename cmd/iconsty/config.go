package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/iconsty"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".iconsty.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only explicitly set flags are loaded
	// so that flag defaults never shadow config file values.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (ICONSTY_* prefix)
	if err := k.Load(env.Provider("ICONSTY_", ".", func(s string) string {
		// ICONSTY_INPUTS_COMPAT -> inputs.compat
		// ICONSTY_PARSER -> parser
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "ICONSTY_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() iconsty.Config {
	d := iconsty.DefaultConfig()

	return iconsty.Config{
		Stylesheets:    getStringsWithFallback("stylesheet", "inputs.stylesheets", d.Stylesheets),
		CompatFile:     getStringWithFallback("compat", "inputs.compat", d.CompatFile),
		TemplateFile:   getStringWithFallback("template", "inputs.template", d.TemplateFile),
		OutputFile:     getStringWithFallback("output", "output", d.OutputFile),
		StrictCompat:   getBoolWithFallback("strict-compat", "inputs.strict-compat", false),
		Parser:         getStringWithFallback("parser", "parser", d.Parser),
		Order:          iconsty.RenderOrder(getStringWithFallback("order", "render.order", string(d.Order))),
		GroupSize:      getIntWithFallback("group-size", "render.group-size", d.GroupSize),
		LeftDelim:      getStringWithFallback("left-delim", "render.left-delim", d.LeftDelim),
		RightDelim:     getStringWithFallback("right-delim", "render.right-delim", d.RightDelim),
		SelectorPrefix: getStringWithFallback("selector-prefix", "names.selector-prefix", d.SelectorPrefix),
		MacroPrefix:    getStringWithFallback("macro-prefix", "names.macro-prefix", d.MacroPrefix),
		CSNamePrefix:   getStringWithFallback("csname-prefix", "names.csname-prefix", d.CSNamePrefix),
		FontCommand:    getStringWithFallback("font-command", "names.font-command", d.FontCommand),
		VCSCommand:     getStringsWithFallback("vcs-command", "metadata.vcs-command", d.VCSCommand),
		HostCommand:    getStringsWithFallback("host-command", "metadata.host-command", d.HostCommand),
		DateLayout:     getStringWithFallback("date-layout", "metadata.date-layout", d.DateLayout),
		Verbose:        getBoolWithFallback("verbose", "verbose", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
