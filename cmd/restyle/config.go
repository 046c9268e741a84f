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
	"github.com/yacobolo/restyle"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".restyle.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set).
	// Unset flags are skipped so their defaults never shadow file keys such as
	// rewrite.dry-run.
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

	// 2. Environment variables (RESTYLE_* prefix)
	if err := k.Load(env.Provider("RESTYLE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable name to a config key. The first
// underscore after the prefix separates a section ("rewrite") from its key;
// the remaining underscores become dashes, so RESTYLE_REWRITE_DRY_RUN maps
// to rewrite.dry-run and RESTYLE_ENCODING to encoding.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "RESTYLE_"))
	section, rest, found := strings.Cut(key, "_")
	if found && section == "rewrite" {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// rewriteSettings holds the CLI-level options around a library rewrite.
type rewriteSettings struct {
	Config       restyle.Config
	OutputFormat restyle.OutputFormat
	ShowDiff     bool
	Quiet        bool
	Verbose      bool
	Color        bool
}

// buildRewriteSettings constructs the rewrite configuration from koanf state.
func buildRewriteSettings() rewriteSettings {
	return rewriteSettings{
		Config: restyle.Config{
			Path:     getStringWithFallback("path", "path", ""),
			Glob:     getBoolWithFallback("glob", "glob", false),
			Encoding: getStringWithFallback("encoding", "encoding", restyle.DefaultEncoding),
			DryRun:   getBoolWithFallback("dry-run", "rewrite.dry-run", false),
		},
		OutputFormat: restyle.DetermineOutputFormat(getStringWithFallback("output-format", "rewrite.output-format", "text")),
		ShowDiff:     getBoolWithFallback("diff", "rewrite.diff", false),
		Quiet:        getBoolWithFallback("quiet", "quiet", false),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
		Color:        getBoolWithFallback("color", "color", false),
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
