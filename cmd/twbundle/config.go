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

	"github.com/yacobolo/twbundle"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file >
// defaults.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".twbundle.yaml"
	}
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}
	// A nil koanf instance makes posflag load only flags set on the
	// command line, so unset flag defaults never mask file or env values.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables, separated from loadConfig for testability without cobra.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("TWBUNDLE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWBUNDLE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}
	return nil
}

func namingModeFromString(s string) twbundle.NamingMode {
	switch s {
	case "readable":
		return twbundle.NamingReadable
	case "camel", "camelcase":
		return twbundle.NamingCamelCase
	default:
		return twbundle.NamingHash
	}
}

func colorModeFromString(s string) twbundle.ColorMode {
	switch s {
	case "hex":
		return twbundle.ColorModeHex
	case "hsl":
		return twbundle.ColorModeHSL
	case "var":
		return twbundle.ColorModeVar
	default:
		return twbundle.ColorModeOKLCH
	}
}

func buildBundleOptions() twbundle.BundleOptions {
	opts := twbundle.BundleOptions{
		NamingMode: namingModeFromString(getStringWithFallback("naming", "bundle.naming", "hash")),
		ColorMode:  colorModeFromString(getStringWithFallback("color-mode", "bundle.color-mode", "oklch")),
		ColorMix:   getBoolWithFallback("color-mix", "bundle.color-mix", false),
	}
	if getStringWithFallback("output", "bundle.output", "pretty") == "compact" {
		opts.OutputMode = twbundle.OutputCompact
	}
	if getStringWithFallback("css-variables", "bundle.css-variables", "reference") == "inline" {
		opts.CSSVariables = twbundle.CSSVariablesInline
	}
	switch getStringWithFallback("unknown-classes", "bundle.unknown-classes", "warn") {
	case "error":
		opts.UnknownClasses = twbundle.UnknownClassesError
	case "ignore":
		opts.UnknownClasses = twbundle.UnknownClassesIgnore
	}
	return opts
}

func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
