package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twbundle"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle [classes...]",
	Short: "Bundle utility classes into a single CSS rule set",
	Long: `Parse and resolve a set of utility classes, printing the
synthesized class identifier and the generated CSS to stdout.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBundle,
}

func init() {
	f := bundleCmd.Flags()
	f.String("naming", "hash", "Naming strategy: hash|readable|camel")
	f.String("color-mode", "oklch", "Color rendering mode: oklch|hex|hsl|var")
	f.Bool("color-mix", false, "Render alpha-suffixed colors with color-mix()")
	f.String("output", "pretty", "CSS output mode: pretty|compact")
	f.String("css-variables", "reference", "Theme variable mode: reference|inline")
	f.String("unknown-classes", "warn", "Unknown class handling: warn|error|ignore")
}

func runBundle(cmd *cobra.Command, args []string) error {
	classes := args
	if len(classes) == 0 {
		return fmt.Errorf("no classes given; pass one or more utility classes as arguments")
	}

	opts := buildBundleOptions()
	result := twbundle.Bundle(classes, opts)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		fmt.Printf(".%s\n", result.Identifier)
	}
	fmt.Println(result.CSS)

	if len(result.Diagnostics) > 0 {
		reporter := twbundle.NewReporter(os.Stderr, getBoolWithFallback("color", "color", false))
		reporter.PrintDiagnostics(result.Diagnostics)
	}

	if opts.UnknownClasses == twbundle.UnknownClassesError {
		for _, d := range result.Diagnostics {
			if d.Level == twbundle.DiagLevelError {
				return fmt.Errorf("bundle failed: %s", d.Message)
			}
		}
	}
	return nil
}
