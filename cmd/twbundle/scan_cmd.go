package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yacobolo/twbundle"
)

var scanCmd = &cobra.Command{
	Use:   "scan [glob...]",
	Short: "Scan a source tree for utility classes and bundle them",
	Long: `Scan files matching the given glob patterns for
class="..."/className="..." attributes, then bundle every class found
into a single CSS rule set.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.String("naming", "hash", "Naming strategy: hash|readable|camel")
	f.String("color-mode", "oklch", "Color rendering mode: oklch|hex|hsl|var")
	f.Bool("color-mix", false, "Render alpha-suffixed colors with color-mix()")
	f.String("output", "pretty", "CSS output mode: pretty|compact")
	f.String("css-variables", "reference", "Theme variable mode: reference|inline")
	f.String("unknown-classes", "warn", "Unknown class handling: warn|error|ignore")
}

func runScan(cmd *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = k.Strings("scan.paths")
	}
	if len(patterns) == 0 {
		patterns = []string{"**/*.{html,templ,jsx,tsx}"}
	}

	// runID identifies this scan invocation in the error returned when
	// scanning fails.
	runID := uuid.New().String()

	occurrences, stats, err := twbundle.ScanSources(patterns)
	if err != nil {
		return fmt.Errorf("scan %s failed: %w", runID, err)
	}

	verbose := getBoolWithFallback("verbose", "verbose", false)
	reporter := twbundle.NewReporter(os.Stderr, getBoolWithFallback("color", "color", false))
	if verbose {
		reporter.PrintScanStats(stats)
	}

	classes := twbundle.UniqueClasses(occurrences)
	if len(classes) == 0 {
		fmt.Fprintln(os.Stderr, "no utility classes found")
		return nil
	}

	opts := buildBundleOptions()
	result := twbundle.Bundle(classes, opts)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		fmt.Printf(".%s\n", result.Identifier)
	}
	fmt.Println(result.CSS)

	if len(result.Diagnostics) > 0 {
		reporter.PrintDiagnostics(result.Diagnostics)
	}
	return nil
}
