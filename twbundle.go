// Package twbundle provides a deterministic Tailwind-style
// utility-class-to-CSS compiler.
//
// twbundle turns a set of utility class strings into a single
// synthesized class name plus the CSS rules that implement them,
// resolving variants (responsive breakpoints, container queries,
// pseudo-classes/elements, dark mode, arbitrary states) and value
// inference (spacing, color, and theme scales) the same way every
// time for the same input.
//
// # Bundling
//
// Bundle a set of utility classes into a single CSS rule set:
//
//	result := twbundle.Bundle([]string{"p-4", "md:hover:bg-blue-500/50"}, twbundle.BundleOptions{})
//	fmt.Println(result.Identifier) // c_1a2b3c4d5e6f
//	fmt.Println(result.CSS)
//
// # Scanning
//
// Scan a source tree for class="..." occurrences and bundle everything
// found:
//
//	occurrences, stats, err := twbundle.ScanSources([]string{"web/**/*.templ"})
//	result := twbundle.Bundle(twbundle.UniqueClasses(occurrences), twbundle.BundleOptions{})
//
// # CLI Tool
//
// twbundle also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/twbundle/cmd/twbundle@latest
package twbundle

import (
	"io"

	"github.com/yacobolo/twbundle/internal/bundler"
)

// Re-exported types so callers never need to import the internal
// bundler package directly.
type (
	BundleOptions      = bundler.BundleOptions
	BundleResult       = bundler.BundleResult
	Declaration        = bundler.Declaration
	Diagnostic         = bundler.Diagnostic
	DiagnosticLevel    = bundler.DiagnosticLevel
	NamingMode         = bundler.NamingMode
	OutputMode         = bundler.OutputMode
	CSSVariablesMode   = bundler.CSSVariablesMode
	UnknownClassesMode = bundler.UnknownClassesMode
	ColorMode          = bundler.ColorMode
	ClassOccurrence    = bundler.ClassOccurrence
	ScanStats          = bundler.ScanStats
	ParsedClass        = bundler.ParsedClass
	Reporter           = bundler.Reporter
)

const (
	NamingHash      = bundler.NamingHash
	NamingReadable  = bundler.NamingReadable
	NamingCamelCase = bundler.NamingCamelCase

	OutputPretty  = bundler.OutputPretty
	OutputCompact = bundler.OutputCompact

	CSSVariablesReference = bundler.CSSVariablesReference
	CSSVariablesInline    = bundler.CSSVariablesInline

	UnknownClassesWarn   = bundler.UnknownClassesWarn
	UnknownClassesError  = bundler.UnknownClassesError
	UnknownClassesIgnore = bundler.UnknownClassesIgnore

	ColorModeOKLCH = bundler.ColorModeOKLCH
	ColorModeHex   = bundler.ColorModeHex
	ColorModeHSL   = bundler.ColorModeHSL
	ColorModeVar   = bundler.ColorModeVar

	DiagLevelWarning = bundler.DiagLevelWarning
	DiagLevelError   = bundler.DiagLevelError
)

// Bundle parses, resolves, and synthesizes CSS for a set of utility
// classes. See bundler.Bundle for the full algorithm.
func Bundle(classes []string, opts BundleOptions) BundleResult {
	return bundler.Bundle(classes, opts)
}

// IsRecognized reports whether a single class token parses and
// resolves to at least one CSS declaration.
func IsRecognized(class string) bool {
	return bundler.IsRecognized(class)
}

// ParseClass parses a single utility-class token without synthesizing
// declarations, useful for tooling that only needs structural
// information (variant prefixes, negation, alpha).
func ParseClass(raw string) (ParsedClass, error) {
	return bundler.ParseClass(raw)
}

// ScanSources walks the given doublestar glob patterns and extracts
// candidate utility-class tokens from class="..."/className="..."
// attributes.
func ScanSources(patterns []string) ([]ClassOccurrence, ScanStats, error) {
	return bundler.ScanSources(patterns)
}

// UniqueClasses deduplicates and sorts a set of scanned occurrences
// into a class list ready for Bundle.
func UniqueClasses(occurrences []ClassOccurrence) []string {
	return bundler.UniqueClasses(occurrences)
}

// NewReporter builds a diagnostic Reporter writing to w.
func NewReporter(w io.Writer, forceColor bool) *Reporter {
	return bundler.NewReporter(w, forceColor)
}
