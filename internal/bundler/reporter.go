package bundler

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Terminal styles for diagnostic output (warning vs. error rather
// than lint-severity levels).
var (
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleGray    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleGreen   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// Reporter formats Diagnostics for terminal output, grounded on the
// teacher's internal/cssgen/reporter.go Reporter, generalized from
// golangci-lint-format lint issues to the bundler's own Diagnostic
// shape.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter builds a Reporter writing to w. Color is auto-detected
// via fatih/color's NoColor default (which itself checks NO_COLOR and
// TTY-ness) unless forceColor overrides it.
func NewReporter(w io.Writer, forceColor bool) *Reporter {
	useColors := !color.NoColor || forceColor
	return &Reporter{w: w, useColors: useColors}
}

func render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// PrintDiagnostics writes each diagnostic on its own line, sorted so
// errors are reported after warnings (most severe last, matching the
// teacher's file/line/column sort intent but keyed on severity since
// Diagnostic carries no location).
func (r *Reporter) PrintDiagnostics(diags []Diagnostic) {
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level < sorted[j].Level
	})
	for _, d := range sorted {
		r.printOne(d)
	}
}

func (r *Reporter) printOne(d Diagnostic) {
	label := render(styleWarning, "warning:", r.useColors)
	if d.Level == DiagLevelError {
		label = render(styleError, "error:", r.useColors)
	}
	fmt.Fprintf(r.w, "%s %s\n", label, d.Message)
}

// PrintSummary writes a one-line count of warnings/errors, or a
// success line when there are none.
func (r *Reporter) PrintSummary(diags []Diagnostic) {
	var warnings, errors int
	for _, d := range diags {
		if d.Level == DiagLevelError {
			errors++
		} else {
			warnings++
		}
	}
	if warnings == 0 && errors == 0 {
		fmt.Fprintln(r.w, render(styleGreen, "no issues found", r.useColors))
		return
	}
	fmt.Fprintf(r.w, "%s\n", render(styleGray, fmt.Sprintf("%d warning(s), %d error(s)", warnings, errors), r.useColors))
}

// PrintScanStats writes a one-line file-scan summary, adapted from
// scanner.go's verbose-mode summary line.
func (r *Reporter) PrintScanStats(stats ScanStats) {
	fmt.Fprintf(r.w, "%s\n", render(styleGray,
		fmt.Sprintf("scanned %d files (%d skipped of %d discovered)", stats.FilesScanned, stats.FilesSkipped, stats.FilesDiscovered),
		r.useColors))
}

// DefaultReporter returns a Reporter writing to stderr with
// auto-detected color support.
func DefaultReporter() *Reporter {
	return NewReporter(os.Stderr, false)
}
