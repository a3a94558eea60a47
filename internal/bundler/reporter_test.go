package bundler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noColorReporter(buf *bytes.Buffer) *Reporter {
	return &Reporter{w: buf, useColors: false}
}

func TestReporter_PrintDiagnostics_NoColor(t *testing.T) {
	var buf bytes.Buffer
	r := noColorReporter(&buf)
	r.PrintDiagnostics([]Diagnostic{
		{Level: DiagLevelWarning, Message: "unknown class foo"},
		{Level: DiagLevelError, Message: "bad value bar"},
	})
	out := buf.String()
	assert.Equal(t, "warning: unknown class foo\nerror: bad value bar\n", out)
}

func TestReporter_PrintDiagnostics_SortsWarningsBeforeErrors(t *testing.T) {
	var buf bytes.Buffer
	r := noColorReporter(&buf)
	r.PrintDiagnostics([]Diagnostic{
		{Level: DiagLevelError, Message: "e1"},
		{Level: DiagLevelWarning, Message: "w1"},
		{Level: DiagLevelError, Message: "e2"},
	})
	out := buf.String()
	assert.Equal(t, "warning: w1\nerror: e1\nerror: e2\n", out)
}

func TestReporter_PrintDiagnostics_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := noColorReporter(&buf)
	r.PrintDiagnostics(nil)
	assert.Empty(t, buf.String())
}

func TestReporter_PrintSummary_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	r := noColorReporter(&buf)
	r.PrintSummary(nil)
	assert.Equal(t, "no issues found\n", buf.String())
}

func TestReporter_PrintSummary_WithCounts(t *testing.T) {
	var buf bytes.Buffer
	r := noColorReporter(&buf)
	r.PrintSummary([]Diagnostic{
		{Level: DiagLevelWarning, Message: "w1"},
		{Level: DiagLevelWarning, Message: "w2"},
		{Level: DiagLevelError, Message: "e1"},
	})
	assert.Equal(t, "2 warning(s), 1 error(s)\n", buf.String())
}

func TestReporter_PrintScanStats(t *testing.T) {
	var buf bytes.Buffer
	r := noColorReporter(&buf)
	r.PrintScanStats(ScanStats{FilesDiscovered: 10, FilesScanned: 8, FilesSkipped: 2})
	assert.Equal(t, "scanned 8 files (2 skipped of 10 discovered)\n", buf.String())
}

func TestNewReporter_ForceColorOverridesNoColorDefault(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)
	assert.True(t, r.useColors)
}

func TestRender_PassthroughWhenColorsDisabled(t *testing.T) {
	got := render(styleError, "plain text", false)
	assert.Equal(t, "plain text", got)
}

func TestDefaultReporter_NotNil(t *testing.T) {
	r := DefaultReporter()
	require.NotNil(t, r)
}
