package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferValue(t *testing.T) {
	tests := []struct {
		name   string
		plugin string
		value  string
		want   string
		ok     bool
	}{
		{"spacing plugin", "p", "4", "1rem", true},
		{"width screen", "w", "screen", "100vw", true},
		{"height lh", "h", "lh", "1lh", true},
		{"size auto", "size", "auto", "auto", true},
		{"opacity", "opacity", "50", "0.50", true},
		{"rounded", "rounded", "lg", "0.5rem", true},
		{"rounded unknown", "rounded", "bogus", "", false},
		{"justify start", "justify", "start", "flex-start", true},
		{"items start", "items", "start", "flex-start", true},
		{"align content passthrough", "align-content", "center", "center", true},
		{"float start", "float", "start", "inline-start", true},
		{"basis full", "basis", "full", "100%", true},
		{"columns numeric", "columns", "3", "3", true},
		{"columns auto", "columns", "auto", "auto", true},
		{"grid-cols numeric", "grid-cols", "3", "repeat(3, minmax(0, 1fr))", true},
		{"grid-cols none", "grid-cols", "none", "none", true},
		{"grid-flow col", "grid-flow", "col", "column", true},
		{"auto-cols fr", "auto-cols", "fr", "minmax(0, 1fr)", true},
		{"col auto", "col", "auto", "auto", true},
		{"col bogus", "col", "bogus", "", false},
		{"col-span numeric", "col-span", "2", "span 2 / span 2", true},
		{"col-span full", "col-span", "full", "1 / -1", true},
		{"col-start numeric", "col-start", "2", "2", true},
		{"origin", "origin", "top-left", "top left", true},
		{"ease linear", "ease", "linear", "linear", true},
		{"ease named", "ease", "out", "var(--ease-out)", true},
		{"will change contents", "will", "change-contents", "contents", true},
		{"transition discrete", "transition", "discrete", "allow-discrete", true},
		{"transition bogus", "transition", "bogus", "", false},
		{"resize x", "resize", "x", "horizontal", true},
		{"flex initial", "flex", "initial", "0 auto", true},
		{"flex bogus", "flex", "bogus", "", false},
		{"z numeric", "z", "10", "10", true},
		{"order first", "order", "first", "-9999", true},
		{"leading none", "leading", "none", "1", true},
		{"leading named", "leading", "tight", "var(--leading-tight)", true},
		{"tracking", "tracking", "wide", "var(--tracking-wide)", true},
		{"duration numeric", "duration", "150", "150ms", true},
		{"grow numeric", "grow", "1", "1", true},
		{"rotate degrees", "rotate", "45", "45deg", true},
		{"rotate none", "rotate", "none", "none", true},
		{"perspective none", "perspective", "none", "none", true},
		{"perspective origin rejected", "perspective", "origin-top", "", false},
		{"field sizing content", "field", "sizing-content", "content", true},
		{"forced color adjust auto", "forced", "color-adjust-auto", "auto", true},
		{"font-size", "font-size", "lg", "1.125rem", true},
		{"leading-size", "leading-size", "lg", "calc(1.75 / 1.125)", true},
		{"font family", "font", "sans", fontFamily["sans"], true},
		{"blur default", "blur", "", "8px", true},
		{"blur none becomes none keyword", "blur", "none", "none", true},
		{"scroll margin", "scroll-m", "4", "1rem", true},
		{"scroll padding top", "scroll-pt", "2", "0.5rem", true},
		{"space x", "space-x", "2", "0.5rem", true},
		{"unknown plugin", "totally-unknown-plugin", "4", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := inferValue(tt.plugin, tt.value, ColorModeOKLCH, false)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAlignKeyword(t *testing.T) {
	v, ok := alignKeyword("start", true)
	assert.True(t, ok)
	assert.Equal(t, "flex-start", v)

	v, ok = alignKeyword("start", false)
	assert.True(t, ok)
	assert.Equal(t, "start", v)

	v, ok = alignKeyword("center-safe", true)
	assert.True(t, ok)
	assert.Equal(t, "safe center", v)
}
