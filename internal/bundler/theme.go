package bundler

import (
	"fmt"
	"strconv"
	"strings"
)

// spacingMap holds the named spacing tokens that don't follow the
// n*0.25rem numeric scale, ported from
// original_source/crates/tw_index/src/value_map.rs's SPACING_MAP.
var spacingMap = map[string]string{
	"px": "1px", "auto": "auto",
	"1/2": "50%", "1/3": "33.333333%", "2/3": "66.666667%",
	"1/4": "25%", "2/4": "50%", "3/4": "75%",
	"1/5": "20%", "2/5": "40%", "3/5": "60%", "4/5": "80%",
	"1/6": "16.666667%", "2/6": "33.333333%", "3/6": "50%",
	"4/6": "66.666667%", "5/6": "83.333333%",
	"1/12": "8.333333%", "5/12": "41.666667%", "7/12": "58.333333%", "11/12": "91.666667%",
	"full": "100%", "min": "min-content", "max": "max-content", "fit": "fit-content",
}

var viewportUnits = map[string]bool{
	"vw": true, "vh": true, "svw": true, "svh": true, "dvw": true, "dvh": true,
	"lvw": true, "lvh": true,
}

// getSpacingValue resolves a spacing-scale value token to a CSS
// length, following original_source's get_spacing_value: named tokens
// first, then bare viewport-unit tokens, then the n*0.25rem numeric
// scale.
func getSpacingValue(value string) (string, bool) {
	if v, ok := spacingMap[value]; ok {
		return v, true
	}
	for unit := range viewportUnits {
		if strings.HasSuffix(value, unit) {
			n := strings.TrimSuffix(value, unit)
			if n == "" {
				continue
			}
			if _, err := strconv.ParseFloat(n, 64); err == nil {
				return value, true
			}
		}
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", false
	}
	if n < 0 {
		return "", false
	}
	if n == 0 {
		return "0", true
	}
	return trimFloat(n*0.25) + "rem", true
}

// trimFloat formats a float with the minimal number of decimal digits
// needed, matching the 0.25rem-multiple values Tailwind emits (e.g.
// "1rem", "0.5rem", "1.5rem").
func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return s
}

// getOpacityValue resolves an opacity percentage ("0".."100") to a
// decimal fraction string, per original_source's get_opacity_value.
func getOpacityValue(value string) (string, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 100 {
		return "", false
	}
	switch n {
	case 0:
		return "0", true
	case 100:
		return "1", true
	}
	return fmt.Sprintf("0.%d", n), true
}

// getContainerSize resolves a named container-query size token to its
// theme variable reference, used by the `basis`/`w`/`max-w` family
// when the value names a container breakpoint instead of a spacing
// token.
func getContainerSize(value string) (string, bool) {
	if _, ok := containerBreakpoints[value]; ok {
		return "var(--container-" + value + ")", true
	}
	return "", false
}

// radiusScale is the border-radius named scale, ported from
// original_source's infer_value "rounded*" branch.
var radiusScale = map[string]string{
	"none": "0", "": "0.25rem", "sm": "0.125rem", "md": "0.375rem",
	"lg": "0.5rem", "xl": "0.75rem", "2xl": "1rem", "3xl": "1.5rem", "full": "9999px",
}

// textSize is the font-size theme table, ported from
// original_source/crates/tw_index/src/theme_values.rs's TEXT_SIZE.
var textSize = map[string]string{
	"xs": "0.75rem", "sm": "0.875rem", "base": "1rem", "lg": "1.125rem",
	"xl": "1.25rem", "2xl": "1.5rem", "3xl": "1.875rem", "4xl": "2.25rem",
	"5xl": "3rem", "6xl": "3.75rem", "7xl": "4.5rem", "8xl": "6rem", "9xl": "8rem",
}

// textLineHeight is the paired line-height for each TEXT_SIZE entry.
var textLineHeight = map[string]string{
	"xs": "calc(1 / 0.75)", "sm": "calc(1.25 / 0.875)", "base": "calc(1.5 / 1)",
	"lg": "calc(1.75 / 1.125)", "xl": "calc(1.75 / 1.25)", "2xl": "calc(2 / 1.5)",
	"3xl": "calc(2.25 / 1.875)", "4xl": "calc(2.5 / 2.25)",
	"5xl": "1", "6xl": "1", "7xl": "1", "8xl": "1", "9xl": "1",
}

// fontFamily is the FONT_FAMILY theme table.
var fontFamily = map[string]string{
	"sans": "ui-sans-serif, system-ui, sans-serif, \"Apple Color Emoji\", \"Segoe UI Emoji\", \"Segoe UI Symbol\", \"Noto Color Emoji\"",
	"serif": "ui-serif, Georgia, Cambria, \"Times New Roman\", Times, serif",
	"mono": "ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, \"Liberation Mono\", \"Courier New\", monospace",
}

// blurSize is the BLUR_SIZE theme table.
var blurSize = map[string]string{
	"none": "", "sm": "4px", "": "8px", "md": "12px", "lg": "16px",
	"xl": "24px", "2xl": "40px", "3xl": "64px",
}

// themeReferenceValue resolves a theme custom-property name (as
// referenced via var(--name) in generated CSS) back to its concrete
// value, for :root generation and for "css_variables: inline" mode.
// Grounded on original_source/crates/tw_index/src/bundler.rs's
// resolve_theme_variable.
func themeReferenceValue(name string) (string, bool) {
	switch {
	case name == "--aspect-video":
		return "16 / 9", true
	case strings.HasSuffix(name, "--line-height") && strings.HasPrefix(name, "--text-"):
		size := strings.TrimSuffix(strings.TrimPrefix(name, "--text-"), "--line-height")
		v, ok := textLineHeight[size]
		return v, ok
	case strings.HasPrefix(name, "--text-"):
		v, ok := textSize[strings.TrimPrefix(name, "--text-")]
		return v, ok
	case strings.HasPrefix(name, "--font-"):
		v, ok := fontFamily[strings.TrimPrefix(name, "--font-")]
		return v, ok
	case strings.HasPrefix(name, "--blur-"):
		v, ok := blurSize[strings.TrimPrefix(name, "--blur-")]
		return v, ok
	case strings.HasPrefix(name, "--container-"):
		v, ok := containerBreakpoints[strings.TrimPrefix(name, "--container-")]
		return v, ok
	default:
		return "", false
	}
}
