package bundler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// synthesizeDeclarations implements the three-branch declaration
// synthesizer: (a) valueless plugin lookup, (b)
// plugin-property lookup combined with value inference, and (c)
// arbitrary/CSS-variable raw passthrough. It returns the declarations
// for a single parsed class plus any soft diagnostics raised along
// the way (unknown-plugin, unknown-value).
func synthesizeDeclarations(pc ParsedClass, opts BundleOptions) ([]Declaration, []Diagnostic) {
	if pc.Value == nil {
		return synthesizeValueless(pc)
	}

	switch pc.Value.Kind {
	case ValueArbitrary:
		return synthesizeArbitrary(pc, opts)
	case ValueCSSVariable:
		return synthesizeCSSVariable(pc, opts)
	default:
		return synthesizeStandard(pc, opts)
	}
}

func synthesizeValueless(pc ParsedClass) ([]Declaration, []Diagnostic) {
	decls, ok := buildValuelessDeclarations(pc.Plugin)
	if !ok {
		return nil, []Diagnostic{{
			Level:   DiagLevelWarning,
			Message: fmt.Sprintf("unknown utility class %q", pc.Raw),
		}}
	}
	return finalizeDeclarations(decls, pc, false), nil
}

func synthesizeStandard(pc ParsedClass, opts BundleOptions) ([]Declaration, []Diagnostic) {
	value, alpha := pc.Value.Content, ""
	if pc.Alpha != "" {
		if _, isColor := resolveColorHex(value); isColor {
			alpha = pc.Alpha
		} else {
			// The '/' belongs to the value itself, e.g. the fraction in "w-1/2".
			value += "/" + pc.Alpha
		}
	}
	// withAlpha re-renders a palette color with the class's alpha suffix.
	withAlpha := func(resolved string) (string, bool) {
		if alpha == "" {
			return resolved, true
		}
		return renderColor(value, alpha, opts.ColorMode, opts.ColorMix)
	}

	if decls, ok := synthesizeGradient(pc); ok {
		return decls, nil
	}

	// "text" has no pluginPropertyMap entry: a palette color sets color,
	// a theme font size sets font-size and line-height, an alignment
	// keyword sets text-align.
	if pc.Plugin == "text" {
		if v, ok := renderColor(value, alpha, opts.ColorMode, opts.ColorMix); ok {
			return finalizeDeclarations([]Declaration{{Property: "color", Value: v}}, pc, false), nil
		}
		if _, ok := textSize[value]; ok {
			return finalizeDeclarations([]Declaration{
				{Property: "font-size", Value: "var(--text-" + value + ")"},
				{Property: "line-height", Value: "var(--text-" + value + "--line-height)"},
			}, pc, false), nil
		}
		switch value {
		case "left", "center", "right", "justify", "start", "end":
			return finalizeDeclarations([]Declaration{{Property: "text-align", Value: value}}, pc, false), nil
		}
	}

	props, known := pluginProperties(pc.Plugin)
	if known {
		if resolved, ok := inferValue(pc.Plugin, value, opts.ColorMode, opts.ColorMix); ok {
			if resolved, ok = withAlpha(resolved); ok {
				return finalizeDeclarations(declFor(props, resolved), pc, isNumericLike(resolved)), nil
			}
		}
		if resolved, ok := colorPropertyFallback(props, value, opts); ok {
			if resolved, ok = withAlpha(resolved); ok {
				return finalizeDeclarations(declFor(props, resolved), pc, false), nil
			}
		}
	}

	// The parser cannot distinguish "plugin with a standard value"
	// from a multi-segment valueless class (e.g. "overflow"+"auto");
	// fall back to the full-name valueless table.
	if decls, ok := buildValuelessFromFullName(pc.Plugin, value); ok {
		return finalizeDeclarations(decls, pc, false), nil
	}

	if !known {
		return nil, []Diagnostic{{
			Level:   DiagLevelWarning,
			Message: fmt.Sprintf("unknown utility class %q", pc.Raw),
		}}
	}
	return nil, []Diagnostic{{
		Level:   DiagLevelWarning,
		Message: fmt.Sprintf("unknown value %q for plugin %q", value, pc.Plugin),
	}}
}

// colorPropertyFallback attempts to render `value` as a color when the
// plugin's mapped property looks like a color-bearing one but wasn't
// covered by an explicit inferValue case (e.g. a compound plugin not
// enumerated in original_source's infer_value match).
func colorPropertyFallback(props []string, value string, opts BundleOptions) (string, bool) {
	prop := props[0]
	if strings.Contains(prop, "color") || prop == "fill" || prop == "stroke" || prop == "box-shadow" ||
		strings.HasPrefix(prop, "--tw-gradient") {
		return renderColor(value, "", opts.ColorMode, opts.ColorMix)
	}
	return "", false
}

func synthesizeArbitrary(pc ParsedClass, opts BundleOptions) ([]Declaration, []Diagnostic) {
	props, known := pluginProperties(pc.Plugin)
	if !known {
		return nil, []Diagnostic{{
			Level:   DiagLevelWarning,
			Message: fmt.Sprintf("unknown utility class %q", pc.Raw),
		}}
	}
	content := pc.Value.Content
	var diags []Diagnostic
	if err := validateCSSValue(content); err != nil {
		diags = append(diags, Diagnostic{
			Level:   DiagLevelWarning,
			Message: fmt.Sprintf("class %q: arbitrary value %q may not be valid CSS: %v", pc.Raw, content, err),
		})
	}
	value := content
	if v, ok := gradientArbitrary(pc.Plugin, content); ok {
		value = v
	}
	return finalizeDeclarations(declFor(props, value), pc, isNumericLike(value)), diags
}

// validateCSSValue lexes a raw arbitrary-value payload with the CSS
// tokenizer to catch obviously malformed values (unterminated
// strings, stray braces) before they're emitted verbatim. It does not
// reject anything the lexer can tokenize, since arbitrary values are
// deliberately permissive passthrough.
func validateCSSValue(value string) error {
	lexer := css.NewLexer(parse.NewInputString(value))
	for i := 0; i < 4096; i++ {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		}
		_ = text
	}
	return fmt.Errorf("value too long to tokenize")
}

func synthesizeCSSVariable(pc ParsedClass, opts BundleOptions) ([]Declaration, []Diagnostic) {
	props, known := pluginProperties(pc.Plugin)
	if !known {
		return nil, []Diagnostic{{
			Level:   DiagLevelWarning,
			Message: fmt.Sprintf("unknown utility class %q", pc.Raw),
		}}
	}
	ref := "var(" + pc.Value.Content + ")"
	switch pc.Value.TypeHint {
	case "image":
		ref = "url(" + ref + ")"
	case "length", "color", "":
		// no wrapping
	default:
		// unrecognized hint: still emit the bare reference
	}
	if pc.Alpha != "" {
		pct, err := strconv.Atoi(pc.Alpha)
		if err == nil && pct >= 0 && pct <= 100 {
			ref = fmt.Sprintf("color-mix(in oklab, %s %d%%, transparent)", ref, pct)
		}
	}
	if v, ok := gradientCSSVariable(pc.Plugin, ref); ok {
		ref = v
	}
	return finalizeDeclarations(declFor(props, ref), pc, false), nil
}

func declFor(props []string, value string) []Declaration {
	decls := make([]Declaration, len(props))
	for i, p := range props {
		decls[i] = Declaration{Property: p, Value: value}
	}
	return decls
}

// finalizeDeclarations applies the class's negative and important
// flags to a set of declarations. Negation only prefixes values that
// look numeric/length-like; color and keyword values are left as-is.
func finalizeDeclarations(decls []Declaration, pc ParsedClass, forceNegatable bool) []Declaration {
	out := make([]Declaration, len(decls))
	for i, d := range decls {
		v := d.Value
		if pc.Negative && (forceNegatable || isNumericLike(v)) {
			v = negate(v)
		}
		if pc.Important {
			v += " !important"
		}
		out[i] = Declaration{Property: d.Property, Value: v}
	}
	return out
}

func isNumericLike(v string) bool {
	if v == "" || v == "0" {
		return v == "0"
	}
	i := 0
	if v[0] == '-' {
		i = 1
	}
	if i >= len(v) {
		return false
	}
	sawDigit := false
	for ; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
		case c == '.':
		default:
			// allow a trailing unit (rem, px, %, etc.)
			return sawDigit
		}
	}
	return sawDigit
}

func negate(v string) string {
	if strings.HasPrefix(v, "-") {
		return v[1:]
	}
	if v == "0" {
		return v
	}
	return "-" + v
}
