package bundler

import (
	"fmt"
	"strings"
)

var responsiveBreakpoints = map[string]string{
	"sm": "40rem", "md": "48rem", "lg": "64rem", "xl": "80rem", "2xl": "96rem",
}

var containerBreakpoints = map[string]string{
	"3xs": "16rem", "2xs": "18rem", "xs": "20rem", "sm": "24rem", "md": "28rem",
	"lg": "32rem", "xl": "36rem", "2xl": "42rem", "3xl": "48rem", "4xl": "56rem",
	"5xl": "64rem", "6xl": "72rem", "7xl": "80rem",
}

var plainPseudoClasses = map[string]bool{
	"hover": true, "focus": true, "active": true, "visited": true, "target": true,
	"focus-within": true, "focus-visible": true, "disabled": true, "enabled": true,
	"checked": true, "indeterminate": true, "default": true, "optional": true,
	"required": true, "valid": true, "invalid": true, "user-valid": true,
	"user-invalid": true, "in-range": true, "out-of-range": true,
	"placeholder-shown": true, "autofill": true, "read-only": true, "empty": true,
	"first": true, "last": true, "only": true, "odd": true, "even": true,
	"first-of-type": true, "last-of-type": true, "only-of-type": true,
	"open": true, "inert": true, "*": true, "**": true,
}

var pseudoElements = map[string]bool{
	"before": true, "after": true, "placeholder": true, "file": true, "marker": true,
	"selection": true, "first-line": true, "first-letter": true, "backdrop": true,
	"details-content": true,
}

var plainStates = map[string]bool{
	"dark": true, "light": true, "starting": true, "motion-safe": true,
	"motion-reduce": true, "contrast-more": true, "contrast-less": true,
	"portrait": true, "landscape": true, "print": true, "forced-colors": true,
	"inverted-colors": true, "pointer-fine": true, "pointer-coarse": true,
	"pointer-none": true, "any-pointer-fine": true, "any-pointer-coarse": true,
	"any-pointer-none": true, "noscript": true, "rtl": true, "ltr": true,
}

// classifyVariant reports which VariantKind a single modifier segment
// belongs to, following the classification table in
// original_source/crates/tw_parse/src/types.rs (Modifier::from_str),
// generalized with a Container kind for "@..." container-query
// segments (not distinguished in the Rust source's Modifier enum but
// required to route to @container instead of @media).
func classifyVariant(s string) VariantKind {
	switch {
	case s == "sm" || s == "md" || s == "lg" || s == "xl" || s == "2xl":
		return VariantResponsive
	case s == "max-sm" || s == "max-md" || s == "max-lg" || s == "max-xl" || s == "max-2xl":
		return VariantResponsive
	case (strings.HasPrefix(s, "min-") || strings.HasPrefix(s, "max-")) && strings.Contains(s, "["):
		return VariantResponsive
	case strings.HasPrefix(s, "@"):
		return VariantContainer
	case strings.HasPrefix(s, "supports-") && strings.Contains(s, "["):
		return VariantState
	case (strings.HasPrefix(s, "has-") || strings.HasPrefix(s, "not-") ||
		strings.HasPrefix(s, "nth-") || strings.HasPrefix(s, "in-") ||
		strings.HasPrefix(s, "data-")) && strings.Contains(s, "["):
		return VariantPseudoClass
	case strings.HasPrefix(s, "aria-"):
		return VariantPseudoClass
	case plainPseudoClasses[s]:
		return VariantPseudoClass
	case pseudoElements[s]:
		return VariantPseudoElement
	case strings.HasPrefix(s, "group-") || strings.HasPrefix(s, "peer-") || plainStates[s]:
		return VariantState
	default:
		return VariantCustom
	}
}

func parseModifiers(rawMods string) []Variant {
	segments := strings.Split(strings.TrimSuffix(rawMods, ":"), ":")
	out := make([]Variant, 0, len(segments))
	for _, s := range segments {
		if s == "" {
			continue
		}
		out = append(out, Variant{Kind: classifyVariant(s), Name: s})
	}
	return out
}

// selectorMod is a fragment that composes into the final CSS selector.
type selectorMod struct {
	// pattern contains "&" as a placeholder for the selector built so
	// far, e.g. "&:hover" or ".dark &".
	pattern string
}

func applySelectorMod(base string, m selectorMod) string {
	return strings.ReplaceAll(m.pattern, "&", base)
}

// resolvedVariants splits a class's modifiers into the ordered list of
// at-rule openers (outermost first) and the selector fragments applied
// to the base selector, grounded on
// original_source/crates/tw_index/src/context.rs's
// generate_selector_with_modifiers.
type resolvedVariants struct {
	atRules   []string
	selectors []selectorMod
}

func resolveVariants(mods []Variant) (resolvedVariants, error) {
	var r resolvedVariants
	for _, v := range mods {
		switch v.Kind {
		case VariantResponsive:
			ar, err := responsiveAtRule(v.Name)
			if err != nil {
				return r, err
			}
			r.atRules = append(r.atRules, ar)
		case VariantContainer:
			ar, err := containerAtRule(v.Name)
			if err != nil {
				return r, err
			}
			r.atRules = append(r.atRules, ar)
		case VariantPseudoClass:
			sel, err := pseudoClassSelector(v.Name)
			if err != nil {
				return r, err
			}
			r.selectors = append(r.selectors, selectorMod{pattern: sel})
		case VariantPseudoElement:
			name := v.Name
			if name == "file" {
				name = "file-selector-button"
			}
			r.selectors = append(r.selectors, selectorMod{pattern: "&::" + name})
		case VariantState:
			if v.Name == "starting" {
				r.atRules = append(r.atRules, "@starting-style")
				continue
			}
			if strings.HasPrefix(v.Name, "supports-") {
				ar, err := supportsAtRule(v.Name)
				if err != nil {
					return r, err
				}
				r.atRules = append(r.atRules, ar)
				continue
			}
			if ar, ok := mediaFeatureAtRule(v.Name); ok {
				r.atRules = append(r.atRules, ar)
				continue
			}
			sel, err := stateSelector(v.Name)
			if err != nil {
				return r, err
			}
			r.selectors = append(r.selectors, selectorMod{pattern: sel})
		case VariantCustom:
			sel, err := parameterizedSelector(v.Name)
			if err != nil {
				return r, err
			}
			r.selectors = append(r.selectors, selectorMod{pattern: sel})
		}
	}
	return r, nil
}

// pseudoClassSelector resolves shorthand pseudo-class names and
// bracketed parameterized ones (has-[...], not-[...], nth-[...],
// aria-[...]/aria-name, data-[...]/in-[...]) to a selector pattern.
func pseudoClassSelector(name string) (string, error) {
	if strings.Contains(name, "[") {
		return parameterizedSelector(name)
	}
	if strings.HasPrefix(name, "aria-") {
		return "&[aria-" + name[len("aria-"):] + `="true"]`, nil
	}
	switch name {
	case "first":
		return "&:first-child", nil
	case "last":
		return "&:last-child", nil
	case "only":
		return "&:only-child", nil
	case "odd":
		return "&:nth-child(odd)", nil
	case "even":
		return "&:nth-child(even)", nil
	case "open":
		return "&:is([open], :popover-open, :open)", nil
	case "inert":
		return "&:is([inert], [inert] *)", nil
	case "*":
		return "& > *", nil
	case "**":
		return "& *", nil
	default:
		return "&:" + name, nil
	}
}

// parameterizedSelector resolves a bracketed variant such as
// "has-[.foo]", "data-[state=open]", "nth-[3]" to its selector
// pattern, using depth-aware bracket extraction.
func parameterizedSelector(name string) (string, error) {
	bracket := strings.IndexByte(name, '[')
	if bracket == -1 {
		return "&:" + name, nil
	}
	end, err := findBalanced(name, bracket, '[', ']')
	if err != nil {
		return "", fmt.Errorf("variant %q: %w", name, err)
	}
	prefix := name[:bracket]
	param := unescapeBracket(name[bracket+1 : end])
	prefix = strings.TrimSuffix(prefix, "-")

	switch prefix {
	case "has":
		return "&:has(" + param + ")", nil
	case "not":
		return "&:not(" + param + ")", nil
	case "nth-last-of-type":
		return "&:nth-last-of-type(" + param + ")", nil
	case "nth-of-type":
		return "&:nth-of-type(" + param + ")", nil
	case "nth-last":
		return "&:nth-last-child(" + param + ")", nil
	case "nth":
		return "&:nth-child(" + param + ")", nil
	case "aria":
		return "&[aria-" + param + "]", nil
	case "data":
		return "&[data-" + param + "]", nil
	case "in":
		return "&:where(" + param + ")", nil
	default:
		return "", fmt.Errorf("unrecognized parameterized variant %q", name)
	}
}

// stateSelector resolves the State variants that don't route through
// an at-rule: dark/light, rtl/ltr, group-*, peer-*, and the passthrough
// fallback.
//
// dark resolves to an ancestor-class selector (".dark &") rather than
// a prefers-color-scheme media query.
func stateSelector(name string) (string, error) {
	switch {
	case name == "dark":
		return ".dark &", nil
	case name == "light":
		return ".light &", nil
	case name == "rtl":
		return `&:where(:dir(rtl), [dir="rtl"], [dir="rtl"] *)`, nil
	case name == "ltr":
		return `&:where(:dir(ltr), [dir="ltr"], [dir="ltr"] *)`, nil
	case strings.HasPrefix(name, "group-"):
		param := name[len("group-"):]
		suffix, err := stateOrPseudoSuffix(param)
		if err != nil {
			return "", err
		}
		return ".group" + suffix + " &", nil
	case strings.HasPrefix(name, "peer-"):
		param := name[len("peer-"):]
		suffix, err := stateOrPseudoSuffix(param)
		if err != nil {
			return "", err
		}
		return ".peer" + suffix + " ~ &", nil
	default:
		// Media-feature states are consumed as at-rules elsewhere;
		// anything left over is an unrecognized state used as a bare
		// class-name fallback.
		return "&", nil
	}
}

// stateOrPseudoSuffix resolves the parameter of a group-*/peer-*
// variant to the suffix appended after ".group"/".peer": either a
// bracketed selector fragment or a pseudo-class name.
func stateOrPseudoSuffix(param string) (string, error) {
	if strings.Contains(param, "[") {
		sel, err := parameterizedSelector(param)
		if err != nil {
			return "", err
		}
		return strings.TrimPrefix(sel, "&"), nil
	}
	sel, err := pseudoClassSelector(param)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(sel, "&"), nil
}

func responsiveAtRule(name string) (string, error) {
	if strings.HasPrefix(name, "max-") {
		body := name[len("max-"):]
		if strings.Contains(body, "[") {
			px, err := extractBracketPixels(body)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("@media (width < %s)", px), nil
		}
		bp, ok := responsiveBreakpoints[body]
		if !ok {
			return "", fmt.Errorf("unknown breakpoint %q", name)
		}
		return fmt.Sprintf("@media (width < %s)", bp), nil
	}
	if strings.HasPrefix(name, "min-") && strings.Contains(name, "[") {
		px, err := extractBracketPixels(name[len("min-"):])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("@media (width >= %s)", px), nil
	}
	bp, ok := responsiveBreakpoints[name]
	if !ok {
		return "", fmt.Errorf("unknown breakpoint %q", name)
	}
	return fmt.Sprintf("@media (width >= %s)", bp), nil
}

func containerAtRule(name string) (string, error) {
	name = strings.TrimPrefix(name, "@")
	if strings.HasPrefix(name, "max-") {
		body := name[len("max-"):]
		if strings.Contains(body, "[") {
			px, err := extractBracketPixels(body)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("@container (width < %s)", px), nil
		}
		bp, ok := containerBreakpoints[body]
		if !ok {
			return "", fmt.Errorf("unknown container size %q", name)
		}
		return fmt.Sprintf("@container (width < %s)", bp), nil
	}
	if strings.HasPrefix(name, "min-") && strings.Contains(name, "[") {
		px, err := extractBracketPixels(name[len("min-"):])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("@container (width >= %s)", px), nil
	}
	bp, ok := containerBreakpoints[name]
	if !ok {
		return "", fmt.Errorf("unknown container size %q", name)
	}
	return fmt.Sprintf("@container (width >= %s)", bp), nil
}

func extractBracketPixels(s string) (string, error) {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return "", fmt.Errorf("expected bracketed value in %q", s)
	}
	end, err := findBalanced(s, start, '[', ']')
	if err != nil {
		return "", err
	}
	return unescapeBracket(s[start+1 : end]), nil
}

func supportsAtRule(name string) (string, error) {
	start := strings.IndexByte(name, '[')
	if start == -1 {
		return "", fmt.Errorf("malformed supports variant %q", name)
	}
	end, err := findBalanced(name, start, '[', ']')
	if err != nil {
		return "", err
	}
	body := unescapeBracket(name[start+1 : end])
	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		prop := strings.TrimSpace(body[:idx])
		val := strings.TrimSpace(body[idx+1:])
		body = prop + ": " + val
	}
	return "@supports (" + body + ")", nil
}

// mediaFeatureAtRule reports the @media at-rule for a State variant
// that is expressed as a bare media feature (motion-safe, print,
// etc.), and whether the name is one of those.
func mediaFeatureAtRule(name string) (string, bool) {
	switch name {
	case "motion-safe":
		return "@media (prefers-reduced-motion: no-preference)", true
	case "motion-reduce":
		return "@media (prefers-reduced-motion: reduce)", true
	case "contrast-more":
		return "@media (prefers-contrast: more)", true
	case "contrast-less":
		return "@media (prefers-contrast: less)", true
	case "portrait":
		return "@media (orientation: portrait)", true
	case "landscape":
		return "@media (orientation: landscape)", true
	case "print":
		return "@media print", true
	case "forced-colors":
		return "@media (forced-colors: active)", true
	case "inverted-colors":
		return "@media (inverted-colors: inverted)", true
	case "pointer-fine":
		return "@media (pointer: fine)", true
	case "pointer-coarse":
		return "@media (pointer: coarse)", true
	case "pointer-none":
		return "@media (pointer: none)", true
	case "any-pointer-fine":
		return "@media (any-pointer: fine)", true
	case "any-pointer-coarse":
		return "@media (any-pointer: coarse)", true
	case "any-pointer-none":
		return "@media (any-pointer: none)", true
	case "noscript":
		return "@media (scripting: none)", true
	default:
		return "", false
	}
}

