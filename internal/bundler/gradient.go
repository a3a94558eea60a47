package bundler

import (
	"fmt"
	"strconv"
)

// gradientDirections maps the bg-linear-to-*/bg-gradient-to-* (v3
// compat) direction suffix to the keywords linear-gradient() expects,
// ported from original_source/crates/tw_index/src/converter/standard.rs's
// "bg" gradient dispatch.
var gradientDirections = map[string]string{
	"t": "to top", "b": "to bottom", "l": "to left", "r": "to right",
	"tl": "to top left", "tr": "to top right",
	"bl": "to bottom left", "br": "to bottom right",
}

// synthesizeGradient handles the standard-value forms of the
// gradient-function plugins. Their final value is a whole
// linear-gradient()/conic-gradient() call rather than a single scalar,
// so they can't go through the generic plugin-property + infer_value
// path: angle negation has to land inside the function call, not
// prefix the call itself.
func synthesizeGradient(pc ParsedClass) ([]Declaration, bool) {
	value := pc.Value.Content
	switch pc.Plugin {
	case "bg-linear":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, false
		}
		if pc.Negative {
			n = -n
		}
		return gradientDecl(fmt.Sprintf("linear-gradient(%ddeg in oklab, var(--tw-gradient-stops))", n), pc), true

	case "bg-conic":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, false
		}
		if pc.Negative {
			n = -n
		}
		return gradientDecl(fmt.Sprintf("conic-gradient(from %ddeg in oklab, var(--tw-gradient-stops))", n), pc), true

	case "bg-linear-to", "bg-gradient-to":
		dir, ok := gradientDirections[value]
		if !ok {
			return nil, false
		}
		return gradientDecl(fmt.Sprintf("linear-gradient(%s, var(--tw-gradient-stops))", dir), pc), true
	}
	return nil, false
}

// gradientArbitrary wraps an arbitrary bg-linear-[...]/bg-radial-[...]
// value as a gradient-stops fallback; bg-conic-[...] names a whole
// background-image and is passed through unwrapped.
func gradientArbitrary(plugin, content string) (string, bool) {
	switch plugin {
	case "bg-linear":
		return fmt.Sprintf("linear-gradient(var(--tw-gradient-stops, %s))", content), true
	case "bg-radial":
		return fmt.Sprintf("radial-gradient(var(--tw-gradient-stops, %s))", content), true
	case "bg-conic":
		return content, true
	}
	return "", false
}

// gradientCSSVariable is gradientArbitrary's counterpart for the
// bg-linear-(--var) family, wrapping the already-built var() reference.
func gradientCSSVariable(plugin, ref string) (string, bool) {
	switch plugin {
	case "bg-linear":
		return fmt.Sprintf("linear-gradient(var(--tw-gradient-stops, %s))", ref), true
	case "bg-radial":
		return fmt.Sprintf("radial-gradient(var(--tw-gradient-stops, %s))", ref), true
	case "bg-conic":
		return ref, true
	}
	return "", false
}

func gradientDecl(value string, pc ParsedClass) []Declaration {
	if pc.Important {
		value += " !important"
	}
	return []Declaration{{Property: "background-image", Value: value}}
}
