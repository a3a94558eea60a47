package bundler

import (
	"fmt"
	"sort"
)

// Bundle parses, resolves, and synthesizes CSS for a set of utility
// classes, producing a single synthesized class identifier plus the
// stylesheet rules for it. Grounded on
// original_source/crates/tw_index/src/bundler.rs's bundle_to_context /
// bundle_to_css pipeline, adapted to Go's explicit-error-return style.
func Bundle(classes []string, opts BundleOptions) BundleResult {
	uniq := dedupeSorted(classes)

	ctx := NewClassContext()
	var diags []Diagnostic
	var kept []string

	for _, class := range uniq {
		pc, err := ParseClass(class)
		if err != nil {
			diags = append(diags, Diagnostic{Level: DiagLevelWarning, Message: err.Error()})
			if opts.UnknownClasses == UnknownClassesError {
				diags = append(diags, Diagnostic{Level: DiagLevelError, Message: fmt.Sprintf("rejecting bundle: %v", err)})
				return BundleResult{Diagnostics: diags}
			}
			continue
		}

		decls, classDiags := synthesizeDeclarations(pc, opts)
		if len(classDiags) > 0 {
			switch opts.UnknownClasses {
			case UnknownClassesIgnore:
				// swallow diagnostics and skip
				if len(decls) == 0 {
					continue
				}
			case UnknownClassesError:
				diags = append(diags, classDiags...)
				if len(decls) == 0 {
					diags = append(diags, Diagnostic{Level: DiagLevelError, Message: fmt.Sprintf("rejecting bundle: unknown class %q", class)})
					return BundleResult{Diagnostics: diags}
				}
			default:
				diags = append(diags, classDiags...)
			}
		}
		if len(decls) == 0 {
			continue
		}

		if opts.CSSVariables == CSSVariablesInline {
			decls = inlineThemeReferences(decls)
		}

		ctx.Write(pc.RawModifiers, decls)
		kept = append(kept, class)
	}

	identifier := generateIdentifier(kept, opts.NamingMode)
	selector := "." + identifier

	rules, err := ctx.buildRules(selector)
	if err != nil {
		diags = append(diags, Diagnostic{Level: DiagLevelError, Message: err.Error()})
		return BundleResult{Identifier: identifier, Diagnostics: diags}
	}

	css := emitStylesheet(rules, opts.OutputMode)

	return BundleResult{
		Identifier:            identifier,
		CSS:                   css,
		DeclarationsByVariant: byVariant(ctx),
		Diagnostics:           diags,
	}
}

// IsRecognized reports whether a single class token both parses and
// resolves to at least one declaration, without producing a bundle.
// Grounded on original_source/crates/tw_index/src/bundler.rs's
// is_recognized.
func IsRecognized(class string) bool {
	pc, err := ParseClass(class)
	if err != nil {
		return false
	}
	decls, _ := synthesizeDeclarations(pc, BundleOptions{})
	return len(decls) > 0
}

func dedupeSorted(classes []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func byVariant(ctx *ClassContext) map[string][]Declaration {
	out := make(map[string][]Declaration, len(ctx.groups))
	for k, v := range ctx.groups {
		out[k] = lastWins(v)
	}
	return out
}
