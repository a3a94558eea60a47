package bundler

import (
	"regexp"
	"sort"
	"strings"
)

// cssRule is a single leaf CSS rule together with the ordered chain
// of at-rules (outermost first) it must be nested inside.
type cssRule struct {
	atRules  []string
	selector string
	decls    []Declaration
}

var varRefPattern = regexp.MustCompile(`var\((--[a-zA-Z0-9-]+)\)`)

// emitStylesheet renders a set of rules to CSS text: two-space
// indent, at-rule nesting for breakpoints/containers/supports, and a
// :root preamble containing exactly the theme variables referenced by
// the body and resolvable against the theme tables.
func emitStylesheet(rules []cssRule, mode OutputMode) string {
	var body strings.Builder
	for i, rule := range rules {
		if i > 0 {
			if mode == OutputPretty {
				body.WriteString("\n")
			}
		}
		emitRule(&body, rule, mode)
	}
	bodyText := body.String()

	root := rootBlock(bodyText, mode)
	if root == "" {
		return bodyText
	}
	if mode == OutputCompact {
		return root + bodyText
	}
	return root + "\n" + bodyText
}

func emitRule(w *strings.Builder, rule cssRule, mode OutputMode) {
	nl, indentUnit := "\n", "  "
	if mode == OutputCompact {
		nl, indentUnit = "", ""
	}

	depth := 0
	for _, ar := range rule.atRules {
		w.WriteString(strings.Repeat(indentUnit, depth))
		w.WriteString(ar)
		w.WriteString(" {")
		w.WriteString(nl)
		depth++
	}

	w.WriteString(strings.Repeat(indentUnit, depth))
	w.WriteString(rule.selector)
	w.WriteString(" {")
	w.WriteString(nl)
	for _, d := range rule.decls {
		w.WriteString(strings.Repeat(indentUnit, depth+1))
		w.WriteString(d.Property)
		w.WriteString(": ")
		w.WriteString(d.Value)
		w.WriteString(";")
		w.WriteString(nl)
	}
	w.WriteString(strings.Repeat(indentUnit, depth))
	w.WriteString("}")
	w.WriteString(nl)

	for depth > 0 {
		depth--
		w.WriteString(strings.Repeat(indentUnit, depth))
		w.WriteString("}")
		w.WriteString(nl)
	}
}

// rootBlock scans body for var(--name) references and emits a :root
// block containing every referenced name that resolves against the
// theme tables. Names referenced but not resolvable are left as bare
// var() references with no :root entry.
func rootBlock(body string, mode OutputMode) string {
	seen := map[string]bool{}
	var names []string
	for _, m := range varRefPattern.FindAllStringSubmatch(body, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		if _, ok := themeReferenceValue(name); ok {
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	nl, indentUnit := "\n", "  "
	if mode == OutputCompact {
		nl, indentUnit = "", ""
	}
	var b strings.Builder
	b.WriteString(":root {")
	b.WriteString(nl)
	for _, name := range names {
		v, _ := themeReferenceValue(name)
		b.WriteString(indentUnit)
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString(";")
		b.WriteString(nl)
	}
	b.WriteString("}")
	b.WriteString(nl)
	return b.String()
}

// inlineThemeReferences rewrites var(--name) occurrences in decls to
// their concrete theme value, used when BundleOptions.CSSVariables is
// CSSVariablesInline.
func inlineThemeReferences(decls []Declaration) []Declaration {
	out := make([]Declaration, len(decls))
	for i, d := range decls {
		out[i] = Declaration{
			Property: d.Property,
			Value: varRefPattern.ReplaceAllStringFunc(d.Value, func(m string) string {
				sub := varRefPattern.FindStringSubmatch(m)
				if v, ok := themeReferenceValue(sub[1]); ok {
					return v
				}
				return m
			}),
		}
	}
	return out
}
