package bundler

import "sort"

// ClassContext accumulates the declarations synthesized for every
// parsed class of a single Bundle call, grouped by raw modifier
// prefix, then renders the grouped declarations to CSS.
type ClassContext struct {
	groups map[string][]Declaration
}

// NewClassContext returns an empty context.
func NewClassContext() *ClassContext {
	return &ClassContext{groups: map[string][]Declaration{}}
}

// Write merges declarations into the group keyed by rawModifiers.
// Classes sharing the same raw modifier prefix accumulate into one
// group; within a group, a later declaration on the same property
// overrides an earlier one, applied by lastWins when the group is
// read (buildRules, byVariant).
func (c *ClassContext) Write(rawModifiers string, decls []Declaration) {
	c.groups[rawModifiers] = append(c.groups[rawModifiers], decls...)
}

// sortedKeys returns the group keys in emission order: the base group
// ("") first, then every modifier group lexicographically, matching
// context.rs's to_css ordering.
func (c *ClassContext) sortedKeys() []string {
	keys := make([]string, 0, len(c.groups))
	for k := range c.groups {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return append([]string{""}, keys...)
}

// lastWins collapses a group's declarations so that, for each
// property, only the last-written value survives, preserving the
// first-seen position for stable output ordering.
func lastWins(decls []Declaration) []Declaration {
	order := make([]string, 0, len(decls))
	seen := map[string]int{}
	values := map[string]string{}
	for _, d := range decls {
		if _, ok := seen[d.Property]; !ok {
			seen[d.Property] = len(order)
			order = append(order, d.Property)
		}
		values[d.Property] = d.Value
	}
	out := make([]Declaration, len(order))
	for i, p := range order {
		out[i] = Declaration{Property: p, Value: values[p]}
	}
	return out
}

// buildRules resolves every group into a renderable cssRule, folding
// shorthands and resolving that group's raw modifier key into an
// ordered list of at-rule wrappers plus a composed selector.
func (c *ClassContext) buildRules(baseSelector string) ([]cssRule, error) {
	var rules []cssRule
	for _, key := range c.sortedKeys() {
		decls := optimizeShorthands(lastWins(c.groups[key]))
		if len(decls) == 0 {
			continue
		}
		if key == "" {
			rules = append(rules, cssRule{selector: baseSelector, decls: decls})
			continue
		}
		mods := parseModifiers(key)
		resolved, err := resolveVariants(mods)
		if err != nil {
			return nil, err
		}
		selector := baseSelector
		for _, m := range resolved.selectors {
			selector = applySelectorMod(selector, m)
		}
		rules = append(rules, cssRule{atRules: resolved.atRules, selector: selector, decls: decls})
	}
	return rules, nil
}
