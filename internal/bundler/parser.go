package bundler

import (
	"fmt"
	"strings"
)

// classParser walks a single utility-class string left to right, a
// small stateful scanner over a class token.
type classParser struct {
	src string
	pos int
}

// ParseClass parses a single utility-class token into a ParsedClass.
// It returns an error only for malformed tokens — unknown plugins or
// values are not detected here, they surface later as soft
// diagnostics from the declaration synthesizer.
func ParseClass(raw string) (ParsedClass, error) {
	if raw == "" {
		return ParsedClass{}, fmt.Errorf("bundler: empty class token")
	}

	p := &classParser{src: raw}
	pc := ParsedClass{Raw: raw}

	rawMods, rest, err := p.splitModifiers()
	if err != nil {
		return ParsedClass{}, err
	}
	pc.RawModifiers = rawMods
	if rawMods != "" {
		pc.Modifiers = parseModifiers(rawMods)
	}

	if rest == "" {
		return ParsedClass{}, fmt.Errorf("bundler: malformed class %q: empty body after modifiers", raw)
	}

	// Trailing "!important" flag.
	if strings.HasSuffix(rest, "!") {
		pc.Important = true
		rest = rest[:len(rest)-1]
		if rest == "" {
			return ParsedClass{}, fmt.Errorf("bundler: malformed class %q: nothing before '!'", raw)
		}
	}

	// Leading negation.
	if strings.HasPrefix(rest, "-") {
		pc.Negative = true
		rest = rest[1:]
		if rest == "" {
			return ParsedClass{}, fmt.Errorf("bundler: malformed class %q: nothing after '-'", raw)
		}
	}

	plugin, valuePart, alpha, err := splitPluginValueAlpha(rest)
	if err != nil {
		return ParsedClass{}, fmt.Errorf("bundler: malformed class %q: %w", raw, err)
	}
	pc.Plugin = plugin
	pc.Alpha = alpha

	if valuePart != "" {
		v, err := parseValue(valuePart)
		if err != nil {
			return ParsedClass{}, fmt.Errorf("bundler: malformed class %q: %w", raw, err)
		}
		pc.Value = &v
	}

	return pc, nil
}

// splitModifiers consumes the leading colon-separated modifier prefix
// and returns it (with a trailing colon, or "" if none) plus the
// remainder of the class. Every colon outside brackets and parentheses
// ends a modifier segment; colons inside a bracketed variant payload or
// a "(type:--var)" value are not split on. An empty segment is an error.
func (p *classParser) splitModifiers() (mods string, rest string, err error) {
	s := p.src
	var modBuilder strings.Builder
	i := 0
	for i < len(s) {
		// Find next top-level colon, tracking bracket and paren depth so
		// that colons inside a variant's [...] payload (e.g.
		// "data-[state=open]:") or a type hint (e.g. "bg-(image:--x)")
		// are not treated as separators.
		depth := 0
		j := i
		colonIdx := -1
		for j < len(s) {
			switch s[j] {
			case '[', '(':
				depth++
			case ']', ')':
				if depth > 0 {
					depth--
				}
			case ':':
				if depth == 0 {
					colonIdx = j
				}
			}
			if colonIdx != -1 {
				break
			}
			j++
		}
		if colonIdx == -1 {
			break
		}
		segment := s[i:colonIdx]
		if segment == "" {
			return "", "", fmt.Errorf("bundler: malformed class %q: empty modifier segment", p.src)
		}
		modBuilder.WriteString(segment)
		modBuilder.WriteByte(':')
		i = colonIdx + 1
	}
	return modBuilder.String(), s[i:], nil
}

// splitPluginValueAlpha splits the plugin/value/alpha
// scan: find the earliest of a bracketed-value start ("-[" or "("), a
// value-separator '-', or an alpha separator '/', consuming a
// depth-balanced arbitrary or css-variable payload whole when found.
func splitPluginValueAlpha(s string) (plugin, valuePart, alpha string, err error) {
	// A '[' or '(' not preceded by '-' still starts a bracketed value:
	// the plugin is everything before it (empty when it is at position
	// 0) and the balanced payload is the value.

	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case '[':
			end, err := findBalanced(s, i, '[', ']')
			if err != nil {
				return "", "", "", err
			}
			err = scanAlpha(s, end+1, &alpha)
			return trimTrailingHyphen(s[:i]), s[i : end+1], alpha, err
		case '(':
			end, err := findBalanced(s, i, '(', ')')
			if err != nil {
				return "", "", "", err
			}
			err = scanAlpha(s, end+1, &alpha)
			return trimTrailingHyphen(s[:i]), s[i : end+1], alpha, err
		case '/':
			alpha = s[i+1:]
			if alpha == "" {
				return "", "", "", fmt.Errorf("empty alpha after '/'")
			}
			// Everything before the '/' splits into plugin and value as
			// usual (e.g. "bg-blue-500/50" -> "bg", "blue-500", "50").
			plugin, valuePart, _, err = splitPluginValueAlpha(trimTrailingHyphen(s[:i]))
			return plugin, valuePart, alpha, err
		case '-':
			// Peek ahead: does this hyphen introduce a bracket or
			// paren value directly ("-[" / "-(")? If so the value
			// starts at the bracket, not the hyphen.
			if i+1 < len(s) && (s[i+1] == '[' || s[i+1] == '(') {
				open := s[i+1]
				close := byte(']')
				if open == '(' {
					close = ')'
				}
				end, err := findBalanced(s, i+1, open, close)
				if err != nil {
					return "", "", "", err
				}
				err = scanAlpha(s, end+1, &alpha)
				return s[:i], s[i+1 : end+1], alpha, err
			}
			// Otherwise this is an ordinary value-separating hyphen;
			// keep scanning, the plugin/value boundary for the
			// remainder is resolved below by the compound-plugin-aware
			// fallback once no bracket/paren/alpha turns up.
		}
		i++
	}

	// No bracket, paren, or '/' found. Multi-segment values (color
	// scale steps like "blue-500", corner keywords like "top-left")
	// contain hyphens too, so check candidate split points from the
	// right and prefer the longest one that names a recognized
	// compound plugin (e.g. "grid-cols", "scroll-mt", "bg-linear-to");
	// otherwise split on the first hyphen and leave the rest, however
	// many hyphens it contains, as the value.
	var hyphens []int
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			hyphens = append(hyphens, i)
		}
	}
	for i := len(hyphens) - 1; i >= 0; i-- {
		idx := hyphens[i]
		if idx >= len(s)-1 {
			continue
		}
		candidate := s[:idx]
		if strings.Contains(candidate, "-") && isKnownPlugin(candidate) {
			return candidate, s[idx+1:], "", nil
		}
	}
	if len(hyphens) > 0 && hyphens[0] < len(s)-1 {
		return s[:hyphens[0]], s[hyphens[0]+1:], "", nil
	}
	return s, "", "", nil
}

func scanAlpha(s string, from int, alpha *string) error {
	if from >= len(s) {
		return nil
	}
	if s[from] != '/' {
		return fmt.Errorf("unexpected trailing content %q", s[from:])
	}
	a := s[from+1:]
	if a == "" {
		return fmt.Errorf("empty alpha after '/'")
	}
	*alpha = a
	return nil
}

func trimTrailingHyphen(s string) string {
	return strings.TrimSuffix(s, "-")
}

// findBalanced returns the index of the closing bracket/paren that
// balances the opener at src[openIdx], tracking nested occurrences of
// BOTH '[' '/' ']' and '(' '/' ')' regardless of which pair opened
// (needed for values like "grid-cols-[repeat(3,minmax(0,1fr))]").
func findBalanced(s string, openIdx int, open, close byte) (int, error) {
	depth := 0
	for i := openIdx; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth == 0 {
				return i, nil
			}
			if depth < 0 {
				return -1, fmt.Errorf("unbalanced brackets at position %d", i)
			}
		}
	}
	return -1, fmt.Errorf("unterminated bracket starting at position %d", openIdx)
}

// parseValue classifies a value payload as Standard, Arbitrary
// ("[...]") or CssVariable ("(...)").
func parseValue(s string) (ParsedValue, error) {
	switch {
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		content := unescapeBracket(s[1 : len(s)-1])
		return ParsedValue{Kind: ValueArbitrary, Raw: s, Content: content}, nil
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		inner := s[1 : len(s)-1]
		hint, prop := "", inner
		if idx := strings.IndexByte(inner, ':'); idx >= 0 && !strings.HasPrefix(inner[:idx], "--") {
			hint = inner[:idx]
			prop = inner[idx+1:]
		}
		if !strings.HasPrefix(prop, "--") {
			return ParsedValue{}, fmt.Errorf("css-variable value %q must reference a custom property", s)
		}
		return ParsedValue{Kind: ValueCSSVariable, Raw: s, Content: prop, TypeHint: hint}, nil
	default:
		return ParsedValue{Kind: ValueStandard, Raw: s, Content: s}, nil
	}
}

// unescapeBracket converts underscore-encoded spaces inside bracketed
// content back to literal spaces, honoring "\_" as an escape for a
// literal underscore. Applied uniformly to arbitrary values and
// variant bracket payloads alike.
func unescapeBracket(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == '_' {
			b.WriteRune('_')
			i++
			continue
		}
		if runes[i] == '_' {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
