package bundler

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/zeebo/blake3"
)

// generateIdentifier derives the synthesized class name for a sorted,
// deduplicated list of input classes, per the selected NamingMode.
// Ported from original_source/crates/tw_index/src/naming.rs.
func generateIdentifier(classes []string, mode NamingMode) string {
	switch mode {
	case NamingReadable:
		return readableName(classes)
	case NamingCamelCase:
		return camelCaseName(classes)
	default:
		return hashName(classes)
	}
}

// hashName joins the classes with spaces and hashes them with
// BLAKE3, taking the first 12 hex characters.
func hashName(classes []string) string {
	return "c_" + blake3Hex(strings.Join(classes, " "))[:12]
}

func readablePrefix(class string) string {
	cleaned := strings.ReplaceAll(class, "-", "")
	if len(cleaned) > 8 {
		return cleaned[:8]
	}
	return cleaned
}

func readableName(classes []string) string {
	if len(classes) == 0 {
		return "empty"
	}
	prefixes := make([]string, len(classes))
	for i, c := range classes {
		prefixes[i] = readablePrefix(c)
	}
	combined := strings.Join(prefixes, "_")
	if len(combined) > 32 {
		return combined[:24] + "_" + blake3Hex(combined)[:6]
	}
	return combined
}

func classToCamel(class string) string {
	var b strings.Builder
	capitalizeNext := false
	for _, ch := range class {
		switch {
		case ch == '-' || ch == ':':
			capitalizeNext = true
		case capitalizeNext:
			b.WriteRune(unicode.ToUpper(ch))
			capitalizeNext = false
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func camelCaseName(classes []string) string {
	if len(classes) == 0 {
		return "empty"
	}
	var combined strings.Builder
	for i, class := range classes {
		camel := classToCamel(class)
		if i == 0 {
			combined.WriteString(camel)
			continue
		}
		if camel == "" {
			continue
		}
		r := []rune(camel)
		combined.WriteRune(unicode.ToUpper(r[0]))
		combined.WriteString(string(r[1:]))
	}
	result := combined.String()
	if len(result) > 32 {
		return result[:24] + blake3Hex(result)[:6]
	}
	return result
}

// blake3Hex hashes s with BLAKE3 and returns its lowercase hex digest.
func blake3Hex(s string) string {
	h := blake3.New()
	_, _ = h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
