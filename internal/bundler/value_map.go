package bundler

import (
	"fmt"
	"strconv"
	"strings"
)

// inferValue resolves a plugin+value pair (the "standard value"
// branch of the declaration synthesizer) to a CSS value string, or
// reports that the pair has no known inference. Ported from
// original_source/crates/tw_index/src/value_map.rs's infer_value
// match.
func inferValue(plugin, value string, mode ColorMode, mix bool) (string, bool) {
	switch plugin {
	case "p", "px", "py", "pt", "pr", "pb", "pl",
		"m", "mx", "my", "mt", "mr", "mb", "ml",
		"gap", "gap-x", "gap-y", "indent",
		"top", "right", "bottom", "left", "inset", "inset-x", "inset-y",
		"border-t", "border-r", "border-b", "border-l",
		"scroll-m", "scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml", "scroll-mx", "scroll-my",
		"scroll-p", "scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl", "scroll-px", "scroll-py",
		"space-x", "space-y":
		return getSpacingValue(value)

	case "w", "min-w", "max-w":
		switch value {
		case "screen":
			return "100vw", true
		case "none":
			if plugin != "w" {
				return "none", true
			}
		}
		if v, ok := getContainerSize(value); ok {
			return v, true
		}
		return getSpacingValue(value)

	case "h", "min-h", "max-h":
		switch value {
		case "screen":
			return "100vh", true
		case "none":
			if plugin != "h" {
				return "none", true
			}
		case "lh":
			return "1lh", true
		}
		return getSpacingValue(value)

	case "size":
		if value == "auto" {
			return "auto", true
		}
		return getSpacingValue(value)

	case "bg":
		if v, ok := renderColor(value, "", mode, mix); ok {
			return v, true
		}
		return getSpacingValue(value)

	case "text":
		return renderColor(value, "", mode, mix)

	case "from", "via", "to":
		return renderColor(value, "", mode, mix)

	case "border":
		if v, ok := renderColor(value, "", mode, mix); ok {
			return v, true
		}
		return getSpacingValue(value)

	case "accent", "caret", "fill", "stroke":
		return renderColor(value, "", mode, mix)

	case "ring", "ring-offset", "divide", "decoration", "outline", "placeholder":
		if v, ok := renderColor(value, "", mode, mix); ok {
			return v, true
		}
		return getSpacingValue(value)

	case "opacity", "bg-opacity", "text-opacity", "border-opacity":
		return getOpacityValue(value)

	case "rounded", "rounded-t", "rounded-r", "rounded-b", "rounded-l":
		v, ok := radiusScale[value]
		return v, ok

	case "justify":
		return alignKeyword(value, true)
	case "place-content", "place-items", "place-self":
		return placeKeyword(value)
	case "items", "self":
		return itemsKeyword(value)
	case "align", "align-content", "align-self":
		return value, true

	case "overflow-x", "overflow-y", "cursor", "touch", "whitespace", "hyphens", "appearance":
		return value, true

	case "float", "clear":
		switch value {
		case "start":
			return "inline-start", true
		case "end":
			return "inline-end", true
		}
		return value, true

	case "backface", "scroll", "overscroll", "overscroll-x", "overscroll-y":
		return value, true

	case "scheme":
		switch value {
		case "light-dark":
			return "light dark", true
		}
		return value, true

	case "basis":
		switch value {
		case "auto":
			return "auto", true
		case "full":
			return "100%", true
		}
		if v, ok := getContainerSize(value); ok {
			return v, true
		}
		return getSpacingValue(value)

	case "columns":
		if value == "auto" {
			return "auto", true
		}
		if v, ok := getContainerSize(value); ok {
			return v, true
		}
		if _, err := strconv.Atoi(value); err == nil {
			return value, true
		}
		return "", false

	case "grid-cols", "grid-rows":
		if value == "none" || value == "subgrid" {
			return value, true
		}
		if n, err := strconv.Atoi(value); err == nil {
			return fmt.Sprintf("repeat(%d, minmax(0, 1fr))", n), true
		}
		return "", false

	case "grid-flow":
		switch value {
		case "col":
			return "column", true
		case "col-dense":
			return "column dense", true
		case "row-dense":
			return "row dense", true
		}
		return value, true

	case "auto-cols", "auto-rows":
		switch value {
		case "auto", "min", "max":
			return value, true
		case "fr":
			return "minmax(0, 1fr)", true
		}
		return "", false

	case "col", "row":
		if value == "auto" {
			return "auto", true
		}
		return "", false

	case "col-span", "row-span":
		if value == "full" {
			return "1 / -1", true
		}
		if _, err := strconv.Atoi(value); err == nil {
			return fmt.Sprintf("span %s / span %s", value, value), true
		}
		return "", false

	case "col-start", "col-end", "row-start", "row-end":
		if value == "auto" {
			return "auto", true
		}
		if _, err := strconv.Atoi(value); err == nil {
			return value, true
		}
		return "", false

	case "origin":
		return strings.ReplaceAll(value, "-", " "), true

	case "table", "caption":
		return value, true

	case "ease":
		if value == "linear" || value == "initial" {
			return value, true
		}
		return "var(--ease-" + value + ")", true

	case "will":
		switch value {
		case "change-auto":
			return "auto", true
		case "change-contents":
			return "contents", true
		case "change-scroll-position":
			return "scroll-position", true
		case "change-transform":
			return "transform", true
		}
		return value, true

	case "transition":
		if value == "discrete" {
			return "allow-discrete", true
		}
		return "", false

	case "break-before", "break-after", "break-inside", "wrap", "select":
		return value, true

	case "resize":
		switch value {
		case "x":
			return "horizontal", true
		case "y":
			return "vertical", true
		}
		return value, true

	case "flex":
		switch value {
		case "auto", "none":
			return value, true
		case "initial":
			return "0 auto", true
		}
		return "", false

	case "z":
		if value == "auto" {
			return "auto", true
		}
		if _, err := strconv.Atoi(value); err == nil {
			return value, true
		}
		return "", false

	case "order":
		switch value {
		case "first":
			return "-9999", true
		case "last":
			return "9999", true
		case "none":
			return "0", true
		}
		if _, err := strconv.Atoi(value); err == nil {
			return value, true
		}
		return "", false

	case "leading":
		if value == "none" {
			return "1", true
		}
		return "var(--leading-" + value + ")", true

	case "tracking":
		return "var(--tracking-" + value + ")", true

	case "duration", "delay":
		if value == "initial" {
			return value, true
		}
		if _, err := strconv.Atoi(value); err == nil {
			return value + "ms", true
		}
		return "", false

	case "grow", "shrink":
		if _, err := strconv.Atoi(value); err == nil {
			return value, true
		}
		return "", false

	case "rotate":
		if value == "none" {
			return "none", true
		}
		return value + "deg", true

	case "perspective":
		if value == "none" {
			return "none", true
		}
		if strings.HasPrefix(value, "origin-") {
			return "", false
		}
		return "var(--perspective-" + value + ")", true

	case "field":
		switch value {
		case "sizing-content":
			return "content", true
		case "sizing-fixed":
			return "fixed", true
		}
		return "", false

	case "forced":
		switch value {
		case "color-adjust-auto":
			return "auto", true
		case "color-adjust-none":
			return "none", true
		}
		return "", false

	case "box-decoration":
		return value, true

	case "font-size":
		v, ok := textSize[value]
		return v, ok
	case "leading-size":
		v, ok := textLineHeight[value]
		return v, ok
	case "font":
		v, ok := fontFamily[value]
		return v, ok
	case "blur", "backdrop-blur":
		v, ok := blurSize[value]
		if ok && v == "" {
			return "none", true
		}
		return v, ok

	default:
		return "", false
	}
}

// alignKeyword remaps a "justify" alignment keyword to its full CSS
// value; justify-content gets flex-start/flex-end specifically, while
// place-*/items-*/self-* share a different remap table
// (itemsKeyword/placeKeyword below).
func alignKeyword(value string, isJustify bool) (string, bool) {
	switch value {
	case "start":
		if isJustify {
			return "flex-start", true
		}
		return "start", true
	case "end":
		if isJustify {
			return "flex-end", true
		}
		return "end", true
	case "center", "between", "around", "evenly", "stretch", "normal", "baseline":
		return value, true
	case "center-safe":
		return "safe center", true
	case "end-safe":
		return "safe end", true
	default:
		return value, true
	}
}

func placeKeyword(value string) (string, bool) {
	switch value {
	case "start", "end", "center", "between", "around", "evenly", "stretch", "baseline":
		return value, true
	case "center-safe":
		return "safe center", true
	case "end-safe":
		return "safe end", true
	default:
		return value, true
	}
}

func itemsKeyword(value string) (string, bool) {
	switch value {
	case "start":
		return "flex-start", true
	case "end":
		return "flex-end", true
	case "center", "baseline", "stretch", "normal":
		return value, true
	case "center-safe":
		return "safe center", true
	case "end-safe":
		return "safe end", true
	default:
		return value, true
	}
}
