package bundler

// pluginPropertyMap maps a plugin name to the single CSS property it
// sets, ported from original_source/crates/tw_index/src/plugin_map.rs.
// "text" is deliberately absent: it is semantically overloaded
// (color / font-size / text-align) and dispatched by the declaration
// synthesizer based on the shape of its value instead.
var pluginPropertyMap = map[string]string{
	"p": "padding", "pt": "padding-top", "pr": "padding-right",
	"pb": "padding-bottom", "pl": "padding-left",
	"m": "margin", "mt": "margin-top", "mr": "margin-right",
	"mb": "margin-bottom", "ml": "margin-left",

	"w": "width", "h": "height",
	"min-w": "min-width", "min-h": "min-height",
	"max-w": "max-width", "max-h": "max-height",

	"top": "top", "right": "right", "bottom": "bottom", "left": "left",
	"inset": "inset",

	"font-size": "font-size", "leading": "line-height", "tracking": "letter-spacing",

	"bg": "background", "bg-color": "background-color",

	"from": "--tw-gradient-from", "via": "--tw-gradient-via", "to": "--tw-gradient-to",

	"border": "border-width", "border-t": "border-top-width",
	"border-r": "border-right-width", "border-b": "border-bottom-width",
	"border-l": "border-left-width", "rounded": "border-radius",

	"gap": "gap", "gap-x": "column-gap", "gap-y": "row-gap",
	"grid-cols": "grid-template-columns", "grid-rows": "grid-template-rows",
	"col-span": "grid-column", "row-span": "grid-row",

	"justify": "justify-content", "justify-items": "justify-items",
	"justify-self": "justify-self", "place-content": "place-content",
	"place-items": "place-items", "place-self": "place-self",
	"align-content": "align-content", "align-self": "align-self",

	"overflow-x": "overflow-x", "overflow-y": "overflow-y",

	"object": "object-fit",

	"opacity": "opacity", "shadow": "box-shadow",

	"translate": "translate", "translate-x": "translate",
	"translate-y": "translate", "translate-z": "translate",
	"rotate": "rotate", "scale": "scale", "scale-x": "scale", "scale-y": "scale",

	"blur": "filter", "brightness": "filter", "contrast": "filter", "grayscale": "filter",

	"duration": "transition-duration", "delay": "transition-delay",

	"align": "vertical-align", "indent": "text-indent",
	"whitespace": "white-space", "hyphens": "hyphens",

	"float": "float", "clear": "clear", "columns": "columns", "basis": "flex-basis",

	"accent": "accent-color", "caret": "caret-color", "fill": "fill", "stroke": "stroke",

	"appearance": "appearance", "touch": "touch-action", "backface": "backface-visibility",

	"scroll": "scroll-behavior", "overscroll": "overscroll-behavior",
	"overscroll-x": "overscroll-behavior-x", "overscroll-y": "overscroll-behavior-y",

	"scroll-m": "scroll-margin", "scroll-mt": "scroll-margin-top",
	"scroll-mr": "scroll-margin-right", "scroll-mb": "scroll-margin-bottom",
	"scroll-ml": "scroll-margin-left",
	"scroll-p": "scroll-padding", "scroll-pt": "scroll-padding-top",
	"scroll-pr": "scroll-padding-right", "scroll-pb": "scroll-padding-bottom",
	"scroll-pl": "scroll-padding-left",

	"space-x": "column-gap", "space-y": "row-gap",

	"outline": "outline-color", "decoration": "text-decoration-color",
	"divide": "border-color", "placeholder": "color",

	"bg-linear": "background-image", "bg-linear-to": "background-image",
	"bg-gradient-to": "background-image",
	"bg-radial": "background-image", "bg-conic": "background-image",

	"scheme": "color-scheme",

	"auto-cols": "grid-auto-columns", "auto-rows": "grid-auto-rows",
	"grid-flow": "grid-auto-flow",
	"col": "grid-column", "col-start": "grid-column-start", "col-end": "grid-column-end",
	"row": "grid-row", "row-start": "grid-row-start", "row-end": "grid-row-end",

	"origin": "transform-origin", "perspective": "perspective",
	"box-decoration": "box-decoration-break",

	"break-before": "break-before", "break-after": "break-after", "break-inside": "break-inside",

	"table": "table-layout", "caption": "caption-side",

	"ease": "transition-timing-function", "will": "will-change", "transition": "transition-behavior",

	"z": "z-index", "content": "content", "aspect": "aspect-ratio",
	"flex": "flex", "grow": "flex-grow", "shrink": "flex-shrink",
	"transform": "transform", "ring": "box-shadow", "ring-offset": "box-shadow",
	"order": "order", "cursor": "cursor", "pointer-events": "pointer-events",
	"resize": "resize", "select": "user-select",
	"items": "align-items", "self": "align-self", "wrap": "overflow-wrap",
	"field": "field-sizing", "forced": "forced-color-adjust",
}

// multiPropertyMap maps a plugin name to the two CSS properties it
// sets (e.g. "px-4" -> padding-left, padding-right).
var multiPropertyMap = map[string][2]string{
	"px":        {"padding-left", "padding-right"},
	"py":        {"padding-top", "padding-bottom"},
	"mx":        {"margin-left", "margin-right"},
	"my":        {"margin-top", "margin-bottom"},
	"inset-x":   {"left", "right"},
	"inset-y":   {"top", "bottom"},
	"rounded-t": {"border-top-left-radius", "border-top-right-radius"},
	"rounded-r": {"border-top-right-radius", "border-bottom-right-radius"},
	"rounded-b": {"border-bottom-right-radius", "border-bottom-left-radius"},
	"rounded-l": {"border-top-left-radius", "border-bottom-left-radius"},
	"size":      {"width", "height"},

	"scroll-mx": {"scroll-margin-left", "scroll-margin-right"},
	"scroll-my": {"scroll-margin-top", "scroll-margin-bottom"},
	"scroll-px": {"scroll-padding-left", "scroll-padding-right"},
	"scroll-py": {"scroll-padding-top", "scroll-padding-bottom"},
}

// pluginProperties returns the CSS properties a plugin sets: one for
// most plugins, two for the axis/corner plugins in multiPropertyMap.
func pluginProperties(plugin string) ([]string, bool) {
	if pair, ok := multiPropertyMap[plugin]; ok {
		return []string{pair[0], pair[1]}, true
	}
	if prop, ok := pluginPropertyMap[plugin]; ok {
		return []string{prop}, true
	}
	return nil, false
}

func isKnownPlugin(plugin string) bool {
	_, ok := pluginPropertyMap[plugin]
	if ok {
		return true
	}
	_, ok = multiPropertyMap[plugin]
	return ok
}
