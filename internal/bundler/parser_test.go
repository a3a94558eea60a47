package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass_Standard(t *testing.T) {
	pc, err := ParseClass("p-4")
	require.NoError(t, err)
	assert.Equal(t, "", pc.RawModifiers)
	assert.Empty(t, pc.Modifiers)
	assert.False(t, pc.Negative)
	assert.Equal(t, "p", pc.Plugin)
	require.NotNil(t, pc.Value)
	assert.Equal(t, ValueStandard, pc.Value.Kind)
	assert.Equal(t, "4", pc.Value.Content)
}

func TestParseClass_Modifiers(t *testing.T) {
	pc, err := ParseClass("md:hover:bg-blue-500")
	require.NoError(t, err)
	assert.Equal(t, "md:hover:", pc.RawModifiers)
	require.Len(t, pc.Modifiers, 2)
	assert.Equal(t, "md", pc.Modifiers[0].Name)
	assert.Equal(t, "hover", pc.Modifiers[1].Name)
	assert.Equal(t, "bg", pc.Plugin)
	assert.Equal(t, "blue-500", pc.Value.Content)
}

func TestParseClass_Negative(t *testing.T) {
	pc, err := ParseClass("-m-4")
	require.NoError(t, err)
	assert.True(t, pc.Negative)
	assert.Equal(t, "m", pc.Plugin)
	assert.Equal(t, "4", pc.Value.Content)
}

func TestParseClass_Important(t *testing.T) {
	pc, err := ParseClass("p-4!")
	require.NoError(t, err)
	assert.True(t, pc.Important)
	assert.Equal(t, "p", pc.Plugin)
	assert.Equal(t, "4", pc.Value.Content)
}

func TestParseClass_Alpha(t *testing.T) {
	pc, err := ParseClass("bg-blue-500/50")
	require.NoError(t, err)
	assert.Equal(t, "bg", pc.Plugin)
	assert.Equal(t, "blue-500", pc.Value.Content)
	assert.Equal(t, "50", pc.Alpha)
}

func TestParseClass_Valueless(t *testing.T) {
	pc, err := ParseClass("flex")
	require.NoError(t, err)
	assert.Equal(t, "flex", pc.Plugin)
	assert.Nil(t, pc.Value)
}

func TestParseClass_CompoundPlugin(t *testing.T) {
	pc, err := ParseClass("grid-cols-3")
	require.NoError(t, err)
	assert.Equal(t, "grid-cols", pc.Plugin)
	assert.Equal(t, "3", pc.Value.Content)
}

func TestParseClass_CompoundPluginWithMultiHyphenValue(t *testing.T) {
	pc, err := ParseClass("scroll-mt-2")
	require.NoError(t, err)
	assert.Equal(t, "scroll-mt", pc.Plugin)
	assert.Equal(t, "2", pc.Value.Content)
}

func TestParseClass_GradientDirectionCompoundPlugin(t *testing.T) {
	pc, err := ParseClass("bg-linear-to-r")
	require.NoError(t, err)
	assert.Equal(t, "bg-linear-to", pc.Plugin)
	assert.Equal(t, "r", pc.Value.Content)
}

func TestParseClass_UnknownCompoundFallsBackToFirstHyphen(t *testing.T) {
	pc, err := ParseClass("divide-gray-200")
	require.NoError(t, err)
	assert.Equal(t, "divide", pc.Plugin)
	assert.Equal(t, "gray-200", pc.Value.Content)
}

func TestParseClass_ArbitraryValue(t *testing.T) {
	pc, err := ParseClass("w-[13px]")
	require.NoError(t, err)
	assert.Equal(t, "w", pc.Plugin)
	assert.Equal(t, ValueArbitrary, pc.Value.Kind)
	assert.Equal(t, "13px", pc.Value.Content)
}

func TestParseClass_ArbitraryValueWithNestedParens(t *testing.T) {
	pc, err := ParseClass("grid-cols-[repeat(3,minmax(0,1fr))]")
	require.NoError(t, err)
	assert.Equal(t, "grid-cols", pc.Plugin)
	assert.Equal(t, "repeat(3,minmax(0,1fr))", pc.Value.Content)
}

func TestParseClass_ArbitraryValueWithUnderscoreSpaces(t *testing.T) {
	pc, err := ParseClass("grid-cols-[1fr_2fr]")
	require.NoError(t, err)
	assert.Equal(t, "1fr 2fr", pc.Value.Content)
}

func TestParseClass_ArbitraryValueEscapedUnderscore(t *testing.T) {
	pc, err := ParseClass(`content-[foo\_bar]`)
	require.NoError(t, err)
	assert.Equal(t, "foo_bar", pc.Value.Content)
}

func TestParseClass_CSSVariableValue(t *testing.T) {
	pc, err := ParseClass("bg-(--my-color)")
	require.NoError(t, err)
	assert.Equal(t, ValueCSSVariable, pc.Value.Kind)
	assert.Equal(t, "--my-color", pc.Value.Content)
	assert.Equal(t, "", pc.Value.TypeHint)
}

func TestParseClass_CSSVariableValueWithTypeHint(t *testing.T) {
	pc, err := ParseClass("bg-(image:--my-bg)")
	require.NoError(t, err)
	assert.Equal(t, ValueCSSVariable, pc.Value.Kind)
	assert.Equal(t, "--my-bg", pc.Value.Content)
	assert.Equal(t, "image", pc.Value.TypeHint)
}

func TestParseClass_ModifierWithBracketPayload(t *testing.T) {
	pc, err := ParseClass("data-[state=open]:hidden")
	require.NoError(t, err)
	assert.Equal(t, "data-[state=open]:", pc.RawModifiers)
	assert.Equal(t, "hidden", pc.Plugin)
}

func TestParseClass_FullCombination(t *testing.T) {
	pc, err := ParseClass("md:hover:-bg-blue-500/50!")
	require.NoError(t, err)
	assert.Equal(t, "md:hover:", pc.RawModifiers)
	assert.True(t, pc.Negative)
	assert.True(t, pc.Important)
	assert.Equal(t, "bg", pc.Plugin)
	assert.Equal(t, "blue-500", pc.Value.Content)
	assert.Equal(t, "50", pc.Alpha)
}

func TestParseClass_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"only modifier colon", "hover:"},
		{"only bang", "!"},
		{"only negation", "-"},
		{"empty modifier segment", ":hover:flex"},
		{"unterminated bracket", "w-[13px"},
		{"trailing content after bracket", "w-[13px]]"},
		{"empty alpha", "bg-blue-500/"},
		{"css-variable without custom property", "bg-(notavar)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClass(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseValue_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ValueKind
		content string
	}{
		{"standard", "4", ValueStandard, "4"},
		{"arbitrary", "[13px]", ValueArbitrary, "13px"},
		{"css variable", "(--x)", ValueCSSVariable, "--x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind)
			assert.Equal(t, tt.content, v.Content)
		})
	}
}

func TestUnescapeBracket(t *testing.T) {
	assert.Equal(t, "1fr 2fr", unescapeBracket("1fr_2fr"))
	assert.Equal(t, "foo_bar", unescapeBracket(`foo\_bar`))
	assert.Equal(t, "plain", unescapeBracket("plain"))
}
