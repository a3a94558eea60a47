package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeSorted(t *testing.T) {
	got := dedupeSorted([]string{"p-4", "m-2", "p-4", "", "m-2"})
	assert.Equal(t, []string{"m-2", "p-4"}, got)
}

func TestBundle_SingleClass(t *testing.T) {
	result := Bundle([]string{"flex"}, BundleOptions{})
	assert.Empty(t, result.Diagnostics)
	assert.NotEmpty(t, result.Identifier)
	assert.Contains(t, result.CSS, "display: flex;")
	assert.Contains(t, result.CSS, result.Identifier)
}

func TestBundle_MultipleClassesSameGroup(t *testing.T) {
	result := Bundle([]string{"flex", "p-4"}, BundleOptions{})
	assert.Empty(t, result.Diagnostics)
	assert.Contains(t, result.CSS, "display: flex;")
	assert.Contains(t, result.CSS, "padding: 1rem;")
}

func TestBundle_ModifierGroupsSeparateRules(t *testing.T) {
	result := Bundle([]string{"flex", "hover:block"}, BundleOptions{})
	byVariant := result.DeclarationsByVariant
	require.Contains(t, byVariant, "")
	require.Contains(t, byVariant, "hover:")
	assert.Equal(t, []Declaration{{Property: "display", Value: "flex"}}, byVariant[""])
	assert.Equal(t, []Declaration{{Property: "display", Value: "block"}}, byVariant["hover:"])
}

func TestBundle_LastWinsWithinGroup(t *testing.T) {
	result := Bundle([]string{"p-2", "p-4"}, BundleOptions{})
	assert.Equal(t, []Declaration{{Property: "padding", Value: "1rem"}}, result.DeclarationsByVariant[""])
}

func TestBundle_Deterministic(t *testing.T) {
	a := Bundle([]string{"flex", "p-4", "hover:bg-blue-500"}, BundleOptions{})
	b := Bundle([]string{"hover:bg-blue-500", "p-4", "flex"}, BundleOptions{})
	assert.Equal(t, a.Identifier, b.Identifier)
	assert.Equal(t, a.CSS, b.CSS)
}

func TestBundle_UnknownClassWarn(t *testing.T) {
	result := Bundle([]string{"flex", "totally-bogus-utility"}, BundleOptions{})
	require.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, DiagLevelWarning, result.Diagnostics[0].Level)
	assert.Contains(t, result.CSS, "display: flex;")
}

func TestBundle_UnknownClassIgnore(t *testing.T) {
	result := Bundle([]string{"flex", "totally-bogus-utility"}, BundleOptions{UnknownClasses: UnknownClassesIgnore})
	assert.Empty(t, result.Diagnostics)
	assert.Contains(t, result.CSS, "display: flex;")
}

func TestBundle_UnknownClassError(t *testing.T) {
	result := Bundle([]string{"flex", "totally-bogus-utility"}, BundleOptions{UnknownClasses: UnknownClassesError})
	require.NotEmpty(t, result.Diagnostics)
	hasError := false
	for _, d := range result.Diagnostics {
		if d.Level == DiagLevelError {
			hasError = true
		}
	}
	assert.True(t, hasError)
	assert.Empty(t, result.CSS)
}

func TestBundle_MalformedClassErrorMode(t *testing.T) {
	result := Bundle([]string{"w-[13px"}, BundleOptions{UnknownClasses: UnknownClassesError})
	assert.Empty(t, result.Identifier)
}

func TestBundle_CSSVariablesInline(t *testing.T) {
	result := Bundle([]string{"font-size-lg"}, BundleOptions{})
	_ = result

	result2 := Bundle([]string{"max-w-md"}, BundleOptions{CSSVariables: CSSVariablesInline})
	assert.NotContains(t, result2.CSS, "var(")
}

func TestIsRecognized(t *testing.T) {
	assert.True(t, IsRecognized("p-4"))
	assert.True(t, IsRecognized("flex"))
	assert.False(t, IsRecognized("totally-bogus-utility"))
	assert.False(t, IsRecognized(""))
}

func TestByVariant(t *testing.T) {
	ctx := NewClassContext()
	ctx.Write("", []Declaration{{Property: "color", Value: "red"}, {Property: "color", Value: "blue"}})
	got := byVariant(ctx)
	assert.Equal(t, []Declaration{{Property: "color", Value: "blue"}}, got[""])
}
