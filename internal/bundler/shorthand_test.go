package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeShorthands_AllEqualCollapsesToOne(t *testing.T) {
	decls := []Declaration{
		{Property: "padding-top", Value: "1rem"},
		{Property: "padding-right", Value: "1rem"},
		{Property: "padding-bottom", Value: "1rem"},
		{Property: "padding-left", Value: "1rem"},
	}
	got := optimizeShorthands(decls)
	assert.Equal(t, []Declaration{{Property: "padding", Value: "1rem"}}, got)
}

func TestOptimizeShorthands_TopBottomLeftRightPairs(t *testing.T) {
	decls := []Declaration{
		{Property: "margin-top", Value: "1rem"},
		{Property: "margin-right", Value: "2rem"},
		{Property: "margin-bottom", Value: "1rem"},
		{Property: "margin-left", Value: "2rem"},
	}
	got := optimizeShorthands(decls)
	assert.Equal(t, []Declaration{{Property: "margin", Value: "1rem 2rem"}}, got)
}

func TestOptimizeShorthands_AllFourDistinct(t *testing.T) {
	decls := []Declaration{
		{Property: "top", Value: "1px"},
		{Property: "right", Value: "2px"},
		{Property: "bottom", Value: "3px"},
		{Property: "left", Value: "4px"},
	}
	got := optimizeShorthands(decls)
	assert.Equal(t, []Declaration{{Property: "inset", Value: "1px 2px 3px 4px"}}, got)
}

func TestOptimizeShorthands_PartialGroupNotFolded(t *testing.T) {
	decls := []Declaration{
		{Property: "padding-top", Value: "1rem"},
		{Property: "padding-right", Value: "1rem"},
		{Property: "padding-bottom", Value: "1rem"},
	}
	got := optimizeShorthands(decls)
	assert.Equal(t, decls, got)
}

func TestOptimizeShorthands_MixedImportanceNotFolded(t *testing.T) {
	decls := []Declaration{
		{Property: "padding-top", Value: "1rem !important"},
		{Property: "padding-right", Value: "1rem"},
		{Property: "padding-bottom", Value: "1rem"},
		{Property: "padding-left", Value: "1rem"},
	}
	got := optimizeShorthands(decls)
	assert.Equal(t, decls, got)
}

func TestOptimizeShorthands_AllImportantFolds(t *testing.T) {
	decls := []Declaration{
		{Property: "padding-top", Value: "1rem !important"},
		{Property: "padding-right", Value: "1rem !important"},
		{Property: "padding-bottom", Value: "1rem !important"},
		{Property: "padding-left", Value: "1rem !important"},
	}
	got := optimizeShorthands(decls)
	assert.Equal(t, []Declaration{{Property: "padding", Value: "1rem !important"}}, got)
}

func TestOptimizeShorthands_TwoValueGroup(t *testing.T) {
	decls := []Declaration{
		{Property: "row-gap", Value: "1rem"},
		{Property: "column-gap", Value: "1rem"},
	}
	got := optimizeShorthands(decls)
	assert.Equal(t, []Declaration{{Property: "gap", Value: "1rem"}}, got)
}

func TestOptimizeShorthands_UnrelatedDeclarationsPreserved(t *testing.T) {
	decls := []Declaration{
		{Property: "color", Value: "red"},
		{Property: "padding-top", Value: "1rem"},
		{Property: "padding-right", Value: "1rem"},
		{Property: "padding-bottom", Value: "1rem"},
		{Property: "padding-left", Value: "1rem"},
	}
	got := optimizeShorthands(decls)
	assert.Equal(t, []Declaration{
		{Property: "color", Value: "red"},
		{Property: "padding", Value: "1rem"},
	}, got)
}

func TestOptimizeShorthands_EmptyInput(t *testing.T) {
	got := optimizeShorthands(nil)
	assert.Nil(t, got)
}

func TestCompressTRBL(t *testing.T) {
	assert.Equal(t, "1rem", compressTRBL([]string{"1rem", "1rem", "1rem", "1rem"}))
	assert.Equal(t, "1rem 2rem", compressTRBL([]string{"1rem", "2rem", "1rem", "2rem"}))
	assert.Equal(t, "1rem 2rem 3rem", compressTRBL([]string{"1rem", "2rem", "3rem", "2rem"}))
	assert.Equal(t, "1rem 2rem 3rem 4rem", compressTRBL([]string{"1rem", "2rem", "3rem", "4rem"}))
}

func TestCompressTwoValue(t *testing.T) {
	assert.Equal(t, "1rem", compressTwoValue([]string{"1rem", "1rem"}))
	assert.Equal(t, "1rem 2rem", compressTwoValue([]string{"1rem", "2rem"}))
}
