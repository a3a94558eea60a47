package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashName(t *testing.T) {
	name := hashName([]string{"p-4", "bg-blue-500"})
	assert.Len(t, name, 14)
	assert.Equal(t, "c_", name[:2])

	// deterministic
	assert.Equal(t, name, hashName([]string{"p-4", "bg-blue-500"}))

	// different inputs produce different names
	other := hashName([]string{"p-4"})
	assert.NotEqual(t, name, other)
}

func TestReadableName(t *testing.T) {
	assert.Equal(t, "p4", readableName([]string{"p-4"}))
	assert.Equal(t, "p4_m2", readableName([]string{"p-4", "m-2"}))
	assert.Equal(t, "empty", readableName(nil))
}

func TestReadableName_LongCombinedTruncates(t *testing.T) {
	classes := []string{
		"padding-top-really-long-utility-name",
		"margin-bottom-really-long-utility-name",
		"background-color-really-long-utility-name",
		"border-radius-really-long-utility-name",
	}
	got := readableName(classes)
	assert.LessOrEqual(t, len(got), 32)
	assert.Contains(t, got, "_")
}

func TestCamelCaseName(t *testing.T) {
	assert.Equal(t, "p4", camelCaseName([]string{"p-4"}))
	assert.Equal(t, "p4M2", camelCaseName([]string{"p-4", "m-2"}))
	assert.Equal(t, "empty", camelCaseName(nil))
}

func TestGenerateIdentifier_Modes(t *testing.T) {
	classes := []string{"p-4"}

	hash := generateIdentifier(classes, NamingHash)
	assert.Len(t, hash, 14)

	readable := generateIdentifier(classes, NamingReadable)
	assert.Equal(t, "p4", readable)

	camel := generateIdentifier(classes, NamingCamelCase)
	assert.Equal(t, "p4", camel)
}

func TestBlake3Hex_Deterministic(t *testing.T) {
	a := blake3Hex("hello")
	b := blake3Hex("hello")
	require.Equal(t, a, b)
	assert.NotEqual(t, a, blake3Hex("world"))
}
