package mathml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mathml "github.com/texmath/go-mathml"
)

func TestDecodeOptions(t *testing.T) {
	options := mathml.OptionMap{
		"bold-variant":                "bold",
		"light-variant":               "true", // weakly typed, as it arrives from an overlay
		"auto-load-companion-package": []any{"text", "extarrows"},
		"unrecognized":                42,
	}

	out, err := mathml.DecodeOptions(options)
	require.NoError(t, err)

	assert.Equal(t, "bold", out.BoldVariant)
	assert.True(t, out.LightVariant)
	assert.Equal(t, []string{"text", "extarrows"}, out.AutoLoad)
}

func TestDecodeOptionsEmpty(t *testing.T) {
	out, err := mathml.DecodeOptions(mathml.OptionMap{})
	require.NoError(t, err)

	assert.Equal(t, &mathml.Options{}, out)
}

func TestUnmarshalOptions(t *testing.T) {
	out, err := mathml.UnmarshalOptions([]byte(`
bold-variant: bold
auto-load-companion-package: [text]
fonts:
  weight: regular
`))

	require.NoError(t, err)

	assert.Equal(t, "bold", out["bold-variant"])
	assert.Equal(t, []any{"text"}, out["auto-load-companion-package"])

	nested, ok := out["fonts"].(mathml.OptionMap)
	require.True(t, ok, "nested maps must be normalized to OptionMap")
	assert.Equal(t, "regular", nested["weight"])
}

func TestPackages(t *testing.T) {
	tt := []struct {
		input  string
		output []string
	}{
		{input: "base, extarrows", output: []string{"base", "extarrows"}},
		{input: "base", output: []string{"base"}},
		{input: " base ,, text ", output: []string{"base", "text"}},
		{input: "", output: nil},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.output, mathml.Packages(tc.input), "input: %q", tc.input)
	}
}
