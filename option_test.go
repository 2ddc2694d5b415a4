package mathml_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	mathml "github.com/texmath/go-mathml"
)

func TestMergeOptions(t *testing.T) {
	tt := []struct {
		name      string
		base      mathml.OptionMap
		overrides mathml.OptionMap
		output    mathml.OptionMap
	}{
		{
			name:      "scalar replace",
			base:      mathml.OptionMap{"bold-variant": "bold"},
			overrides: mathml.OptionMap{"bold-variant": "sans-serif"},
			output:    mathml.OptionMap{"bold-variant": "sans-serif"},
		},
		{
			name:      "new key",
			base:      mathml.OptionMap{"bold-variant": "bold"},
			overrides: mathml.OptionMap{"light-variant": true},
			output:    mathml.OptionMap{"bold-variant": "bold", "light-variant": true},
		},
		{
			name: "append preserves first seen order",
			base: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
			overrides: mathml.OptionMap{
				"auto-load-companion-package": mathml.ListPatch{Directive: mathml.Append, Values: []any{"bold", "extarrows"}},
			},
			output: mathml.OptionMap{"auto-load-companion-package": []any{"text", "bold", "extarrows"}},
		},
		{
			name: "append deduplicates",
			base: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
			overrides: mathml.OptionMap{
				"auto-load-companion-package": mathml.ListPatch{Directive: mathml.Append, Values: []any{"text", "text"}},
			},
			output: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
		},
		{
			name: "append to missing key",
			base: mathml.OptionMap{},
			overrides: mathml.OptionMap{
				"auto-load-companion-package": mathml.ListPatch{Directive: mathml.Append, Values: []any{"text"}},
			},
			output: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
		},
		{
			name: "remove filters matching entries",
			base: mathml.OptionMap{"auto-load-companion-package": []any{"text", "bold"}},
			overrides: mathml.OptionMap{
				"auto-load-companion-package": mathml.ListPatch{Directive: mathml.Remove, Values: []any{"bold"}},
			},
			output: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
		},
		{
			name: "remove of absent value is a no-op",
			base: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
			overrides: mathml.OptionMap{
				"auto-load-companion-package": mathml.ListPatch{Directive: mathml.Remove, Values: []any{"bold"}},
			},
			output: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
		},
		{
			name: "replace directive overrides the list outright",
			base: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
			overrides: mathml.OptionMap{
				"auto-load-companion-package": mathml.ListPatch{Directive: mathml.Replace, Values: []any{"bold"}},
			},
			output: mathml.OptionMap{"auto-load-companion-package": []any{"bold"}},
		},
		{
			name: "unknown directive is treated as replace",
			base: mathml.OptionMap{"auto-load-companion-package": []any{"text"}},
			overrides: mathml.OptionMap{
				"auto-load-companion-package": mathml.ListPatch{Directive: mathml.Directive(42), Values: []any{"bold"}},
			},
			output: mathml.OptionMap{"auto-load-companion-package": []any{"bold"}},
		},
		{
			name:      "nested maps merge recursively",
			base:      mathml.OptionMap{"fonts": mathml.OptionMap{"weight": "regular", "family": "serif"}},
			overrides: mathml.OptionMap{"fonts": mathml.OptionMap{"weight": "bold"}},
			output:    mathml.OptionMap{"fonts": mathml.OptionMap{"weight": "bold", "family": "serif"}},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			out := mathml.MergeOptions(tc.base, tc.overrides)

			if !cmp.Equal(out, tc.output) {
				t.Errorf("merged options do not match:\n%s", cmp.Diff(tc.output, out))
			}
		})
	}
}

func TestMergeOptionsDoesNotMutateInputs(t *testing.T) {
	base := mathml.OptionMap{"auto-load-companion-package": []any{"text"}}
	overrides := mathml.OptionMap{
		"auto-load-companion-package": mathml.ListPatch{Directive: mathml.Append, Values: []any{"bold"}},
	}

	mathml.MergeOptions(base, overrides)

	if list, ok := base["auto-load-companion-package"].([]any); !ok || len(list) != 1 {
		t.Errorf("base map was mutated: %v", base)
	}
}
