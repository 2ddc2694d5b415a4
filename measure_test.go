package mathml_test

import (
	"testing"

	mathml "github.com/texmath/go-mathml"
)

func TestMeasure(t *testing.T) {
	tt := []struct {
		input  string
		number float64
		unit   string
		fail   bool
	}{
		{input: "0.722em", number: 0.722, unit: "em"},
		{input: "+1.556em", number: 1.556, unit: "em"},
		{input: "-.15em", number: -0.15, unit: "em"},
		{input: "2pt", number: 2, unit: "pt"},
		{input: "100%", number: 100, unit: "%"},
		{input: "em", fail: true},
		{input: "", fail: true},
		{input: "+", fail: true},
	}

	for _, tc := range tt {
		number, unit, err := mathml.Measure(tc.input)

		if tc.fail {
			if err == nil {
				t.Errorf("measure %q should fail", tc.input)
			}

			continue
		}

		if err != nil {
			t.Errorf("measure %q failed: %v", tc.input, err)
			continue
		}

		if number != tc.number || unit != tc.unit {
			t.Errorf("measure %q: want %v%v, got %v%v", tc.input, tc.number, tc.unit, number, unit)
		}
	}
}

func TestMuToEm(t *testing.T) {
	tt := []struct {
		mu     int
		output string
	}{
		{mu: 13, output: "0.722em"},
		{mu: 6, output: "0.333em"},
		{mu: 18, output: "1.000em"},
		{mu: -3, output: "-0.167em"},
		{mu: 0, output: "0.000em"},
	}

	for _, tc := range tt {
		if out := mathml.MuToEm(tc.mu); out != tc.output {
			t.Errorf("%dmu: want %q, got %q", tc.mu, tc.output, out)
		}
	}
}
