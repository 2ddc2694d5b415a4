package mathml

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Options is the typed view of the recognized option keys. Packages may carry
// arbitrary keys in their option maps, unknown keys are simply not decoded.
type Options struct {
	BoldVariant  string   `mapstructure:"bold-variant"`
	LightVariant bool     `mapstructure:"light-variant"`
	AutoLoad     []string `mapstructure:"auto-load-companion-package"`
}

// DecodeOptions decodes a merged option map into the typed Options struct
func DecodeOptions(options OptionMap) (*Options, error) {
	out := &Options{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})

	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(map[string]any(options)); err != nil {
		return nil, err
	}

	return out, nil
}

// UnmarshalOptions reads an option overlay in YAML format, for example:
//
//	bold-variant: bold
//	auto-load-companion-package: [text]
func UnmarshalOptions(data []byte) (OptionMap, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return normalizeOptions(raw), nil
}

// normalizeOptions converts nested generic maps into OptionMap values so the
// merger can recurse into them
func normalizeOptions(raw map[string]any) OptionMap {
	out := make(OptionMap, len(raw))
	for key, val := range raw {
		if nested, ok := val.(map[string]any); ok {
			out[key] = normalizeOptions(nested)
			continue
		}

		out[key] = val
	}

	return out
}

// Packages parses a comma-separated package list, for example: "base, extarrows"
func Packages(raw string) []string {
	var names []string

	parts := strings.Split(raw, ",")
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		names = append(names, name)
	}

	return names
}
