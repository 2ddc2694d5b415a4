package mathml

type OptionMap map[string]any

type Directive int

const (
	Replace Directive = iota
	Append
	Remove
)

// ListPatch wraps an override value for a list-valued option with the
// directive telling the merger what to do with the base list.
type ListPatch struct {
	Directive Directive
	Values    []any
}

// MergeOptions merges overrides into base and returns a new map, leaving both
// inputs untouched. Scalar keys are replaced outright, nested maps are merged
// recursively, list patches are applied per their directive. An unknown
// directive value is treated as a plain replace.
func MergeOptions(base, overrides OptionMap) OptionMap {
	out := make(OptionMap, len(base)+len(overrides))
	for key, val := range base {
		out[key] = val
	}

	for key, val := range overrides {
		switch patch := val.(type) {
		case ListPatch:
			switch patch.Directive {
			case Append:
				out[key] = appendValues(listValues(out[key]), patch.Values)
			case Remove:
				out[key] = removeValues(listValues(out[key]), patch.Values)
			default:
				out[key] = append([]any{}, patch.Values...)
			}
		case OptionMap:
			if nested, ok := out[key].(OptionMap); ok {
				out[key] = MergeOptions(nested, patch)
				continue
			}

			out[key] = MergeOptions(OptionMap{}, patch)
		default:
			out[key] = val
		}
	}

	return out
}

// appendValues concatenates values to the base list, skipping values already
// present so repeated appends stay deduplicated in first-seen order
func appendValues(base, values []any) []any {
	out := append([]any{}, base...)
	for _, val := range values {
		if containsValue(out, val) {
			continue
		}

		out = append(out, val)
	}

	return out
}

// removeValues filters matching entries out of the base list, removing a
// value which is not present is a no-op
func removeValues(base, values []any) []any {
	out := make([]any, 0, len(base))
	for _, val := range base {
		if containsValue(values, val) {
			continue
		}

		out = append(out, val)
	}

	return out
}

func containsValue(list []any, val any) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}

	return false
}

// listValues normalizes an option value to a list, a scalar becomes a
// one-element list so a patch against it still applies
func listValues(val any) []any {
	switch list := val.(type) {
	case nil:
		return nil
	case []any:
		return list
	case []string:
		out := make([]any, 0, len(list))
		for _, item := range list {
			out = append(out, item)
		}

		return out
	default:
		return []any{val}
	}
}
