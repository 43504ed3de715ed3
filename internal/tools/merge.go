package tools

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/plumeworks/siteagent/internal/site"
)

// DeepMerge layers patch over base and returns a new map: nested objects are
// merged key-wise, arrays and scalars are replaced wholesale.
func DeepMerge(base, patch map[string]any) map[string]any {
	out := site.CloneContent(base)
	if out == nil {
		out = map[string]any{}
	}
	for key, value := range patch {
		if patchObj, ok := value.(map[string]any); ok {
			if baseObj, ok := out[key].(map[string]any); ok {
				out[key] = DeepMerge(baseObj, patchObj)
				continue
			}
		}
		out[key] = cloneAny(value)
	}
	return out
}

func cloneAny(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// ChangedFields reports every field the patch actually changed as
// `path: old → new` lines, recursing into nested objects with dotted paths.
// The old value of a previously absent field renders as (unset).
func ChangedFields(old, merged, patch map[string]any) []string {
	var lines []string
	collectChanges("", old, merged, patch, &lines)
	return lines
}

func collectChanges(prefix string, old, merged, patch map[string]any, lines *[]string) {
	keys := make([]string, 0, len(patch))
	for key := range patch {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		patchValue := patch[key]
		oldValue, hadOld := old[key]
		newValue := merged[key]

		if patchObj, ok := patchValue.(map[string]any); ok {
			if oldObj, ok := oldValue.(map[string]any); ok {
				newObj, _ := newValue.(map[string]any)
				collectChanges(path, oldObj, newObj, patchObj, lines)
				continue
			}
		}

		if hadOld && reflect.DeepEqual(oldValue, newValue) {
			continue
		}
		oldText := "(unset)"
		if hadOld {
			oldText = formatValue(oldValue)
		}
		*lines = append(*lines, fmt.Sprintf("%s: %s → %s", path, oldText, formatValue(newValue)))
	}
}

func formatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
