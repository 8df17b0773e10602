// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"bytes"
	"encoding/json"
)

// MergeJSON deep-merges addition into the JSON tree pointed to by target,
// in place.
//
// When both sides are objects, every key of addition is merged recursively
// into the matching entry of target; a missing entry starts out as null.
// Any other pairing (scalar, array, null, object vs non-object) replaces
// the target value with the addition.
//
// Trees are the shapes encoding/json decodes into `any`:
// map[string]any, []any, string, float64/json.Number, bool and nil.
func MergeJSON(target *any, addition any) {
	targetObj, targetIsObj := (*target).(map[string]any)
	additionObj, additionIsObj := addition.(map[string]any)

	if !targetIsObj || !additionIsObj {
		*target = addition
		return
	}

	for key, value := range additionObj {
		entry := targetObj[key]
		MergeJSON(&entry, value)
		targetObj[key] = entry
	}
}

// ToJSONValue converts v into a generic JSON tree by round-tripping it
// through its JSON encoding. Numbers are kept as json.Number so integers
// survive unchanged.
func ToJSONValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	return value, nil
}
