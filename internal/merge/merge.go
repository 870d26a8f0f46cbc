// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import "github.com/MKhiriev/go-json-localization/internal/jsonvalue"

// Merge combines overlay into base under policy and returns a new object.
//
// Both inputs must be objects, otherwise a [*TypeMismatchError] is returned.
// For every key of overlay:
//   - a key missing from base is appended after the existing keys;
//   - two objects are merged recursively;
//   - two arrays are combined by policy.Arrays;
//   - an overlay null is dropped when policy.Nulls is [NullMerge] and the
//     base value is not null;
//   - in every other case, including a kind mismatch, the overlay value wins.
//
// Keys only present in base are kept unchanged and in place.
func Merge(base, overlay jsonvalue.Value, policy Policy) (*jsonvalue.Object, error) {
	baseObj, ok := base.(*jsonvalue.Object)
	if !ok || baseObj == nil {
		return nil, &TypeMismatchError{Side: "base", Got: jsonvalue.KindOf(base)}
	}
	overlayObj, ok := overlay.(*jsonvalue.Object)
	if !ok || overlayObj == nil {
		return nil, &TypeMismatchError{Side: "overlay", Got: jsonvalue.KindOf(overlay)}
	}

	return mergeObjects(baseObj, overlayObj, policy), nil
}

func mergeObjects(base, overlay *jsonvalue.Object, policy Policy) *jsonvalue.Object {
	result := base.Clone()

	for key, overlayValue := range overlay.All() {
		baseValue, exists := result.Get(key)
		if !exists {
			result.Set(key, jsonvalue.Clone(overlayValue))
			continue
		}
		result.Set(key, mergeValues(baseValue, overlayValue, policy))
	}

	return result
}

// mergeValues combines two values found under the same key. baseValue is
// already owned by the result tree and may be returned as is.
func mergeValues(baseValue, overlayValue jsonvalue.Value, policy Policy) jsonvalue.Value {
	switch o := overlayValue.(type) {
	case *jsonvalue.Object:
		if b, ok := baseValue.(*jsonvalue.Object); ok {
			return mergeObjects(b, o, policy)
		}
	case jsonvalue.Array:
		if b, ok := baseValue.(jsonvalue.Array); ok {
			return mergeArrays(b, o, policy.Arrays)
		}
	case jsonvalue.Null:
		if policy.Nulls == NullMerge && jsonvalue.KindOf(baseValue) != jsonvalue.KindNull {
			return baseValue
		}
	}

	return jsonvalue.Clone(overlayValue)
}

func mergeArrays(base, overlay jsonvalue.Array, strategy ArrayStrategy) jsonvalue.Array {
	if strategy == ArrayReplace {
		return overlay.Clone()
	}

	result := make(jsonvalue.Array, len(base), len(base)+len(overlay))
	copy(result, base)
	for _, item := range overlay {
		if !result.Contains(item) {
			result = append(result, jsonvalue.Clone(item))
		}
	}
	return result
}
