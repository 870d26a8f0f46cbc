// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonvalue

// Equal reports whether a and b are structurally equal.
//
// Objects are equal when they hold the same keys with equal values, regardless
// of key order. Arrays are compared element by element in order. Numbers are
// compared by value, so 1, 1.0 and 1e0 are equal.
func Equal(a, b Value) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}

	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && numbersEqual(x, y)
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for key, xv := range x.All() {
			yv, found := y.Get(key)
			if !found || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	return false
}

func numbersEqual(x, y Number) bool {
	if x == y {
		return true
	}
	xr, okX := x.rat()
	yr, okY := y.rat()
	if !okX || !okY {
		return false
	}
	return xr.Cmp(yr) == 0
}
