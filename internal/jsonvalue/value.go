// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonvalue

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a node of a JSON document tree.
type Value interface {
	json.Marshaler

	// Kind reports which variant the value holds.
	Kind() Kind

	sealed()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number kept as its literal text.
type Number string

// String is a JSON string.
type String string

// Array is an ordered sequence of values.
type Array []Value

var (
	_ Value = Null{}
	_ Value = Bool(false)
	_ Value = Number("0")
	_ Value = String("")
	_ Value = Array(nil)
	_ Value = (*Object)(nil)
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (Array) sealed()  {}

// KindOf returns the kind of v. A nil Value is reported as [KindNull].
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// rat returns the exact rational value of n, or false if the literal is not
// a valid number.
func (n Number) rat() (*big.Rat, bool) {
	return new(big.Rat).SetString(string(n))
}

// Clone returns a deep copy of the array.
func (a Array) Clone() Array {
	if a == nil {
		return nil
	}
	out := make(Array, len(a))
	for i, item := range a {
		out[i] = Clone(item)
	}
	return out
}

// Contains reports whether the array holds an element structurally equal to v.
func (a Array) Contains(v Value) bool {
	for _, item := range a {
		if Equal(item, v) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of v. Scalars are immutable and returned as is;
// a nil Value clones to [Null].
func Clone(v Value) Value {
	switch val := v.(type) {
	case *Object:
		return val.Clone()
	case Array:
		return val.Clone()
	case nil:
		return Null{}
	default:
		return val
	}
}
