// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonvalue

import "iter"

// Object is a JSON object whose keys are unique and kept in insertion order.
// The zero value is an empty object ready to use.
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) sealed()    {}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Set stores v under key. An existing key keeps its position, a new key is
// appended after all existing ones. A nil v is stored as [Null].
func (o *Object) Set(key string, v Value) {
	if v == nil {
		v = Null{}
	}
	if o.fields == nil {
		o.fields = make(map[string]Value)
	}
	if _, exists := o.fields[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// All iterates over the key/value pairs in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, key := range o.keys {
			if !yield(key, o.fields[key]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	out := &Object{
		keys:   make([]string, 0, o.Len()),
		fields: make(map[string]Value, o.Len()),
	}
	for key, v := range o.All() {
		out.keys = append(out.keys, key)
		out.fields[key] = Clone(v)
	}
	return out
}
