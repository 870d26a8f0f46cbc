// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal encodes v as compact JSON. Object keys are written in the order the
// object carries them. HTML characters are not escaped.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like [Marshal] but applies [json.Indent] to the output.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	compact, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (n Null) MarshalJSON() ([]byte, error)    { return Marshal(n) }
func (b Bool) MarshalJSON() ([]byte, error)    { return Marshal(b) }
func (n Number) MarshalJSON() ([]byte, error)  { return Marshal(n) }
func (s String) MarshalJSON() ([]byte, error)  { return Marshal(s) }
func (a Array) MarshalJSON() ([]byte, error)   { return Marshal(a) }
func (o *Object) MarshalJSON() ([]byte, error) { return Marshal(o) }

func encode(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case Bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		if !validNumber(val) {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, string(val))
		}
		buf.WriteString(string(val))
	case String:
		return encodeString(buf, string(val))
	case Array:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Object:
		buf.WriteByte('{')
		first := true
		for key, item := range val.All() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := encodeString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

func validNumber(n Number) bool {
	if n == "" {
		return false
	}
	if c := n[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(n))
}
