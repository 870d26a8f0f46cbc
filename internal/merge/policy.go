// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"fmt"
	"strings"
)

// ArrayStrategy selects how two arrays found under the same key are combined.
type ArrayStrategy int

const (
	// ArrayUnion keeps the base elements in order and appends the overlay
	// elements that are not already present, compared structurally.
	ArrayUnion ArrayStrategy = iota
	// ArrayReplace replaces the base array with the overlay array.
	ArrayReplace
)

func (s ArrayStrategy) String() string {
	switch s {
	case ArrayUnion:
		return "union"
	case ArrayReplace:
		return "replace"
	default:
		return fmt.Sprintf("ArrayStrategy(%d)", int(s))
	}
}

// ParseArrayStrategy converts "union" or "replace" (case-insensitive) into an
// [ArrayStrategy].
func ParseArrayStrategy(s string) (ArrayStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "union":
		return ArrayUnion, nil
	case "replace":
		return ArrayReplace, nil
	}
	return 0, fmt.Errorf("%w: unknown array strategy %q", ErrInvalidPolicy, s)
}

// NullStrategy selects what a null in the overlay does to the base value.
type NullStrategy int

const (
	// NullMerge discards an overlay null when the base holds a non-null
	// value under the same key.
	NullMerge NullStrategy = iota
	// NullOverwrite lets an overlay null replace the base value.
	NullOverwrite
)

func (s NullStrategy) String() string {
	switch s {
	case NullMerge:
		return "merge"
	case NullOverwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("NullStrategy(%d)", int(s))
	}
}

// ParseNullStrategy converts "merge" or "overwrite" (case-insensitive) into a
// [NullStrategy].
func ParseNullStrategy(s string) (NullStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "merge":
		return NullMerge, nil
	case "overwrite":
		return NullOverwrite, nil
	}
	return 0, fmt.Errorf("%w: unknown null strategy %q", ErrInvalidPolicy, s)
}

// Policy is the pair of strategies applied by [Merge].
// The zero value is the default policy.
type Policy struct {
	Arrays ArrayStrategy
	Nulls  NullStrategy
}

// DefaultPolicy returns the policy used for message catalogs: arrays are
// unioned and overlay nulls never erase base values.
func DefaultPolicy() Policy {
	return Policy{Arrays: ArrayUnion, Nulls: NullMerge}
}

// ParsePolicy builds a [Policy] from the textual strategy names.
func ParsePolicy(arrays, nulls string) (Policy, error) {
	a, err := ParseArrayStrategy(arrays)
	if err != nil {
		return Policy{}, err
	}
	n, err := ParseNullStrategy(nulls)
	if err != nil {
		return Policy{}, err
	}
	return Policy{Arrays: a, Nulls: n}, nil
}

func (p Policy) String() string {
	return "arrays=" + p.Arrays.String() + ",nulls=" + p.Nulls.String()
}
