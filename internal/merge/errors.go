// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
)

var (
	// ErrTypeMismatch is returned when a top-level input of [Merge] is not
	// an object. Use [errors.As] with [*TypeMismatchError] for details.
	ErrTypeMismatch = errors.New("merge input is not an object")

	// ErrInvalidPolicy is returned when a strategy name cannot be parsed.
	ErrInvalidPolicy = errors.New("invalid merge policy")
)

// TypeMismatchError reports which input of [Merge] had the wrong kind.
type TypeMismatchError struct {
	// Side is either "base" or "overlay".
	Side string
	// Got is the kind that was found instead of an object.
	Got jsonvalue.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s document must be an object, got %s", e.Side, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
