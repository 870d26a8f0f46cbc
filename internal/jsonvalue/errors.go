// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonvalue

import "errors"

var (
	// ErrParse is returned when input is not a single well-formed JSON value.
	ErrParse = errors.New("malformed json")

	// ErrInvalidNumber is returned when encoding a [Number] whose literal is
	// not a valid JSON number.
	ErrInvalidNumber = errors.New("invalid json number literal")
)
