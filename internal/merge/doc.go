// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge combines two JSON object trees into one.
//
// The overlay document takes precedence over the base document key by key.
// Nested objects are merged recursively, arrays and null values are combined
// according to a [Policy]. Merging never mutates its inputs and the result
// shares no nodes with them.
package merge
