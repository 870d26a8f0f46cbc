// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package jsonvalue implements an order-preserving JSON document model.
//
// A [Value] is one of a closed set of kinds: [*Object], [Array], [String],
// [Number], [Bool] and [Null]. The set is sealed, so code that switches over
// the concrete types only has to handle those six cases.
//
// Objects keep the insertion order of their keys, which is also the order in
// which they are encoded. Numbers keep the literal text they were parsed from,
// so a document survives a parse/encode round trip without float rounding.
package jsonvalue
