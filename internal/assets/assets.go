// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package assets holds the default message catalogs compiled into the binary.
package assets

import "embed"

// Locales contains one JSON catalog per locale tag, e.g. locales/en-US.json.
//
//go:embed locales/*.json
var Locales embed.FS
