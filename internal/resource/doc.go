// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource reads and writes JSON message catalogs.
//
// A [Loader] materializes documents from two sources: a bundle of assets
// compiled into the binary, addressed by name suffix, and plain files on disk.
// A [Writer] persists a document back to disk, replacing the destination
// atomically.
package resource
