// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"errors"

	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
)

// Sentinel errors returned by [Loader] and [Writer]. Callers should match
// them with [errors.Is]; the returned errors carry the offending name or path.
var (
	// ErrResourceNotFound is returned when no bundled asset matches the
	// requested name, or the matching asset cannot be opened for reading.
	ErrResourceNotFound = errors.New("bundled resource not found")

	// ErrFileNotFound is returned when a resource file does not exist on disk.
	ErrFileNotFound = errors.New("resource file not found")

	// ErrParse is returned when a resource is not valid UTF-8 JSON.
	ErrParse = jsonvalue.ErrParse

	// ErrIO is returned for any filesystem failure while reading an existing
	// file or writing a document.
	ErrIO = errors.New("resource i/o failure")
)
