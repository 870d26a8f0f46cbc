// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
	"github.com/MKhiriev/go-json-localization/internal/logger"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads JSON documents from a bundle of embedded assets and from the
// local filesystem.
type Loader struct {
	bundle fs.FS

	logger *logger.Logger
}

// NewLoader returns a Loader that resolves bundled names against bundle.
func NewLoader(bundle fs.FS, logger *logger.Logger) *Loader {
	return &Loader{
		bundle: bundle,
		logger: logger,
	}
}

// LoadBundled parses the first bundled asset whose full path ends with name,
// compared case-insensitively, so name may include directories
// ("locales/en-US.json"). Assets are visited in lexical path order.
//
// Returns [ErrResourceNotFound] if nothing matches or the asset cannot be
// read, and [ErrParse] if its content is not UTF-8 JSON.
func (l *Loader) LoadBundled(name string) (jsonvalue.Value, error) {
	assetPath, err := l.findBundled(name)
	if err != nil {
		return nil, err
	}

	f, err := l.bundle.Open(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrResourceNotFound, assetPath, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrResourceNotFound, assetPath, err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("bundled resource %q: %w", assetPath, err)
	}

	l.logger.Debug().Str("asset", assetPath).Str("name", name).Msg("bundled resource loaded")
	return doc, nil
}

// LoadFile parses the JSON document stored at path.
//
// Returns [ErrFileNotFound] if path does not exist or is a directory,
// [ErrIO] if it cannot be read, and [ErrParse] if its content is not UTF-8 JSON.
func (l *Loader) LoadFile(path string) (jsonvalue.Value, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: stat %q: %w", ErrIO, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrIO, path, err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("resource file %q: %w", path, err)
	}

	l.logger.Debug().Str("path", path).Msg("resource file loaded")
	return doc, nil
}

// BundledNames lists every asset path in the bundle in lexical order.
func (l *Loader) BundledNames() ([]string, error) {
	var names []string
	err := fs.WalkDir(l.bundle, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list bundle: %w", ErrResourceNotFound, err)
	}
	return names, nil
}

func (l *Loader) findBundled(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty resource name", ErrResourceNotFound)
	}

	names, err := l.BundledNames()
	if err != nil {
		return "", err
	}

	suffix := strings.ToLower(name)
	for _, p := range names {
		if strings.HasSuffix(strings.ToLower(p), suffix) {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: no asset ends with %q", ErrResourceNotFound, name)
}

func decode(data []byte) (jsonvalue.Value, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", ErrParse)
	}
	return jsonvalue.Parse(data)
}
