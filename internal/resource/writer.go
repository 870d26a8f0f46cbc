// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
	"github.com/MKhiriev/go-json-localization/internal/logger"
)

const (
	defaultIndent   = "  "
	defaultFileMode = fs.FileMode(0o644)
)

// WriterOptions controls how documents are serialized.
type WriterOptions struct {
	// Indent is the per-level indentation. Empty means two spaces.
	Indent string
	// Mode is the permission of written files. Zero means 0644.
	Mode fs.FileMode
}

// Writer serializes documents to the filesystem.
type Writer struct {
	indent string
	mode   fs.FileMode

	logger *logger.Logger
}

// NewWriter returns a Writer configured by opts.
func NewWriter(opts WriterOptions, logger *logger.Logger) *Writer {
	w := &Writer{
		indent: opts.Indent,
		mode:   opts.Mode,
		logger: logger,
	}
	if w.indent == "" {
		w.indent = defaultIndent
	}
	if w.mode == 0 {
		w.mode = defaultFileMode
	}
	return w
}

// Write serializes doc as indented JSON, keys in the order the document
// carries them, and replaces the content of path with it.
//
// The data is first written to a temporary file in the same directory and
// then renamed over path, so readers never observe a partially written file.
// Every failure wraps [ErrIO]; the temporary file is removed on failure.
func (w *Writer) Write(doc jsonvalue.Value, path string) (err error) {
	data, err := jsonvalue.MarshalIndent(doc, "", w.indent)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrIO, path, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file for %q: %w", ErrIO, path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: write %q: %w", ErrIO, tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %q: %w", ErrIO, tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %w", ErrIO, tmpName, err)
	}
	if err = os.Chmod(tmpName, w.mode); err != nil {
		return fmt.Errorf("%w: chmod %q: %w", ErrIO, tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: replace %q: %w", ErrIO, path, err)
	}

	w.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("resource file written")
	return nil
}
