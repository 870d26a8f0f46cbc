// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-json-localization/internal/config"
	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
	"github.com/MKhiriev/go-json-localization/internal/logger"
	"github.com/MKhiriev/go-json-localization/internal/merge"
	"github.com/MKhiriev/go-json-localization/internal/resource"
)

// Documents maps a culture to its merged catalog.
type Documents map[string]*jsonvalue.Object

// Bootstrapper merges the bundled catalogs with the consumer overrides.
type Bootstrapper struct {
	cfg    config.Localization
	policy merge.Policy

	loader ResourceLoader
	writer ResourceWriter

	logger *logger.Logger
}

// NewBootstrapper validates the merge policy and culture list of cfg and
// returns a Bootstrapper using loader and writer.
func NewBootstrapper(cfg config.Localization, loader ResourceLoader, writer ResourceWriter, logger *logger.Logger) (*Bootstrapper, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("error parsing merge policy: %w", err)
	}
	if len(cfg.Cultures()) == 0 {
		return nil, ErrNoCultures
	}

	return &Bootstrapper{
		cfg:    cfg,
		policy: policy,
		loader: loader,
		writer: writer,
		logger: logger,
	}, nil
}

// Run merges the catalog of every configured culture, the default culture
// first. It stops at the first failure; catalogs already written stay on
// disk but no documents are returned.
func (b *Bootstrapper) Run() (Documents, error) {
	b.logger.Info().
		Strs("cultures", b.cfg.Cultures()).
		Str("policy", b.policy.String()).
		Msg("merging message catalogs...")

	docs := make(Documents, len(b.cfg.Cultures()))
	for _, culture := range b.cfg.Cultures() {
		doc, err := b.MergeCulture(culture)
		if err != nil {
			return nil, fmt.Errorf("culture %s: %w", culture, err)
		}
		docs[culture] = doc
	}

	return docs, nil
}

// MergeCulture loads the bundled and override catalogs of culture, merges
// them and writes the result over the override file.
//
// A missing override file is fatal unless AllowMissingOverride is set, in
// which case the bundled catalog is written unmodified.
func (b *Bootstrapper) MergeCulture(culture string) (*jsonvalue.Object, error) {
	log := b.logger.WithStr("culture", culture)
	path := b.cfg.OverridePath(culture)

	base, err := b.loader.LoadBundled(b.cfg.BundledName(culture))
	if err != nil {
		return nil, fmt.Errorf("error loading bundled catalog: %w", err)
	}

	overlay, err := b.loader.LoadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, resource.ErrFileNotFound) && b.cfg.AllowMissingOverride:
		log.Warn().Str("path", path).Msg("override catalog is missing, using bundled catalog")
		overlay = jsonvalue.NewObject()
	default:
		return nil, fmt.Errorf("error loading override catalog: %w", err)
	}

	merged, err := merge.Merge(base, overlay, b.policy)
	if err != nil {
		return nil, fmt.Errorf("error merging catalogs: %w", err)
	}

	if err := b.writer.Write(merged, path); err != nil {
		return nil, fmt.Errorf("error writing merged catalog: %w", err)
	}

	log.Info().Str("path", path).Int("keys", merged.Len()).Msg("catalog merged")
	return merged, nil
}
