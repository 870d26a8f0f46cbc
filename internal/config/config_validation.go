// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Version) == "" {
		return fmt.Errorf("%w: version is empty", ErrInvalidAppConfigs)
	}

	if err := cfg.Localization.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (l Localization) validate() error {
	if strings.TrimSpace(l.ResourcesPath) == "" {
		return fmt.Errorf("%w: resources path is empty", ErrInvalidLocalizationConfigs)
	}

	if strings.TrimSpace(l.DefaultCulture) == "" {
		return fmt.Errorf("%w: default culture is empty", ErrInvalidLocalizationConfigs)
	}

	for _, culture := range l.Cultures() {
		if _, err := language.Parse(culture); err != nil {
			return fmt.Errorf("%w: culture %q: %w", ErrInvalidLocalizationConfigs, culture, err)
		}
	}

	if _, err := l.Policy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLocalizationConfigs, err)
	}

	return nil
}
