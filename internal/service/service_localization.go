// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-json-localization/internal/catalog"
	"github.com/MKhiriev/go-json-localization/internal/config"
	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
	"github.com/MKhiriev/go-json-localization/internal/logger"
	"github.com/MKhiriev/go-json-localization/internal/validators"
)

// messageIDSeparator joins the keys of nested objects into a message ID.
const messageIDSeparator = "."

type localizationService struct {
	bundle *i18n.Bundle

	// cultures holds the configured cultures, default first; matcher indexes
	// into it.
	cultures []string
	matcher  language.Matcher

	messages map[string]map[string]string

	logger *logger.Logger
}

// NewLocalizationService registers the string leaves of every merged catalog
// in a go-i18n bundle. Each culture of cfg must have a document in docs.
// Catalog problems found by the catalog validator are logged, not fatal.
func NewLocalizationService(docs catalog.Documents, cfg config.Localization, logger *logger.Logger) (LocalizationService, error) {
	cultures := cfg.Cultures()
	if len(cultures) == 0 {
		return nil, fmt.Errorf("%w: no cultures configured", ErrInvalidCulture)
	}

	tags := make([]language.Tag, 0, len(cultures))
	for _, culture := range cultures {
		tag, err := language.Parse(culture)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidCulture, culture, err)
		}
		tags = append(tags, tag)
	}

	s := &localizationService{
		bundle:   i18n.NewBundle(tags[0]),
		cultures: cultures,
		matcher:  language.NewMatcher(tags),
		messages: make(map[string]map[string]string, len(cultures)),
		logger:   logger,
	}

	validator := validators.NewCatalogValidator()
	for i, culture := range cultures {
		doc, ok := docs[culture]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrCatalogMissing, culture)
		}
		if err := validator.Validate(context.Background(), doc); err != nil {
			logger.Warn().Err(err).Str("culture", culture).Msg("catalog has invalid entries")
		}

		flat := make(map[string]string)
		flatten(doc, "", flat)

		messages := make([]*i18n.Message, 0, len(flat))
		for _, id := range slices.Sorted(maps.Keys(flat)) {
			messages = append(messages, &i18n.Message{ID: id, Other: flat[id]})
		}
		if err := s.bundle.AddMessages(tags[i], messages...); err != nil {
			return nil, fmt.Errorf("error registering messages for %q: %w", culture, err)
		}
		s.messages[culture] = flat

		logger.Debug().Str("culture", culture).Int("messages", len(flat)).Msg("messages registered")
	}

	return s, nil
}

// flatten collects the string leaves of obj under dotted IDs. Other scalar
// and array leaves carry no message and are skipped.
func flatten(obj *jsonvalue.Object, prefix string, into map[string]string) {
	for key, v := range obj.All() {
		id := key
		if prefix != "" {
			id = prefix + messageIDSeparator + key
		}

		switch v := v.(type) {
		case *jsonvalue.Object:
			flatten(v, id, into)
		case jsonvalue.String:
			into[id] = string(v)
		}
	}
}

func (s *localizationService) Localize(culture, key string, data map[string]any) (string, error) {
	for _, c := range s.fallbackChain(culture) {
		text, ok := s.messages[c][key]
		if !ok {
			continue
		}
		// go-i18n registers no template for an empty message
		if text == "" {
			return "", nil
		}

		localizer := i18n.NewLocalizer(s.bundle, c)
		msg, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    key,
			TemplateData: data,
		})
		if err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrRenderMessage, key, err)
		}
		return msg, nil
	}

	return "", fmt.Errorf("%w: %q", ErrMessageNotFound, key)
}

func (s *localizationService) T(culture, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	msg, err := s.Localize(culture, key, data)
	if err != nil {
		s.logger.Debug().Err(err).Str("culture", culture).Str("key", key).Msg("falling back to message key")
		return key
	}
	return msg
}

func (s *localizationService) All(culture string) map[string]string {
	return maps.Clone(s.messages[s.resolve(culture)])
}

func (s *localizationService) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return s.DefaultCulture()
	}

	_, idx, confidence := s.matcher.Match(tags...)
	if confidence == language.No {
		return s.DefaultCulture()
	}
	return s.cultures[idx]
}

func (s *localizationService) DefaultCulture() string {
	return s.cultures[0]
}

func (s *localizationService) Cultures() []string {
	return slices.Clone(s.cultures)
}

// resolve maps culture onto a configured culture, falling back to matching
// it as a language tag.
func (s *localizationService) resolve(culture string) string {
	for _, c := range s.cultures {
		if strings.EqualFold(c, culture) {
			return c
		}
	}
	return s.Match(culture)
}

func (s *localizationService) fallbackChain(culture string) []string {
	resolved := s.resolve(culture)
	if resolved == s.DefaultCulture() {
		return []string{resolved}
	}
	return []string{resolved, s.DefaultCulture()}
}
