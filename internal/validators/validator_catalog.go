package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
)

// Checks selectable through the fields argument of Validate.
const (
	// FieldKeys rejects empty keys and keys containing the message ID
	// separator, which would collide once nested objects are flattened.
	FieldKeys = "keys"

	// FieldTemplates parses every string leaf that looks like a template.
	FieldTemplates = "templates"
)

// idSeparator must match the separator the localization service flattens
// nested keys with.
const idSeparator = "."

type CatalogValidator struct {
}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

// Validate checks a catalog (*jsonvalue.Object). With no fields every check
// runs. All problems found are returned joined.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch value := obj.(type) {
	case *jsonvalue.Object:
		return v.validateCatalog(value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CatalogValidator) validateCatalog(doc *jsonvalue.Object, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeys, FieldTemplates}
	}

	var checkKeys, checkTemplates bool
	for _, field := range fields {
		switch field {
		case FieldKeys:
			checkKeys = true
		case FieldTemplates:
			checkTemplates = true
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var errs []error
	walkStrings(doc, "", func(path, key string, leaf jsonvalue.Value) {
		if checkKeys {
			switch {
			case key == "":
				errs = append(errs, fmt.Errorf("%w at %q", ErrEmptyKey, path))
			case strings.Contains(key, idSeparator):
				errs = append(errs, fmt.Errorf("%w: %q", ErrAmbiguousKey, path))
			}
		}

		s, ok := leaf.(jsonvalue.String)
		if !checkTemplates || !ok || !strings.Contains(string(s), "{{") {
			return
		}
		if _, err := template.New(path).Parse(string(s)); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrInvalidTemplate, path, err))
		}
	})

	return errors.Join(errs...)
}

// walkStrings calls fn for every member of obj and its nested objects in
// document order. Nested objects are reported before being descended into.
func walkStrings(obj *jsonvalue.Object, prefix string, fn func(path, key string, v jsonvalue.Value)) {
	for key, v := range obj.All() {
		path := key
		if prefix != "" {
			path = prefix + idSeparator + key
		}

		fn(path, key, v)
		if nested, ok := v.(*jsonvalue.Object); ok {
			walkStrings(nested, path, fn)
		}
	}
}
