package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import "context"

// LocalizationService serves messages from the merged catalogs. It is
// read-only after construction and safe for concurrent use.
type LocalizationService interface {
	// Localize renders key for culture with data as template input. A key
	// missing for culture is looked up in the default culture.
	Localize(culture, key string, data map[string]any) (string, error)
	// T is like Localize but returns key itself when nothing can be rendered.
	T(culture, key string, data map[string]any) string
	// All returns every message of culture, unrendered, keyed by message ID.
	All(culture string) map[string]string
	// Match negotiates a supported culture from an Accept-Language value.
	Match(acceptLanguage string) string
	DefaultCulture() string
	Cultures() []string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
