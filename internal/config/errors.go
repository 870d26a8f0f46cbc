package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidLocalizationConfigs indicates invalid localization settings
	// (for example, an empty resources path, an unparsable locale tag or an
	// unknown merge strategy).
	ErrInvalidLocalizationConfigs = errors.New("invalid localization configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing listen address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty version string).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
