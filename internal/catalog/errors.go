package catalog

import "errors"

// ErrNoCultures is returned when the configuration names no culture at all.
var ErrNoCultures = errors.New("no cultures configured")
