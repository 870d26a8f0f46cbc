package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKey        = errors.New("empty message key")
	ErrAmbiguousKey    = errors.New("message key contains the ID separator")
	ErrInvalidTemplate = errors.New("invalid message template")
)
