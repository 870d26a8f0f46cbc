package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidCulture  = errors.New("invalid culture")
	ErrCatalogMissing  = errors.New("no merged catalog for culture")
	ErrMessageNotFound = errors.New("message not found")
	ErrRenderMessage   = errors.New("error rendering message")
)
