package handler

import (
	"github.com/MKhiriev/go-json-localization/internal/config"
	"github.com/MKhiriev/go-json-localization/internal/handler/http"
	"github.com/MKhiriev/go-json-localization/internal/logger"
	"github.com/MKhiriev/go-json-localization/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
