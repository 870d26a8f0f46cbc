package http

import (
	"github.com/MKhiriev/go-json-localization/internal/logger"
	"github.com/MKhiriev/go-json-localization/internal/service"
	"github.com/MKhiriev/go-json-localization/internal/utils"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
