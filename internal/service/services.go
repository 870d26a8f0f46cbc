package service

import (
	"fmt"

	"github.com/MKhiriev/go-json-localization/internal/catalog"
	"github.com/MKhiriev/go-json-localization/internal/config"
	"github.com/MKhiriev/go-json-localization/internal/logger"
)

type Services struct {
	LocalizationService LocalizationService
	AppInfoService      AppInfoService
}

func NewServices(docs catalog.Documents, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	localizationService, err := NewLocalizationService(docs, cfg.Localization, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating localization service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		LocalizationService: localizationService,
		AppInfoService:      appInfoService,
	}, nil
}
