package handler

import (
	"fmt"

	"github.com/MKhiriev/go-phone-notify/internal/config"
	"github.com/MKhiriev/go-phone-notify/internal/handler/http"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/service"
	"github.com/MKhiriev/go-phone-notify/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	validator, err := validators.NewRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("error creating request validator: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validator, logger),
	}, nil
}
