package http

import (
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/service"
	"github.com/MKhiriev/go-phone-notify/internal/utils"
	"github.com/MKhiriev/go-phone-notify/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
