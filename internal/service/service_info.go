package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type infoService struct {
	upstream adapter.InfoAdapter

	logger *logger.Logger
}

func NewInfoService(upstream adapter.InfoAdapter, logger *logger.Logger) InfoService {
	return &infoService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *infoService) GetAvailableAreaCodes(ctx context.Context) ([]models.AreaCode, error) {
	return s.upstream.GetAvailableAreaCodes(ctx)
}

func (s *infoService) GetResponseCodes(ctx context.Context) ([]models.ResponseCode, error) {
	return s.upstream.GetResponseCodes(ctx)
}

func (s *infoService) GetVersion(ctx context.Context) (string, error) {
	return s.upstream.GetVersion(ctx)
}

func (s *infoService) GetVoices(ctx context.Context) ([]models.Voice, error) {
	return s.upstream.GetVoices(ctx)
}

func (s *infoService) GetAvailableIncomingNumbers(ctx context.Context, req models.AvailableIncomingNumbersRequest) ([]string, error) {
	return s.upstream.GetAvailableIncomingNumbers(ctx, models.GetAvailableIncomingNumbers{AreaCodeFilter: req.AreaCodeFilter})
}
