package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type cancelService struct {
	upstream adapter.CancelAdapter

	logger *logger.Logger
}

func NewCancelService(upstream adapter.CancelAdapter, logger *logger.Logger) CancelService {
	return &cancelService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *cancelService) CancelNotify(ctx context.Context, licenseKey string, req models.CancelNotifyRequest) (bool, error) {
	return s.upstream.CancelNotify(ctx, models.CancelNotify{
		QueueID:    req.QueueID,
		LicenseKey: licenseKey,
	})
}

func (s *cancelService) CancelNotifyByReferenceID(ctx context.Context, licenseKey string, req models.CancelNotifyByReferenceIDRequest) (int, error) {
	cancelled, err := s.upstream.CancelNotifyByReferenceID(ctx, models.CancelNotifyByReferenceID{
		ReferenceID: req.ReferenceID,
		LicenseKey:  licenseKey,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug().Str("referenceID", req.ReferenceID).Int("cancelled", cancelled).Msg("calls cancelled by reference id")
	return cancelled, nil
}

func (s *cancelService) CancelConference(ctx context.Context, req models.CancelConferenceRequest) (bool, error) {
	return s.upstream.CancelConference(ctx, models.CancelConference{ConferenceKey: req.ConferenceKey})
}
