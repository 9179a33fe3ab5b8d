package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type statusService struct {
	upstream adapter.StatusAdapter

	logger *logger.Logger
}

func NewStatusService(upstream adapter.StatusAdapter, logger *logger.Logger) StatusService {
	return &statusService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *statusService) GetQueueIDStatus(ctx context.Context, req models.QueueIDStatusRequest) (models.NotifyReturn, error) {
	return s.upstream.GetQueueIDStatus(ctx, models.GetQueueIDStatus{QueueID: req.QueueID})
}

func (s *statusService) GetQueueIDStatusWithAdvancedInfo(ctx context.Context, licenseKey string, req models.QueueIDStatusRequest) (models.NotifyReturn, error) {
	return s.upstream.GetQueueIDStatusWithAdvancedInfo(ctx, models.GetQueueIDStatusWithAdvancedInfo{
		QueueID:    req.QueueID,
		LicenseKey: licenseKey,
	})
}

func (s *statusService) GetQueueIDStatusesByPhoneNumber(ctx context.Context, licenseKey string, req models.QueueIDStatusesByPhoneNumberRequest) ([]models.NotifyReturn, error) {
	return s.upstream.GetQueueIDStatusesByPhoneNumber(ctx, models.GetQueueIDStatusesByPhoneNumber{
		PhoneNumber: req.PhoneNumber,
		LicenseKey:  licenseKey,
	})
}

func (s *statusService) GetMultipleQueueIDStatus(ctx context.Context, licenseKey string, req models.MultipleQueueIDStatusRequest) ([]models.NotifyReturn, error) {
	return s.upstream.GetMultipleQueueIDStatus(ctx, models.GetMultipleQueueIDStatus{
		QueueIDs:   req.QueueIDs,
		LicenseKey: licenseKey,
	})
}
