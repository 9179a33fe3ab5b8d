package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type licenseService struct {
	upstream adapter.LicenseAdapter

	logger *logger.Logger
}

func NewLicenseService(upstream adapter.LicenseAdapter, logger *logger.Logger) LicenseService {
	return &licenseService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *licenseService) AssignIncomingNumber(ctx context.Context, licenseKey string, req models.AssignIncomingNumberRequest) (bool, error) {
	return s.upstream.AssignIncomingNumber(ctx, models.AssignIncomingNumber{
		IncomingPhoneNumber: req.IncomingPhoneNumber,
		LicenseKey:          licenseKey,
	})
}

func (s *licenseService) GetAssignedNumbers(ctx context.Context, licenseKey string) ([]string, error) {
	return s.upstream.GetAssignedNumbers(ctx, models.GetAssignedNumbers{LicenseKey: licenseKey})
}
