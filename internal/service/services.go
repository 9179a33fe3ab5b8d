package service

import (
	"fmt"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/config"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type Services struct {
	NotifyService     NotifyService
	StatusService     StatusService
	CancelService     CancelService
	ListMemberService ListMemberService
	SoundService      SoundService
	ScriptService     ScriptService
	LicenseService    LicenseService
	InfoService       InfoService
	AppInfoService    AppInfoService
}

func NewServices(upstream adapter.PhoneNotifyAdapter, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		NotifyService:     NewNotifyService(upstream, logger),
		StatusService:     NewStatusService(upstream, logger),
		CancelService:     NewCancelService(upstream, logger),
		ListMemberService: NewListMemberService(upstream, logger),
		SoundService:      NewSoundService(upstream, logger),
		ScriptService:     NewScriptService(upstream, logger),
		LicenseService:    NewLicenseService(upstream, logger),
		InfoService:       NewInfoService(upstream, logger),
		AppInfoService:    appInfoService,
	}, nil
}
