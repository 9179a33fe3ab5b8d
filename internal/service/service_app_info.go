package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/internal/config"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

// appInfoService reports the gateway's own version. The upstream version is
// served by InfoService.GetVersion.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService prefers the configured version and falls back to the
// version stamped into the binary at build time.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
		logger.Debug().Str("version", version).Msg("app version taken from build info")
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
