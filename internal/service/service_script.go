package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type scriptService struct {
	upstream adapter.ScriptAdapter

	logger *logger.Logger
}

func NewScriptService(upstream adapter.ScriptAdapter, logger *logger.Logger) ScriptService {
	return &scriptService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *scriptService) SetIncomingCallScript(ctx context.Context, licenseKey string, req models.SetIncomingCallScriptRequest) (bool, error) {
	return s.upstream.SetIncomingCallScript(ctx, models.SetIncomingCallScript{
		PhoneNumber: req.PhoneNumber,
		Script:      req.Script,
		LicenseKey:  licenseKey,
	})
}

func (s *scriptService) GetIncomingCallScript(ctx context.Context, licenseKey string, req models.IncomingCallScriptRequest) (string, error) {
	return s.upstream.GetIncomingCallScript(ctx, models.GetIncomingCallScript{
		PhoneNumber: req.PhoneNumber,
		LicenseKey:  licenseKey,
	})
}

func (s *scriptService) ScriptSave(ctx context.Context, licenseKey string, req models.ScriptSaveRequest) (bool, error) {
	return s.upstream.ScriptSave(ctx, models.ScriptSave{
		ScriptName: req.ScriptName,
		ScriptText: req.ScriptText,
		LicenseKey: licenseKey,
	})
}

func (s *scriptService) ScriptLoad(ctx context.Context, licenseKey string, req models.ScriptLoadRequest) (string, error) {
	return s.upstream.ScriptLoad(ctx, models.ScriptLoad{
		ScriptName: req.ScriptName,
		LicenseKey: licenseKey,
	})
}

func (s *scriptService) ScriptList(ctx context.Context, licenseKey string, req models.ScriptListRequest) ([]string, error) {
	return s.upstream.ScriptList(ctx, models.ScriptList{
		IncludeGlobalScripts: req.IncludeGlobalScripts,
		LicenseKey:           licenseKey,
	})
}

func (s *scriptService) ScriptDelete(ctx context.Context, licenseKey string, req models.ScriptDeleteRequest) (bool, error) {
	return s.upstream.ScriptDelete(ctx, models.ScriptDelete{
		ScriptName: req.ScriptName,
		LicenseKey: licenseKey,
	})
}
