package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type soundService struct {
	upstream adapter.SoundAdapter

	logger *logger.Logger
}

func NewSoundService(upstream adapter.SoundAdapter, logger *logger.Logger) SoundService {
	return &soundService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *soundService) UploadSoundFile(ctx context.Context, licenseKey string, req models.UploadSoundFileRequest) (bool, error) {
	s.logger.Debug().Str("soundFileID", req.SoundFileID).Int("bytes", len(req.FileBinary)).Msg("uploading sound file")

	return s.upstream.UploadSoundFile(ctx, models.UploadSoundFile{
		FileBinary:  req.FileBinary,
		SoundFileID: req.SoundFileID,
		LicenseKey:  licenseKey,
	})
}

func (s *soundService) GetSoundFile(ctx context.Context, licenseKey string, req models.SoundFileRequest) (models.Base64Binary, error) {
	return s.upstream.GetSoundFile(ctx, models.GetSoundFile{
		SoundFileID: req.SoundFileID,
		LicenseKey:  licenseKey,
	})
}

func (s *soundService) GetSoundFileInMP3(ctx context.Context, licenseKey string, req models.SoundFileInMP3Request) (models.Base64Binary, error) {
	return s.upstream.GetSoundFileInMP3(ctx, models.GetSoundFileInMP3{
		SoundFileID: req.SoundFileID,
		BitRate:     req.BitRate,
		LicenseKey:  licenseKey,
	})
}

func (s *soundService) GetSoundFileInUlaw(ctx context.Context, licenseKey string, req models.SoundFileRequest) (models.Base64Binary, error) {
	return s.upstream.GetSoundFileInUlaw(ctx, models.GetSoundFileInUlaw{
		SoundFileID: req.SoundFileID,
		LicenseKey:  licenseKey,
	})
}

func (s *soundService) GetSoundFileLength(ctx context.Context, licenseKey string, req models.SoundFileRequest) (float64, error) {
	return s.upstream.GetSoundFileLength(ctx, models.GetSoundFileLength{
		SoundFileID: req.SoundFileID,
		LicenseKey:  licenseKey,
	})
}

func (s *soundService) GetSoundFileURL(ctx context.Context, licenseKey string, req models.SoundFileRequest) (string, error) {
	return s.upstream.GetSoundFileURL(ctx, models.GetSoundFileURL{
		SoundFileID: req.SoundFileID,
		LicenseKey:  licenseKey,
	})
}

func (s *soundService) GetTTSInMP3(ctx context.Context, licenseKey string, req models.TTSInMP3Request) (models.Base64Binary, error) {
	return s.upstream.GetTTSInMP3(ctx, models.GetTTSInMP3{
		TextToSay:  req.TextToSay,
		VoiceID:    req.VoiceID,
		BitRate:    req.BitRate,
		TTSRate:    req.TTSRate,
		TTSVolume:  req.TTSVolume,
		LicenseKey: licenseKey,
	})
}

func (s *soundService) GetTTSInULAW(ctx context.Context, licenseKey string, req models.TTSInULAWRequest) (models.Base64Binary, error) {
	return s.upstream.GetTTSInULAW(ctx, models.GetTTSInULAW{
		TextToSay:  req.TextToSay,
		VoiceID:    req.VoiceID,
		TTSRate:    req.TTSRate,
		TTSVolume:  req.TTSVolume,
		LicenseKey: licenseKey,
	})
}

func (s *soundService) RecordSoundViaPhoneCall(ctx context.Context, licenseKey string, req models.RecordSoundViaPhoneCallRequest) (bool, error) {
	return s.upstream.RecordSoundViaPhoneCall(ctx, models.RecordSoundViaPhoneCall{
		PhoneNumberToDial: req.PhoneNumberToDial,
		SoundFileID:       req.SoundFileID,
		LicenseKey:        licenseKey,
	})
}

func (s *soundService) RemoveSoundFile(ctx context.Context, licenseKey string, req models.RemoveSoundFileRequest) (bool, error) {
	return s.upstream.RemoveSoundFile(ctx, models.RemoveSoundFile{
		SoundFileID: req.SoundFileID,
		LicenseKey:  licenseKey,
	})
}

func (s *soundService) RenameSoundFile(ctx context.Context, licenseKey string, req models.RenameSoundFileRequest) (bool, error) {
	return s.upstream.RenameSoundFile(ctx, models.RenameSoundFile{
		SoundFileID:    req.SoundFileID,
		NewSoundFileID: req.NewSoundFileID,
		LicenseKey:     licenseKey,
	})
}

func (s *soundService) ReturnSoundFileIDs(ctx context.Context, licenseKey string) ([]string, error) {
	return s.upstream.ReturnSoundFileIDs(ctx, models.ReturnSoundFileIDs{LicenseKey: licenseKey})
}
