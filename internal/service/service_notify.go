// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type notifyService struct {
	upstream adapter.NotifyAdapter

	logger *logger.Logger
}

func NewNotifyService(upstream adapter.NotifyAdapter, logger *logger.Logger) NotifyService {
	return &notifyService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *notifyService) NotifyPhoneBasic(ctx context.Context, licenseKey string, req models.NotifyPhoneBasicRequest) (models.NotifyReturn, error) {
	return s.upstream.NotifyPhoneBasic(ctx, models.NotifyPhoneBasic{
		PhoneNumberToDial: req.PhoneNumberToDial,
		TextToSay:         req.TextToSay,
		CallerID:          req.CallerID,
		CallerIDName:      req.CallerIDName,
		VoiceID:           req.VoiceID,
		LicenseKey:        licenseKey,
	})
}

func (s *notifyService) NotifyPhoneBasicWithTryCount(ctx context.Context, licenseKey string, req models.NotifyPhoneBasicWithTryCountRequest) (models.NotifyReturn, error) {
	return s.upstream.NotifyPhoneBasicWithTryCount(ctx, models.NotifyPhoneBasicWithTryCount{
		TryCount:          req.TryCount,
		PhoneNumberToDial: req.PhoneNumberToDial,
		TextToSay:         req.TextToSay,
		CallerID:          req.CallerID,
		CallerIDName:      req.CallerIDName,
		VoiceID:           req.VoiceID,
		LicenseKey:        licenseKey,
	})
}

func (s *notifyService) NotifyPhoneBasicWithTransfer(ctx context.Context, licenseKey string, req models.NotifyPhoneBasicWithTransferRequest) (models.NotifyReturn, error) {
	return s.upstream.NotifyPhoneBasicWithTransfer(ctx, models.NotifyPhoneBasicWithTransfer{
		PhoneNumberToDial: req.PhoneNumberToDial,
		TransferNumber:    req.TransferNumber,
		TextToSay:         req.TextToSay,
		CallerID:          req.CallerID,
		CallerIDName:      req.CallerIDName,
		VoiceID:           req.VoiceID,
		LicenseKey:        licenseKey,
	})
}

func (s *notifyService) NotifyPhoneEnglishBasic(ctx context.Context, licenseKey string, req models.NotifyPhoneEnglishBasicRequest) (models.NotifyReturn, error) {
	return s.upstream.NotifyPhoneEnglishBasic(ctx, models.NotifyPhoneEnglishBasic{
		PhoneNumberToDial: req.PhoneNumberToDial,
		TextToSay:         req.TextToSay,
		LicenseKey:        licenseKey,
	})
}

func (s *notifyService) NotifyMultiplePhoneBasic(ctx context.Context, licenseKey string, req models.NotifyMultiplePhoneBasicRequest) ([]models.NotifyReturn, error) {
	return s.upstream.NotifyMultiplePhoneBasic(ctx, models.NotifyMultiplePhoneBasic{
		PhoneNumbersToDial: req.PhoneNumbersToDial,
		TextToSay:          req.TextToSay,
		CallerID:           req.CallerID,
		CallerIDName:       req.CallerIDName,
		VoiceID:            req.VoiceID,
		LicenseKey:         licenseKey,
	})
}

func (s *notifyService) NotifyMultiplePhoneBasicWithCPM(ctx context.Context, licenseKey string, req models.NotifyMultiplePhoneBasicWithCPMRequest) ([]models.NotifyReturn, error) {
	return s.upstream.NotifyMultiplePhoneBasicWithCPM(ctx, models.NotifyMultiplePhoneBasicWithCPM{
		PhoneNumbersToDial: req.PhoneNumbersToDial,
		TextToSay:          req.TextToSay,
		CallerID:           req.CallerID,
		CallerIDName:       req.CallerIDName,
		VoiceID:            req.VoiceID,
		CallsPerMinute:     req.CallsPerMinute,
		LicenseKey:         licenseKey,
	})
}

func (s *notifyService) NotifyMultiplePhoneBasicWithCPMandReferenceID(ctx context.Context, licenseKey string, req models.NotifyMultiplePhoneBasicWithCPMandReferenceIDRequest) ([]models.NotifyReturn, error) {
	return s.upstream.NotifyMultiplePhoneBasicWithCPMandReferenceID(ctx, models.NotifyMultiplePhoneBasicWithCPMandReferenceID{
		PhoneNumbersToDial: req.PhoneNumbersToDial,
		TextToSay:          req.TextToSay,
		CallerID:           req.CallerID,
		CallerIDName:       req.CallerIDName,
		VoiceID:            req.VoiceID,
		CallsPerMinute:     req.CallsPerMinute,
		ReferenceID:        req.ReferenceID,
		LicenseKey:         licenseKey,
	})
}

func (s *notifyService) NotifyPhoneAdvanced(ctx context.Context, licenseKey string, req models.NotifyPhoneAdvancedRequest) (models.NotifyReturn, error) {
	anr, err := toAdvancedNotifyRequest(licenseKey, req)
	if err != nil {
		return models.NotifyReturn{}, err
	}

	return s.upstream.NotifyPhoneAdvanced(ctx, models.NotifyPhoneAdvanced{Request: anr})
}

// NotifyMultiplePhoneAdvanced sends the whole batch in one upstream call. The
// result order follows the upstream response.
func (s *notifyService) NotifyMultiplePhoneAdvanced(ctx context.Context, licenseKey string, req models.NotifyMultiplePhoneAdvancedRequest) ([]models.NotifyReturn, error) {
	requests := make([]models.AdvancedNotifyRequest, 0, len(req))
	for i, item := range req {
		anr, err := toAdvancedNotifyRequest(licenseKey, item)
		if err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
		requests = append(requests, anr)
	}

	s.logger.Debug().Int("size", len(requests)).Msg("dispatching advanced notify batch")

	return s.upstream.NotifyMultiplePhoneAdvanced(ctx, models.NotifyMultiplePhoneAdvanced{Requests: requests})
}

func toAdvancedNotifyRequest(licenseKey string, req models.NotifyPhoneAdvancedRequest) (models.AdvancedNotifyRequest, error) {
	scheduled, err := parseScheduled(req.UTCScheduledDateTime)
	if err != nil {
		return models.AdvancedNotifyRequest{}, err
	}

	return models.AdvancedNotifyRequest{
		PhoneNumberToDial:    req.PhoneNumberToDial,
		TransferNumber:       req.TransferNumber,
		VoiceID:              req.VoiceID,
		CallerIDNumber:       req.CallerID,
		CallerIDName:         req.CallerIDName,
		TextToSay:            req.TextToSay,
		LicenseKey:           licenseKey,
		TryCount:             req.TryCount,
		NextTryInSeconds:     req.NextTryInSeconds,
		UTCScheduledDateTime: scheduled,
		TTSRate:              req.TTSRate,
		TTSVolume:            req.TTSVolume,
		MaxCallLength:        req.MaxCallLength,
		StatusChangePostURL:  req.StatusChangePostURL,
		ReferenceID:          req.ReferenceID,
	}, nil
}
