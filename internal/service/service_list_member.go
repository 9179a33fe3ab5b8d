package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

type listMemberService struct {
	upstream adapter.ListMemberAdapter

	logger *logger.Logger
}

func NewListMemberService(upstream adapter.ListMemberAdapter, logger *logger.Logger) ListMemberService {
	return &listMemberService{
		upstream: upstream,
		logger:   logger,
	}
}

func (s *listMemberService) AddNewList(ctx context.Context, licenseKey string, req models.AddNewListRequest) (models.ListInfo, error) {
	return s.upstream.AddNewList(ctx, models.AddNewList{
		ListName:     req.ListName,
		ParentListID: req.ParentListID,
		LicenseKey:   licenseKey,
	})
}

func (s *listMemberService) AlterListID(ctx context.Context, licenseKey string, req models.AlterListIDRequest) (models.ListInfo, error) {
	return s.upstream.AlterListID(ctx, models.AlterListID{
		ListID:       req.ListID,
		ParentListID: req.ParentListID,
		ListName:     req.ListName,
		LicenseKey:   licenseKey,
	})
}

func (s *listMemberService) DeleteList(ctx context.Context, licenseKey string, req models.DeleteListRequest) (bool, error) {
	return s.upstream.DeleteList(ctx, models.DeleteList{
		ListID:     req.ListID,
		LicenseKey: licenseKey,
	})
}

func (s *listMemberService) DialList(ctx context.Context, licenseKey string, req models.DialListRequest) (models.DialListReturn, error) {
	return s.upstream.DialList(ctx, models.DialList{
		ListID:             req.ListID,
		DialRecursiveLists: req.DialRecursiveLists,
		CallerID:           req.CallerID,
		CallerIDName:       req.CallerIDName,
		VoiceID:            req.VoiceID,
		TextToSay:          req.TextToSay,
		LicenseKey:         licenseKey,
	})
}

func (s *listMemberService) DialListAdvanced(ctx context.Context, licenseKey string, req models.DialListAdvancedRequest) (models.DialListReturn, error) {
	scheduled, err := parseScheduled(req.ScheduledUTCDatetime)
	if err != nil {
		return models.DialListReturn{}, err
	}

	nextTry := ParseShortOrDefault(req.NextTryInSeconds)
	if req.NextTryInSeconds != "" && nextTry == DefaultRetryIntervalSeconds {
		s.logger.Debug().Str("nextTryInSeconds", req.NextTryInSeconds).Msg("retry interval resolved to default")
	}

	return s.upstream.DialListAdvanced(ctx, models.DialListAdvanced{
		Functions: models.ListDialFunctions{
			LicenseKey:           licenseKey,
			ListID:               req.ListID,
			DialRecursiveLists:   req.DialRecursiveList,
			CallerID:             req.CallerID,
			CallerIDName:         req.CallerIDName,
			VoiceID:              req.VoiceID,
			TextToSay:            req.TextToSay,
			TryCount:             req.TryCount,
			Extension:            req.Extension,
			TransferNumber:       req.TransferNumber,
			NextTryInSeconds:     nextTry,
			TTSRate:              req.TTSRate,
			TTSVolume:            req.TTSVolume,
			ScheduledUTCDatetime: scheduled,
		},
	})
}

func (s *listMemberService) GetListIDsByLicenseKey(ctx context.Context, licenseKey string) ([]models.ListInfo, error) {
	return s.upstream.GetListIDsByLicenseKey(ctx, models.GetListIDsByLicenseKey{LicenseKey: licenseKey})
}

func (s *listMemberService) AddListMember(ctx context.Context, licenseKey string, req models.AddListMemberRequest) (models.ListMember, error) {
	return s.upstream.AddListMember(ctx, models.AddListMember{
		ListID:      req.ListID,
		LicenseKey:  licenseKey,
		PhoneNumber: req.PhoneNumber,
		ClientID:    req.ClientID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
}

func (s *listMemberService) AlterListMember(ctx context.Context, licenseKey string, req models.AlterListMemberRequest) (models.ListMember, error) {
	return s.upstream.AlterListMember(ctx, models.AlterListMember{
		ListMemberID: req.ListMemberID,
		LicenseKey:   licenseKey,
		ClientID:     req.ClientID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
	})
}

func (s *listMemberService) DeleteListMember(ctx context.Context, licenseKey string, req models.DeleteListMemberRequest) (bool, error) {
	return s.upstream.DeleteListMember(ctx, models.DeleteListMember{
		ListMemberID: req.ListMemberID,
		LicenseKey:   licenseKey,
	})
}

func (s *listMemberService) GetListMembersByListID(ctx context.Context, licenseKey string, req models.ListMembersByListIDRequest) ([]models.ListMember, error) {
	return s.upstream.GetListMembersByListID(ctx, models.GetListMembersByListID{
		ListID:     req.ListID,
		LicenseKey: licenseKey,
	})
}
