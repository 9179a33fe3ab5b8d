// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the SOAP 1.2 client of the CDYNE PhoneNotify service.
//
// Every upstream operation is exposed as a typed method that takes the
// request payload defined in models and returns the decoded result. The
// methods are grouped into small interfaces that mirror the REST routes, and
// [PhoneNotifyAdapter] combines all of them.
//
// Errors are sentinel values from errors.go. A soap:Fault becomes a
// *[FaultError], which matches [ErrUpstreamFault] through [errors.Is]. Use
// [IsUpstreamError] to tell upstream failures apart from everything else.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotifyAdapter places outbound text-to-speech calls.
type NotifyAdapter interface {
	NotifyPhoneBasic(ctx context.Context, req models.NotifyPhoneBasic) (models.NotifyReturn, error)
	NotifyPhoneBasicWithTryCount(ctx context.Context, req models.NotifyPhoneBasicWithTryCount) (models.NotifyReturn, error)
	NotifyPhoneBasicWithTransfer(ctx context.Context, req models.NotifyPhoneBasicWithTransfer) (models.NotifyReturn, error)
	NotifyPhoneEnglishBasic(ctx context.Context, req models.NotifyPhoneEnglishBasic) (models.NotifyReturn, error)
	NotifyMultiplePhoneBasic(ctx context.Context, req models.NotifyMultiplePhoneBasic) ([]models.NotifyReturn, error)
	NotifyMultiplePhoneBasicWithCPM(ctx context.Context, req models.NotifyMultiplePhoneBasicWithCPM) ([]models.NotifyReturn, error)
	NotifyMultiplePhoneBasicWithCPMandReferenceID(ctx context.Context, req models.NotifyMultiplePhoneBasicWithCPMandReferenceID) ([]models.NotifyReturn, error)
	NotifyPhoneAdvanced(ctx context.Context, req models.NotifyPhoneAdvanced) (models.NotifyReturn, error)
	NotifyMultiplePhoneAdvanced(ctx context.Context, req models.NotifyMultiplePhoneAdvanced) ([]models.NotifyReturn, error)
}

// StatusAdapter reports the state of queued calls.
type StatusAdapter interface {
	GetQueueIDStatus(ctx context.Context, req models.GetQueueIDStatus) (models.NotifyReturn, error)
	GetQueueIDStatusWithAdvancedInfo(ctx context.Context, req models.GetQueueIDStatusWithAdvancedInfo) (models.NotifyReturn, error)
	GetQueueIDStatusesByPhoneNumber(ctx context.Context, req models.GetQueueIDStatusesByPhoneNumber) ([]models.NotifyReturn, error)
	GetMultipleQueueIDStatus(ctx context.Context, req models.GetMultipleQueueIDStatus) ([]models.NotifyReturn, error)
}

// CancelAdapter cancels queued calls and running conferences.
type CancelAdapter interface {
	CancelNotify(ctx context.Context, req models.CancelNotify) (bool, error)
	CancelNotifyByReferenceID(ctx context.Context, req models.CancelNotifyByReferenceID) (int, error)
	CancelConference(ctx context.Context, req models.CancelConference) (bool, error)
}

// ListMemberAdapter manages contact lists and dials them.
type ListMemberAdapter interface {
	AddNewList(ctx context.Context, req models.AddNewList) (models.ListInfo, error)
	AlterListID(ctx context.Context, req models.AlterListID) (models.ListInfo, error)
	DeleteList(ctx context.Context, req models.DeleteList) (bool, error)
	DialList(ctx context.Context, req models.DialList) (models.DialListReturn, error)
	DialListAdvanced(ctx context.Context, req models.DialListAdvanced) (models.DialListReturn, error)
	GetListIDsByLicenseKey(ctx context.Context, req models.GetListIDsByLicenseKey) ([]models.ListInfo, error)
	AddListMember(ctx context.Context, req models.AddListMember) (models.ListMember, error)
	AlterListMember(ctx context.Context, req models.AlterListMember) (models.ListMember, error)
	DeleteListMember(ctx context.Context, req models.DeleteListMember) (bool, error)
	GetListMembersByListID(ctx context.Context, req models.GetListMembersByListID) ([]models.ListMember, error)
}

// SoundAdapter stores, renders and records sound files.
type SoundAdapter interface {
	UploadSoundFile(ctx context.Context, req models.UploadSoundFile) (bool, error)
	GetSoundFile(ctx context.Context, req models.GetSoundFile) (models.Base64Binary, error)
	GetSoundFileInMP3(ctx context.Context, req models.GetSoundFileInMP3) (models.Base64Binary, error)
	GetSoundFileInUlaw(ctx context.Context, req models.GetSoundFileInUlaw) (models.Base64Binary, error)
	GetSoundFileLength(ctx context.Context, req models.GetSoundFileLength) (float64, error)
	GetSoundFileURL(ctx context.Context, req models.GetSoundFileURL) (string, error)
	GetTTSInMP3(ctx context.Context, req models.GetTTSInMP3) (models.Base64Binary, error)
	GetTTSInULAW(ctx context.Context, req models.GetTTSInULAW) (models.Base64Binary, error)
	RecordSoundViaPhoneCall(ctx context.Context, req models.RecordSoundViaPhoneCall) (bool, error)
	RemoveSoundFile(ctx context.Context, req models.RemoveSoundFile) (bool, error)
	RenameSoundFile(ctx context.Context, req models.RenameSoundFile) (bool, error)
	ReturnSoundFileIDs(ctx context.Context, req models.ReturnSoundFileIDs) ([]string, error)
}

// ScriptAdapter manages call scripts.
type ScriptAdapter interface {
	SetIncomingCallScript(ctx context.Context, req models.SetIncomingCallScript) (bool, error)
	GetIncomingCallScript(ctx context.Context, req models.GetIncomingCallScript) (string, error)
	ScriptSave(ctx context.Context, req models.ScriptSave) (bool, error)
	ScriptLoad(ctx context.Context, req models.ScriptLoad) (string, error)
	ScriptList(ctx context.Context, req models.ScriptList) ([]string, error)
	ScriptDelete(ctx context.Context, req models.ScriptDelete) (bool, error)
}

// LicenseAdapter manages incoming numbers bound to a license key.
type LicenseAdapter interface {
	AssignIncomingNumber(ctx context.Context, req models.AssignIncomingNumber) (bool, error)
	GetAssignedNumbers(ctx context.Context, req models.GetAssignedNumbers) ([]string, error)
}

// InfoAdapter exposes the unlicensed reference data of the service.
type InfoAdapter interface {
	GetAvailableAreaCodes(ctx context.Context) ([]models.AreaCode, error)
	GetResponseCodes(ctx context.Context) ([]models.ResponseCode, error)
	GetVersion(ctx context.Context) (string, error)
	GetVoices(ctx context.Context) ([]models.Voice, error)
	GetAvailableIncomingNumbers(ctx context.Context, req models.GetAvailableIncomingNumbers) ([]string, error)
}

// PhoneNotifyAdapter is the complete upstream surface.
type PhoneNotifyAdapter interface {
	NotifyAdapter
	StatusAdapter
	CancelAdapter
	ListMemberAdapter
	SoundAdapter
	ScriptAdapter
	LicenseAdapter
	InfoAdapter
}
