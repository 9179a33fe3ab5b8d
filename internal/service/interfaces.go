package service

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Licensed operations take the caller's license key explicitly. It is copied
// into the upstream payload verbatim.

type NotifyService interface {
	NotifyPhoneBasic(ctx context.Context, licenseKey string, req models.NotifyPhoneBasicRequest) (models.NotifyReturn, error)
	NotifyPhoneBasicWithTryCount(ctx context.Context, licenseKey string, req models.NotifyPhoneBasicWithTryCountRequest) (models.NotifyReturn, error)
	NotifyPhoneBasicWithTransfer(ctx context.Context, licenseKey string, req models.NotifyPhoneBasicWithTransferRequest) (models.NotifyReturn, error)
	NotifyPhoneEnglishBasic(ctx context.Context, licenseKey string, req models.NotifyPhoneEnglishBasicRequest) (models.NotifyReturn, error)
	NotifyMultiplePhoneBasic(ctx context.Context, licenseKey string, req models.NotifyMultiplePhoneBasicRequest) ([]models.NotifyReturn, error)
	NotifyMultiplePhoneBasicWithCPM(ctx context.Context, licenseKey string, req models.NotifyMultiplePhoneBasicWithCPMRequest) ([]models.NotifyReturn, error)
	NotifyMultiplePhoneBasicWithCPMandReferenceID(ctx context.Context, licenseKey string, req models.NotifyMultiplePhoneBasicWithCPMandReferenceIDRequest) ([]models.NotifyReturn, error)
	NotifyPhoneAdvanced(ctx context.Context, licenseKey string, req models.NotifyPhoneAdvancedRequest) (models.NotifyReturn, error)
	NotifyMultiplePhoneAdvanced(ctx context.Context, licenseKey string, req models.NotifyMultiplePhoneAdvancedRequest) ([]models.NotifyReturn, error)
}

type StatusService interface {
	GetQueueIDStatus(ctx context.Context, req models.QueueIDStatusRequest) (models.NotifyReturn, error)
	GetQueueIDStatusWithAdvancedInfo(ctx context.Context, licenseKey string, req models.QueueIDStatusRequest) (models.NotifyReturn, error)
	GetQueueIDStatusesByPhoneNumber(ctx context.Context, licenseKey string, req models.QueueIDStatusesByPhoneNumberRequest) ([]models.NotifyReturn, error)
	GetMultipleQueueIDStatus(ctx context.Context, licenseKey string, req models.MultipleQueueIDStatusRequest) ([]models.NotifyReturn, error)
}

type CancelService interface {
	CancelNotify(ctx context.Context, licenseKey string, req models.CancelNotifyRequest) (bool, error)
	CancelNotifyByReferenceID(ctx context.Context, licenseKey string, req models.CancelNotifyByReferenceIDRequest) (int, error)
	// CancelConference is unlicensed: the conference key is the credential.
	CancelConference(ctx context.Context, req models.CancelConferenceRequest) (bool, error)
}

type ListMemberService interface {
	AddNewList(ctx context.Context, licenseKey string, req models.AddNewListRequest) (models.ListInfo, error)
	AlterListID(ctx context.Context, licenseKey string, req models.AlterListIDRequest) (models.ListInfo, error)
	DeleteList(ctx context.Context, licenseKey string, req models.DeleteListRequest) (bool, error)
	DialList(ctx context.Context, licenseKey string, req models.DialListRequest) (models.DialListReturn, error)
	DialListAdvanced(ctx context.Context, licenseKey string, req models.DialListAdvancedRequest) (models.DialListReturn, error)
	GetListIDsByLicenseKey(ctx context.Context, licenseKey string) ([]models.ListInfo, error)
	AddListMember(ctx context.Context, licenseKey string, req models.AddListMemberRequest) (models.ListMember, error)
	AlterListMember(ctx context.Context, licenseKey string, req models.AlterListMemberRequest) (models.ListMember, error)
	DeleteListMember(ctx context.Context, licenseKey string, req models.DeleteListMemberRequest) (bool, error)
	GetListMembersByListID(ctx context.Context, licenseKey string, req models.ListMembersByListIDRequest) ([]models.ListMember, error)
}

type SoundService interface {
	UploadSoundFile(ctx context.Context, licenseKey string, req models.UploadSoundFileRequest) (bool, error)
	GetSoundFile(ctx context.Context, licenseKey string, req models.SoundFileRequest) (models.Base64Binary, error)
	GetSoundFileInMP3(ctx context.Context, licenseKey string, req models.SoundFileInMP3Request) (models.Base64Binary, error)
	GetSoundFileInUlaw(ctx context.Context, licenseKey string, req models.SoundFileRequest) (models.Base64Binary, error)
	GetSoundFileLength(ctx context.Context, licenseKey string, req models.SoundFileRequest) (float64, error)
	GetSoundFileURL(ctx context.Context, licenseKey string, req models.SoundFileRequest) (string, error)
	GetTTSInMP3(ctx context.Context, licenseKey string, req models.TTSInMP3Request) (models.Base64Binary, error)
	GetTTSInULAW(ctx context.Context, licenseKey string, req models.TTSInULAWRequest) (models.Base64Binary, error)
	RecordSoundViaPhoneCall(ctx context.Context, licenseKey string, req models.RecordSoundViaPhoneCallRequest) (bool, error)
	RemoveSoundFile(ctx context.Context, licenseKey string, req models.RemoveSoundFileRequest) (bool, error)
	RenameSoundFile(ctx context.Context, licenseKey string, req models.RenameSoundFileRequest) (bool, error)
	ReturnSoundFileIDs(ctx context.Context, licenseKey string) ([]string, error)
}

type ScriptService interface {
	SetIncomingCallScript(ctx context.Context, licenseKey string, req models.SetIncomingCallScriptRequest) (bool, error)
	GetIncomingCallScript(ctx context.Context, licenseKey string, req models.IncomingCallScriptRequest) (string, error)
	ScriptSave(ctx context.Context, licenseKey string, req models.ScriptSaveRequest) (bool, error)
	ScriptLoad(ctx context.Context, licenseKey string, req models.ScriptLoadRequest) (string, error)
	ScriptList(ctx context.Context, licenseKey string, req models.ScriptListRequest) ([]string, error)
	ScriptDelete(ctx context.Context, licenseKey string, req models.ScriptDeleteRequest) (bool, error)
}

type LicenseService interface {
	AssignIncomingNumber(ctx context.Context, licenseKey string, req models.AssignIncomingNumberRequest) (bool, error)
	GetAssignedNumbers(ctx context.Context, licenseKey string) ([]string, error)
}

// InfoService serves the unlicensed reference data.
type InfoService interface {
	GetAvailableAreaCodes(ctx context.Context) ([]models.AreaCode, error)
	GetResponseCodes(ctx context.Context) ([]models.ResponseCode, error)
	GetVersion(ctx context.Context) (string, error)
	GetVoices(ctx context.Context) ([]models.Voice, error)
	GetAvailableIncomingNumbers(ctx context.Context, req models.AvailableIncomingNumbersRequest) ([]string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
