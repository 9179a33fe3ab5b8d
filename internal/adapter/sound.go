package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	actionUploadSoundFile         = "UploadSoundFile"
	actionGetSoundFile            = "GetSoundFile"
	actionGetSoundFileInMP3       = "GetSoundFileInMP3"
	actionGetSoundFileInUlaw      = "GetSoundFileInUlaw"
	actionGetSoundFileLength      = "GetSoundFileLength"
	actionGetSoundFileURL         = "GetSoundFileURL"
	actionGetTTSInMP3             = "GetTTSInMP3"
	actionGetTTSInULAW            = "GetTTSInULAW"
	actionRecordSoundViaPhoneCall = "RecordSoundViaPhoneCall"
	actionRemoveSoundFile         = "RemoveSoundFile"
	actionRenameSoundFile         = "RenameSoundFile"
	actionReturnSoundFileIDs      = "ReturnSoundFileIDs"
)

func (a *soapAdapter) UploadSoundFile(ctx context.Context, req models.UploadSoundFile) (bool, error) {
	return call[bool](ctx, a, actionUploadSoundFile, req)
}

func (a *soapAdapter) GetSoundFile(ctx context.Context, req models.GetSoundFile) (models.Base64Binary, error) {
	return call[models.Base64Binary](ctx, a, actionGetSoundFile, req)
}

func (a *soapAdapter) GetSoundFileInMP3(ctx context.Context, req models.GetSoundFileInMP3) (models.Base64Binary, error) {
	return call[models.Base64Binary](ctx, a, actionGetSoundFileInMP3, req)
}

func (a *soapAdapter) GetSoundFileInUlaw(ctx context.Context, req models.GetSoundFileInUlaw) (models.Base64Binary, error) {
	return call[models.Base64Binary](ctx, a, actionGetSoundFileInUlaw, req)
}

func (a *soapAdapter) GetSoundFileLength(ctx context.Context, req models.GetSoundFileLength) (float64, error) {
	return call[float64](ctx, a, actionGetSoundFileLength, req)
}

func (a *soapAdapter) GetSoundFileURL(ctx context.Context, req models.GetSoundFileURL) (string, error) {
	return call[string](ctx, a, actionGetSoundFileURL, req)
}

func (a *soapAdapter) GetTTSInMP3(ctx context.Context, req models.GetTTSInMP3) (models.Base64Binary, error) {
	return call[models.Base64Binary](ctx, a, actionGetTTSInMP3, req)
}

func (a *soapAdapter) GetTTSInULAW(ctx context.Context, req models.GetTTSInULAW) (models.Base64Binary, error) {
	return call[models.Base64Binary](ctx, a, actionGetTTSInULAW, req)
}

func (a *soapAdapter) RecordSoundViaPhoneCall(ctx context.Context, req models.RecordSoundViaPhoneCall) (bool, error) {
	return call[bool](ctx, a, actionRecordSoundViaPhoneCall, req)
}

func (a *soapAdapter) RemoveSoundFile(ctx context.Context, req models.RemoveSoundFile) (bool, error) {
	return call[bool](ctx, a, actionRemoveSoundFile, req)
}

func (a *soapAdapter) RenameSoundFile(ctx context.Context, req models.RenameSoundFile) (bool, error) {
	return call[bool](ctx, a, actionRenameSoundFile, req)
}

func (a *soapAdapter) ReturnSoundFileIDs(ctx context.Context, req models.ReturnSoundFileIDs) ([]string, error) {
	return callArray[string](ctx, a, actionReturnSoundFileIDs, req)
}
