package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	actionNotifyPhoneBasic                              = "NotifyPhoneBasic"
	actionNotifyPhoneBasicWithTryCount                  = "NotifyPhoneBasicWithTryCount"
	actionNotifyPhoneBasicWithTransfer                  = "NotifyPhoneBasicWithTransfer"
	actionNotifyPhoneEnglishBasic                       = "NotifyPhoneEnglishBasic"
	actionNotifyMultiplePhoneBasic                      = "NotifyMultiplePhoneBasic"
	actionNotifyMultiplePhoneBasicWithCPM               = "NotifyMultiplePhoneBasicWithCPM"
	actionNotifyMultiplePhoneBasicWithCPMandReferenceID = "NotifyMultiplePhoneBasicWithCPMandReferenceID"
	actionNotifyPhoneAdvanced                           = "NotifyPhoneAdvanced"
	actionNotifyMultiplePhoneAdvanced                   = "NotifyMultiplePhoneAdvanced"
)

func (a *soapAdapter) NotifyPhoneBasic(ctx context.Context, req models.NotifyPhoneBasic) (models.NotifyReturn, error) {
	return call[models.NotifyReturn](ctx, a, actionNotifyPhoneBasic, req)
}

func (a *soapAdapter) NotifyPhoneBasicWithTryCount(ctx context.Context, req models.NotifyPhoneBasicWithTryCount) (models.NotifyReturn, error) {
	return call[models.NotifyReturn](ctx, a, actionNotifyPhoneBasicWithTryCount, req)
}

func (a *soapAdapter) NotifyPhoneBasicWithTransfer(ctx context.Context, req models.NotifyPhoneBasicWithTransfer) (models.NotifyReturn, error) {
	return call[models.NotifyReturn](ctx, a, actionNotifyPhoneBasicWithTransfer, req)
}

func (a *soapAdapter) NotifyPhoneEnglishBasic(ctx context.Context, req models.NotifyPhoneEnglishBasic) (models.NotifyReturn, error) {
	return call[models.NotifyReturn](ctx, a, actionNotifyPhoneEnglishBasic, req)
}

func (a *soapAdapter) NotifyMultiplePhoneBasic(ctx context.Context, req models.NotifyMultiplePhoneBasic) ([]models.NotifyReturn, error) {
	return callArray[models.NotifyReturn](ctx, a, actionNotifyMultiplePhoneBasic, req)
}

func (a *soapAdapter) NotifyMultiplePhoneBasicWithCPM(ctx context.Context, req models.NotifyMultiplePhoneBasicWithCPM) ([]models.NotifyReturn, error) {
	return callArray[models.NotifyReturn](ctx, a, actionNotifyMultiplePhoneBasicWithCPM, req)
}

func (a *soapAdapter) NotifyMultiplePhoneBasicWithCPMandReferenceID(ctx context.Context, req models.NotifyMultiplePhoneBasicWithCPMandReferenceID) ([]models.NotifyReturn, error) {
	return callArray[models.NotifyReturn](ctx, a, actionNotifyMultiplePhoneBasicWithCPMandReferenceID, req)
}

func (a *soapAdapter) NotifyPhoneAdvanced(ctx context.Context, req models.NotifyPhoneAdvanced) (models.NotifyReturn, error) {
	return call[models.NotifyReturn](ctx, a, actionNotifyPhoneAdvanced, req)
}

func (a *soapAdapter) NotifyMultiplePhoneAdvanced(ctx context.Context, req models.NotifyMultiplePhoneAdvanced) ([]models.NotifyReturn, error) {
	return callArray[models.NotifyReturn](ctx, a, actionNotifyMultiplePhoneAdvanced, req)
}
