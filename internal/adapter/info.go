package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	actionGetAvailableAreaCodes       = "GetAvailableAreaCodes"
	actionGetResponseCodes            = "GetResponseCodes"
	actionGetVersion                  = "GetVersion"
	actionGetVoices                   = "getVoices"
	actionGetAvailableIncomingNumbers = "GetAvailableIncomingNumbers"
)

func (a *soapAdapter) GetAvailableAreaCodes(ctx context.Context) ([]models.AreaCode, error) {
	return callArray[models.AreaCode](ctx, a, actionGetAvailableAreaCodes, models.GetAvailableAreaCodes{})
}

func (a *soapAdapter) GetResponseCodes(ctx context.Context) ([]models.ResponseCode, error) {
	return callArray[models.ResponseCode](ctx, a, actionGetResponseCodes, models.GetResponseCodes{})
}

func (a *soapAdapter) GetVersion(ctx context.Context) (string, error) {
	return call[string](ctx, a, actionGetVersion, models.GetVersion{})
}

func (a *soapAdapter) GetVoices(ctx context.Context) ([]models.Voice, error) {
	return callArray[models.Voice](ctx, a, actionGetVoices, models.GetVoices{})
}

func (a *soapAdapter) GetAvailableIncomingNumbers(ctx context.Context, req models.GetAvailableIncomingNumbers) ([]string, error) {
	return callArray[string](ctx, a, actionGetAvailableIncomingNumbers, req)
}
