package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	actionCancelNotify              = "CancelNotify"
	actionCancelNotifyByReferenceID = "CancelNotifyByReferenceID"
	actionCancelConference          = "CancelConference"
)

func (a *soapAdapter) CancelNotify(ctx context.Context, req models.CancelNotify) (bool, error) {
	return call[bool](ctx, a, actionCancelNotify, req)
}

func (a *soapAdapter) CancelNotifyByReferenceID(ctx context.Context, req models.CancelNotifyByReferenceID) (int, error) {
	return call[int](ctx, a, actionCancelNotifyByReferenceID, req)
}

func (a *soapAdapter) CancelConference(ctx context.Context, req models.CancelConference) (bool, error) {
	return call[bool](ctx, a, actionCancelConference, req)
}
