package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	actionAddNewList             = "LM_AddNewList"
	actionAlterListID            = "LM_AlterListID"
	actionDeleteList             = "LM_DeleteList"
	actionDialList               = "LM_DialList"
	actionDialListAdvanced       = "LM_DialListAdvanced"
	actionGetListIDsByLicenseKey = "LM_GetListIDsByLicensekey"
	actionAddListMember          = "LM_AddListMember"
	actionAlterListMember        = "LM_AlterListMember"
	actionDeleteListMember       = "LM_DeleteListMember"
	actionGetListMembersByListID = "LM_GetListMembersByListID"
)

func (a *soapAdapter) AddNewList(ctx context.Context, req models.AddNewList) (models.ListInfo, error) {
	return call[models.ListInfo](ctx, a, actionAddNewList, req)
}

func (a *soapAdapter) AlterListID(ctx context.Context, req models.AlterListID) (models.ListInfo, error) {
	return call[models.ListInfo](ctx, a, actionAlterListID, req)
}

func (a *soapAdapter) DeleteList(ctx context.Context, req models.DeleteList) (bool, error) {
	return call[bool](ctx, a, actionDeleteList, req)
}

func (a *soapAdapter) DialList(ctx context.Context, req models.DialList) (models.DialListReturn, error) {
	return call[models.DialListReturn](ctx, a, actionDialList, req)
}

func (a *soapAdapter) DialListAdvanced(ctx context.Context, req models.DialListAdvanced) (models.DialListReturn, error) {
	return call[models.DialListReturn](ctx, a, actionDialListAdvanced, req)
}

func (a *soapAdapter) GetListIDsByLicenseKey(ctx context.Context, req models.GetListIDsByLicenseKey) ([]models.ListInfo, error) {
	return callArray[models.ListInfo](ctx, a, actionGetListIDsByLicenseKey, req)
}

func (a *soapAdapter) AddListMember(ctx context.Context, req models.AddListMember) (models.ListMember, error) {
	return call[models.ListMember](ctx, a, actionAddListMember, req)
}

func (a *soapAdapter) AlterListMember(ctx context.Context, req models.AlterListMember) (models.ListMember, error) {
	return call[models.ListMember](ctx, a, actionAlterListMember, req)
}

func (a *soapAdapter) DeleteListMember(ctx context.Context, req models.DeleteListMember) (bool, error) {
	return call[bool](ctx, a, actionDeleteListMember, req)
}

func (a *soapAdapter) GetListMembersByListID(ctx context.Context, req models.GetListMembersByListID) ([]models.ListMember, error) {
	return callArray[models.ListMember](ctx, a, actionGetListMembersByListID, req)
}
