package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	actionGetQueueIDStatus                 = "GetQueueIDStatus"
	actionGetQueueIDStatusWithAdvancedInfo = "GetQueueIDStatusWithAdvancedInfo"
	actionGetQueueIDStatusesByPhoneNumber  = "GetQueueIDStatusesByPhoneNumber"
	actionGetMultipleQueueIDStatus         = "GetMultipleQueueIdStatus"
)

func (a *soapAdapter) GetQueueIDStatus(ctx context.Context, req models.GetQueueIDStatus) (models.NotifyReturn, error) {
	return call[models.NotifyReturn](ctx, a, actionGetQueueIDStatus, req)
}

func (a *soapAdapter) GetQueueIDStatusWithAdvancedInfo(ctx context.Context, req models.GetQueueIDStatusWithAdvancedInfo) (models.NotifyReturn, error) {
	return call[models.NotifyReturn](ctx, a, actionGetQueueIDStatusWithAdvancedInfo, req)
}

func (a *soapAdapter) GetQueueIDStatusesByPhoneNumber(ctx context.Context, req models.GetQueueIDStatusesByPhoneNumber) ([]models.NotifyReturn, error) {
	return callArray[models.NotifyReturn](ctx, a, actionGetQueueIDStatusesByPhoneNumber, req)
}

func (a *soapAdapter) GetMultipleQueueIDStatus(ctx context.Context, req models.GetMultipleQueueIDStatus) ([]models.NotifyReturn, error) {
	return callArray[models.NotifyReturn](ctx, a, actionGetMultipleQueueIDStatus, req)
}
