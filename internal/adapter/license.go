package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	actionAssignIncomingNumber = "AssignIncomingNumber"
	actionGetAssignedNumbers   = "GetAssignedNumbers"
)

func (a *soapAdapter) AssignIncomingNumber(ctx context.Context, req models.AssignIncomingNumber) (bool, error) {
	return call[bool](ctx, a, actionAssignIncomingNumber, req)
}

func (a *soapAdapter) GetAssignedNumbers(ctx context.Context, req models.GetAssignedNumbers) ([]string, error) {
	return callArray[string](ctx, a, actionGetAssignedNumbers, req)
}
