package models

import "encoding/xml"

type AssignIncomingNumberRequest struct {
	IncomingPhoneNumber string `json:"incomingPhoneNumber" validate:"required"`
}

type AssignIncomingNumber struct {
	XMLName             xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ AssignIncomingNumber"`
	IncomingPhoneNumber string   `xml:"IncomingPhoneNumber"`
	LicenseKey          string   `xml:"LicenseKey"`
}

type GetAssignedNumbers struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetAssignedNumbers"`
	LicenseKey string   `xml:"LicenseKey"`
}
