package models

import "encoding/xml"

// QueueIDStatusRequest selects one queued call by its upstream queue ID.
type QueueIDStatusRequest struct {
	QueueID int64 `query:"queueId" validate:"gt=0"`
}

type QueueIDStatusesByPhoneNumberRequest struct {
	PhoneNumber string `query:"phoneNumber" validate:"required"`
}

// MultipleQueueIDStatusRequest carries queue IDs as "1;2; 3".
type MultipleQueueIDStatusRequest struct {
	QueueIDs string `query:"queueIds" validate:"required,numlist"`
}

type GetQueueIDStatus struct {
	XMLName xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetQueueIDStatus"`
	QueueID int64    `xml:"QueueID"`
}

type GetQueueIDStatusWithAdvancedInfo struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetQueueIDStatusWithAdvancedInfo"`
	QueueID    int64    `xml:"QueueID"`
	LicenseKey string   `xml:"LicenseKey"`
}

type GetQueueIDStatusesByPhoneNumber struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetQueueIDStatusesByPhoneNumber"`
	PhoneNumber string   `xml:"PhoneNumber"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type GetMultipleQueueIDStatus struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetMultipleQueueIdStatus"`
	QueueIDs   string   `xml:"QueueIDs"`
	LicenseKey string   `xml:"LicenseKey"`
}
