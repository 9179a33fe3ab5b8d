package models

import "encoding/xml"

type CancelNotifyRequest struct {
	QueueID int64 `query:"queueId" validate:"gt=0"`
}

type CancelNotifyByReferenceIDRequest struct {
	ReferenceID string `query:"referenceId" validate:"required"`
}

// CancelConferenceRequest identifies a conference by its GUID key. The key
// is the only credential this operation takes.
type CancelConferenceRequest struct {
	ConferenceKey string `query:"conferenceKey" validate:"required,identifier"`
}

type CancelNotify struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ CancelNotify"`
	QueueID    int64    `xml:"QueueID"`
	LicenseKey string   `xml:"LicenseKey"`
}

type CancelNotifyByReferenceID struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ CancelNotifyByReferenceID"`
	ReferenceID string   `xml:"ReferenceID"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type CancelConference struct {
	XMLName       xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ CancelConference"`
	ConferenceKey string   `xml:"ConferenceKey"`
}
