package models

import "encoding/xml"

// AvailableIncomingNumbersRequest optionally narrows the search to one area
// code. An empty filter lists every available number.
type AvailableIncomingNumbersRequest struct {
	AreaCodeFilter string `query:"areaCodeFilter"`
}

type GetAvailableAreaCodes struct {
	XMLName xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetAvailableAreaCodes"`
}

type GetResponseCodes struct {
	XMLName xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetResponseCodes"`
}

type GetVersion struct {
	XMLName xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetVersion"`
}

type GetVoices struct {
	XMLName xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ getVoices"`
}

type GetAvailableIncomingNumbers struct {
	XMLName        xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetAvailableIncomingNumbers"`
	AreaCodeFilter string   `xml:"AreaCodeFilter"`
}
