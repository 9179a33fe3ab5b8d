package models

import "encoding/xml"

type AddNewListRequest struct {
	ListName     string `json:"listName" validate:"required"`
	ParentListID int    `json:"parentListID" validate:"gte=0"`
}

type AlterListIDRequest struct {
	ListID       int    `json:"listID" validate:"gt=0"`
	ParentListID int    `json:"parentListID" validate:"gte=0"`
	ListName     string `json:"listName" validate:"required"`
}

type DeleteListRequest struct {
	ListID int `json:"listID" validate:"gt=0"`
}

type DialListRequest struct {
	ListID             int    `json:"listID" validate:"gt=0"`
	DialRecursiveLists bool   `json:"dialRecursiveLists"`
	VoiceID            uint8  `json:"voiceID"`
	CallerID           string `json:"callerID"`
	CallerIDName       string `json:"callerIDName"`
	TextToSay          string `json:"textToSay" validate:"required"`
}

// DialListAdvancedRequest dials a list with per-call options. NextTryInSeconds
// is free text and falls back to 60 when it is not a 16-bit integer.
type DialListAdvancedRequest struct {
	CallerID             string `json:"callerID"`
	CallerIDName         string `json:"callerIDName"`
	VoiceID              uint8  `json:"voiceID"`
	TextToSay            string `json:"textToSay" validate:"required"`
	TryCount             uint8  `json:"tryCount"`
	Extension            string `json:"extension"`
	TransferNumber       string `json:"transferNumber"`
	NextTryInSeconds     string `json:"nextTryInSeconds"`
	TTSRate              uint8  `json:"ttsRate"`
	TTSVolume            uint8  `json:"ttsVolume"`
	ScheduledUTCDatetime string `json:"scheduledUTCDatetime" validate:"omitempty,scheduled"`
	ListID               int    `json:"listID" validate:"gt=0"`
	DialRecursiveList    bool   `json:"dialRecursiveList"`
}

type AddListMemberRequest struct {
	ListID      int    `json:"listID" validate:"gt=0"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	ClientID    string `json:"clientID"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type AlterListMemberRequest struct {
	ListMemberID int    `json:"listMemberID" validate:"gt=0"`
	ClientID     string `json:"clientID"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
}

type DeleteListMemberRequest struct {
	ListMemberID int `json:"listMemberID" validate:"gt=0"`
}

type ListMembersByListIDRequest struct {
	ListID int `query:"listID" validate:"gt=0"`
}

// ListDialFunctions is the upstream LM_Functions structure.
type ListDialFunctions struct {
	LicenseKey           string   `xml:"LicenseKey"`
	ListID               int      `xml:"ListID"`
	DialRecursiveLists   bool     `xml:"DialRecursiveLists"`
	CallerID             string   `xml:"CallerID"`
	CallerIDName         string   `xml:"CallerIDName"`
	VoiceID              uint8    `xml:"VoiceID"`
	TextToSay            string   `xml:"TextToSay"`
	TryCount             uint8    `xml:"TryCount"`
	Extension            string   `xml:"Extension"`
	TransferNumber       string   `xml:"TransferNumber"`
	NextTryInSeconds     int16    `xml:"NextTryInSeconds"`
	TTSRate              uint8    `xml:"TTSRate"`
	TTSVolume            uint8    `xml:"TTSVolume"`
	ScheduledUTCDatetime SoapTime `xml:"ScheduledUTCDatetime"`
}

type AddNewList struct {
	XMLName      xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_AddNewList"`
	ListName     string   `xml:"ListName"`
	ParentListID int      `xml:"ParentListID"`
	LicenseKey   string   `xml:"LicenseKey"`
}

type AlterListID struct {
	XMLName      xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_AlterListID"`
	ListID       int      `xml:"ListID"`
	ParentListID int      `xml:"ParentListID"`
	ListName     string   `xml:"ListName"`
	LicenseKey   string   `xml:"LicenseKey"`
}

type DeleteList struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_DeleteList"`
	ListID     int      `xml:"ListID"`
	LicenseKey string   `xml:"LicenseKey"`
}

type DialList struct {
	XMLName            xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_DialList"`
	ListID             int      `xml:"ListID"`
	DialRecursiveLists bool     `xml:"DialRecursiveLists"`
	CallerID           string   `xml:"CallerID"`
	CallerIDName       string   `xml:"CallerIDName"`
	VoiceID            uint8    `xml:"VoiceID"`
	TextToSay          string   `xml:"TextToSay"`
	LicenseKey         string   `xml:"LicenseKey"`
}

type DialListAdvanced struct {
	XMLName   xml.Name          `xml:"http://ws.cdyne.com/NotifyWS/ LM_DialListAdvanced"`
	Functions ListDialFunctions `xml:"LMF"`
}

type GetListIDsByLicenseKey struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_GetListIDsByLicensekey"`
	LicenseKey string   `xml:"LicenseKey"`
}

type AddListMember struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_AddListMember"`
	ListID      int      `xml:"ListID"`
	LicenseKey  string   `xml:"LicenseKey"`
	PhoneNumber string   `xml:"PhoneNumber"`
	ClientID    string   `xml:"ClientID"`
	FirstName   string   `xml:"FirstName"`
	LastName    string   `xml:"LastName"`
}

type AlterListMember struct {
	XMLName      xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_AlterListMember"`
	ListMemberID int      `xml:"ListMemberID"`
	LicenseKey   string   `xml:"LicenseKey"`
	ClientID     string   `xml:"ClientID"`
	FirstName    string   `xml:"FirstName"`
	LastName     string   `xml:"LastName"`
	PhoneNumber  string   `xml:"PhoneNumber"`
}

type DeleteListMember struct {
	XMLName      xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_DeleteListMember"`
	ListMemberID int      `xml:"ListMemberID"`
	LicenseKey   string   `xml:"LicenseKey"`
}

type GetListMembersByListID struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ LM_GetListMembersByListID"`
	ListID     int      `xml:"ListID"`
	LicenseKey string   `xml:"LicenseKey"`
}
