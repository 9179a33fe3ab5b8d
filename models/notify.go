package models

import "encoding/xml"

// NotifyPhoneBasicRequest is the body of POST /Notify/NotifyPhoneBasic.
type NotifyPhoneBasicRequest struct {
	PhoneNumberToDial string `json:"phoneNumberToDial" validate:"required"`
	TextToSay         string `json:"textToSay" validate:"required"`
	CallerID          string `json:"callerID"`
	CallerIDName      string `json:"callerIDName"`
	VoiceID           string `json:"voiceID"`
}

// NotifyPhoneBasicWithTryCountRequest adds the number of redial attempts for
// unanswered or busy calls.
type NotifyPhoneBasicWithTryCountRequest struct {
	TryCount          int16  `json:"tryCount" validate:"gte=0"`
	PhoneNumberToDial string `json:"phoneNumberToDial" validate:"required"`
	TextToSay         string `json:"textToSay" validate:"required"`
	CallerID          string `json:"callerID"`
	CallerIDName      string `json:"callerIDName"`
	VoiceID           string `json:"voiceID"`
}

// NotifyPhoneBasicWithTransferRequest adds the number the call is transferred
// to when the recipient presses 0.
type NotifyPhoneBasicWithTransferRequest struct {
	PhoneNumberToDial string `json:"phoneNumberToDial" validate:"required"`
	TransferNumber    string `json:"transferNumber" validate:"required"`
	TextToSay         string `json:"textToSay" validate:"required"`
	CallerID          string `json:"callerID"`
	CallerIDName      string `json:"callerIDName"`
	VoiceID           string `json:"voiceID"`
}

type NotifyPhoneEnglishBasicRequest struct {
	PhoneNumberToDial string `json:"phoneNumberToDial" validate:"required"`
	TextToSay         string `json:"textToSay" validate:"required"`
}

// NotifyMultiplePhoneBasicRequest dials every number of a semicolon
// separated list.
type NotifyMultiplePhoneBasicRequest struct {
	PhoneNumbersToDial string `json:"phoneNumbersToDial" validate:"required,delimlist"`
	TextToSay          string `json:"textToSay" validate:"required"`
	CallerID           string `json:"callerID"`
	CallerIDName       string `json:"callerIDName"`
	VoiceID            string `json:"voiceID"`
}

type NotifyMultiplePhoneBasicWithCPMRequest struct {
	PhoneNumbersToDial string `json:"phoneNumbersToDial" validate:"required,delimlist"`
	TextToSay          string `json:"textToSay" validate:"required"`
	CallerID           string `json:"callerID"`
	CallerIDName       string `json:"callerIDName"`
	VoiceID            string `json:"voiceID"`
	CallsPerMinute     int    `json:"callsPerMinute" validate:"gte=0"`
}

type NotifyMultiplePhoneBasicWithCPMandReferenceIDRequest struct {
	PhoneNumbersToDial string `json:"phoneNumbersToDial" validate:"required,delimlist"`
	TextToSay          string `json:"textToSay" validate:"required"`
	CallerID           string `json:"callerID"`
	CallerIDName       string `json:"callerIDName"`
	VoiceID            string `json:"voiceID"`
	CallsPerMinute     int    `json:"callsPerMinute" validate:"gte=0"`
	ReferenceID        string `json:"referenceID"`
}

// NotifyPhoneAdvancedRequest exposes every option of a single call.
// UTCScheduledDateTime is RFC 3339 or a naive UTC timestamp; empty means now.
type NotifyPhoneAdvancedRequest struct {
	PhoneNumberToDial    string `json:"phoneNumberToDial" validate:"required"`
	TransferNumber       string `json:"transferNumber"`
	VoiceID              int    `json:"voiceID" validate:"gte=0"`
	CallerID             string `json:"callerID"`
	CallerIDName         string `json:"callerIDName"`
	TextToSay            string `json:"textToSay" validate:"required"`
	TryCount             int    `json:"tryCount" validate:"gte=0"`
	NextTryInSeconds     int    `json:"nextTryInSeconds" validate:"gte=0"`
	UTCScheduledDateTime string `json:"utcScheduledDateTime" validate:"omitempty,scheduled"`
	TTSRate              uint8  `json:"ttsRate"`
	TTSVolume            uint8  `json:"ttsVolume"`
	MaxCallLength        int    `json:"maxCallLength" validate:"gte=0"`
	StatusChangePostURL  string `json:"statusChangePostUrl"`
	ReferenceID          string `json:"referenceID"`
}

// NotifyMultiplePhoneAdvancedRequest is a JSON array of advanced requests
// sent to the upstream as one batch.
type NotifyMultiplePhoneAdvancedRequest []NotifyPhoneAdvancedRequest

// AdvancedNotifyRequest is the upstream shape of a single advanced call.
type AdvancedNotifyRequest struct {
	PhoneNumberToDial    string   `xml:"PhoneNumberToDial"`
	TransferNumber       string   `xml:"TransferNumber"`
	VoiceID              int      `xml:"VoiceID"`
	CallerIDNumber       string   `xml:"CallerIDNumber"`
	CallerIDName         string   `xml:"CallerIDName"`
	TextToSay            string   `xml:"TextToSay"`
	LicenseKey           string   `xml:"LicenseKey"`
	TryCount             int      `xml:"TryCount"`
	NextTryInSeconds     int      `xml:"NextTryInSeconds"`
	UTCScheduledDateTime SoapTime `xml:"UTCScheduledDateTime"`
	TTSRate              uint8    `xml:"TTSrate"`
	TTSVolume            uint8    `xml:"TTSvolume"`
	MaxCallLength        int      `xml:"MaxCallLength"`
	StatusChangePostURL  string   `xml:"StatusChangePostUrl"`
	ReferenceID          string   `xml:"ReferenceID"`
}

type NotifyPhoneBasic struct {
	XMLName           xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ NotifyPhoneBasic"`
	PhoneNumberToDial string   `xml:"PhoneNumberToDial"`
	TextToSay         string   `xml:"TextToSay"`
	CallerID          string   `xml:"CallerID"`
	CallerIDName      string   `xml:"CallerIDname"`
	VoiceID           string   `xml:"VoiceID"`
	LicenseKey        string   `xml:"LicenseKey"`
}

type NotifyPhoneBasicWithTryCount struct {
	XMLName           xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ NotifyPhoneBasicWithTryCount"`
	TryCount          int16    `xml:"TryCount"`
	PhoneNumberToDial string   `xml:"PhoneNumberToDial"`
	TextToSay         string   `xml:"TextToSay"`
	CallerID          string   `xml:"CallerID"`
	CallerIDName      string   `xml:"CallerIDname"`
	VoiceID           string   `xml:"VoiceID"`
	LicenseKey        string   `xml:"LicenseKey"`
}

type NotifyPhoneBasicWithTransfer struct {
	XMLName           xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ NotifyPhoneBasicWithTransfer"`
	PhoneNumberToDial string   `xml:"PhoneNumberToDial"`
	TransferNumber    string   `xml:"TransferNumber"`
	TextToSay         string   `xml:"TextToSay"`
	CallerID          string   `xml:"CallerID"`
	CallerIDName      string   `xml:"CallerIDname"`
	VoiceID           string   `xml:"VoiceID"`
	LicenseKey        string   `xml:"LicenseKey"`
}

type NotifyPhoneEnglishBasic struct {
	XMLName           xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ NotifyPhoneEnglishBasic"`
	PhoneNumberToDial string   `xml:"PhoneNumberToDial"`
	TextToSay         string   `xml:"TextToSay"`
	LicenseKey        string   `xml:"LicenseKey"`
}

type NotifyMultiplePhoneBasic struct {
	XMLName            xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ NotifyMultiplePhoneBasic"`
	PhoneNumbersToDial string   `xml:"PhoneNumbersToDial"`
	TextToSay          string   `xml:"TextToSay"`
	CallerID           string   `xml:"CallerID"`
	CallerIDName       string   `xml:"CallerIDname"`
	VoiceID            string   `xml:"VoiceID"`
	LicenseKey         string   `xml:"LicenseKey"`
}

type NotifyMultiplePhoneBasicWithCPM struct {
	XMLName            xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ NotifyMultiplePhoneBasicWithCPM"`
	PhoneNumbersToDial string   `xml:"PhoneNumbersToDial"`
	TextToSay          string   `xml:"TextToSay"`
	CallerID           string   `xml:"CallerID"`
	CallerIDName       string   `xml:"CallerIDname"`
	VoiceID            string   `xml:"VoiceID"`
	CallsPerMinute     int      `xml:"CallsPerMinute"`
	LicenseKey         string   `xml:"LicenseKey"`
}

type NotifyMultiplePhoneBasicWithCPMandReferenceID struct {
	XMLName            xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ NotifyMultiplePhoneBasicWithCPMandReferenceID"`
	PhoneNumbersToDial string   `xml:"PhoneNumbersToDial"`
	TextToSay          string   `xml:"TextToSay"`
	CallerID           string   `xml:"CallerID"`
	CallerIDName       string   `xml:"CallerIDname"`
	VoiceID            string   `xml:"VoiceID"`
	CallsPerMinute     int      `xml:"CallsPerMinute"`
	ReferenceID        string   `xml:"ReferenceID"`
	LicenseKey         string   `xml:"LicenseKey"`
}

type NotifyPhoneAdvanced struct {
	XMLName xml.Name              `xml:"http://ws.cdyne.com/NotifyWS/ NotifyPhoneAdvanced"`
	Request AdvancedNotifyRequest `xml:"anr"`
}

type NotifyMultiplePhoneAdvanced struct {
	XMLName  xml.Name                `xml:"http://ws.cdyne.com/NotifyWS/ NotifyMultiplePhoneAdvanced"`
	Requests []AdvancedNotifyRequest `xml:"anrs>AdvancedNotifyRequest"`
}
