package models

import "encoding/xml"

type SetIncomingCallScriptRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Script      string `json:"script" validate:"required"`
}

type IncomingCallScriptRequest struct {
	PhoneNumber string `query:"phoneNumber" validate:"required"`
}

type ScriptSaveRequest struct {
	ScriptName string `json:"scriptName" validate:"required"`
	ScriptText string `json:"scriptText" validate:"required"`
}

type ScriptLoadRequest struct {
	ScriptName string `query:"scriptName" validate:"required"`
}

type ScriptListRequest struct {
	IncludeGlobalScripts bool `query:"includeGlobalScripts"`
}

type ScriptDeleteRequest struct {
	ScriptName string `json:"scriptName" validate:"required"`
}

type SetIncomingCallScript struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ SetIncomingCallScript"`
	PhoneNumber string   `xml:"PhoneNumber"`
	Script      string   `xml:"Script"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type GetIncomingCallScript struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetIncomingCallScript"`
	PhoneNumber string   `xml:"PhoneNumber"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type ScriptSave struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ ScriptSave"`
	ScriptName string   `xml:"ScriptName"`
	ScriptText string   `xml:"ScriptText"`
	LicenseKey string   `xml:"LicenseKey"`
}

type ScriptLoad struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ ScriptLoad"`
	ScriptName string   `xml:"ScriptName"`
	LicenseKey string   `xml:"LicenseKey"`
}

type ScriptList struct {
	XMLName              xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ ScriptList"`
	IncludeGlobalScripts bool     `xml:"IncludeGlobalScripts"`
	LicenseKey           string   `xml:"LicenseKey"`
}

type ScriptDelete struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ ScriptDelete"`
	ScriptName string   `xml:"ScriptName"`
	LicenseKey string   `xml:"LicenseKey"`
}
