package models

import "encoding/xml"

// MaxSoundFileSize bounds the decoded size of an uploaded sound file.
const MaxSoundFileSize = 2 << 20

// UploadSoundFileRequest carries the sound file as base64 text in JSON.
type UploadSoundFileRequest struct {
	FileBinary  Base64Binary `json:"fileBinary" validate:"required,max=2097152"`
	SoundFileID string       `json:"soundFileID" validate:"required"`
}

// SoundFileRequest selects a stored sound file by its ID.
type SoundFileRequest struct {
	SoundFileID string `query:"soundFileId" validate:"required"`
}

type SoundFileInMP3Request struct {
	SoundFileID string `query:"soundFileId" validate:"required"`
	BitRate     int    `query:"bitRate" validate:"gt=0"`
}

type TTSInMP3Request struct {
	TextToSay string `json:"textToSay" validate:"required"`
	VoiceID   int    `json:"voiceID" validate:"gte=0"`
	BitRate   int    `json:"bitRate" validate:"gt=0"`
	TTSRate   uint8  `json:"ttsRate"`
	TTSVolume uint8  `json:"ttsVolume"`
}

type TTSInULAWRequest struct {
	TextToSay string `json:"textToSay" validate:"required"`
	VoiceID   int    `json:"voiceID" validate:"gte=0"`
	TTSRate   uint8  `json:"ttsRate"`
	TTSVolume uint8  `json:"ttsVolume"`
}

type RecordSoundViaPhoneCallRequest struct {
	PhoneNumberToDial string `json:"phoneNumberToDial" validate:"required"`
	SoundFileID       string `json:"soundFileID" validate:"required"`
}

type RemoveSoundFileRequest struct {
	SoundFileID string `json:"soundFileID" validate:"required"`
}

type RenameSoundFileRequest struct {
	SoundFileID    string `json:"soundFileID" validate:"required"`
	NewSoundFileID string `json:"newSoundFileID" validate:"required"`
}

type UploadSoundFile struct {
	XMLName     xml.Name     `xml:"http://ws.cdyne.com/NotifyWS/ UploadSoundFile"`
	FileBinary  Base64Binary `xml:"FileBinary"`
	SoundFileID string       `xml:"SoundFileID"`
	LicenseKey  string       `xml:"LicenseKey"`
}

type GetSoundFile struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetSoundFile"`
	SoundFileID string   `xml:"SoundFileID"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type GetSoundFileInMP3 struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetSoundFileInMP3"`
	SoundFileID string   `xml:"SoundFileID"`
	BitRate     int      `xml:"BitRate"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type GetSoundFileInUlaw struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetSoundFileInUlaw"`
	SoundFileID string   `xml:"SoundFileID"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type GetSoundFileLength struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetSoundFileLength"`
	SoundFileID string   `xml:"SoundFileID"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type GetSoundFileURL struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetSoundFileURL"`
	SoundFileID string   `xml:"SoundFileID"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type GetTTSInMP3 struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetTTSInMP3"`
	TextToSay  string   `xml:"TextToSay"`
	VoiceID    int      `xml:"VoiceID"`
	BitRate    int      `xml:"BitRate"`
	TTSRate    uint8    `xml:"TTSrate"`
	TTSVolume  uint8    `xml:"TTSvolume"`
	LicenseKey string   `xml:"LicenseKey"`
}

type GetTTSInULAW struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ GetTTSInULAW"`
	TextToSay  string   `xml:"TextToSay"`
	VoiceID    int      `xml:"VoiceID"`
	TTSRate    uint8    `xml:"TTSrate"`
	TTSVolume  uint8    `xml:"TTSvolume"`
	LicenseKey string   `xml:"LicenseKey"`
}

type RecordSoundViaPhoneCall struct {
	XMLName           xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ RecordSoundViaPhoneCall"`
	PhoneNumberToDial string   `xml:"PhoneNumberToDial"`
	SoundFileID       string   `xml:"SoundFileID"`
	LicenseKey        string   `xml:"LicenseKey"`
}

type RemoveSoundFile struct {
	XMLName     xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ RemoveSoundFile"`
	SoundFileID string   `xml:"SoundFileID"`
	LicenseKey  string   `xml:"LicenseKey"`
}

type RenameSoundFile struct {
	XMLName        xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ RenameSoundFile"`
	SoundFileID    string   `xml:"SoundFileID"`
	NewSoundFileID string   `xml:"NewSoundFileID"`
	LicenseKey     string   `xml:"LicenseKey"`
}

type ReturnSoundFileIDs struct {
	XMLName    xml.Name `xml:"http://ws.cdyne.com/NotifyWS/ ReturnSoundFileIDs"`
	LicenseKey string   `xml:"LicenseKey"`
}
