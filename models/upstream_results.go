package models

// NotifyReturn describes a queued or completed call as reported by the
// PhoneNotify service. Every notify and status operation returns it.
type NotifyReturn struct {
	ResponseCode     int        `xml:"ResponseCode" json:"responseCode"`
	ResponseText     string     `xml:"ResponseText" json:"responseText"`
	CallAnswered     bool       `xml:"CallAnswered" json:"callAnswered"`
	QueueID          int64      `xml:"QueueID" json:"queueID"`
	TryCount         int        `xml:"TryCount" json:"tryCount"`
	Demo             bool       `xml:"Demo" json:"demo"`
	DigitsPressed    string     `xml:"DigitsPressed" json:"digitsPressed"`
	MachineDetection string     `xml:"MachineDetection" json:"machineDetection"`
	Duration         int        `xml:"Duration" json:"duration"`
	StartTime        SoapTime   `xml:"StartTime" json:"startTime"`
	EndTime          SoapTime   `xml:"EndTime" json:"endTime"`
	MinutesBilled    int        `xml:"MinutesBilled" json:"minutesBilled"`
	CostPerMinute    float64    `xml:"CostPerMinute" json:"costPerMinute"`
	CallComplete     bool       `xml:"CallComplete" json:"callComplete"`
	TextToSay        string     `xml:"TextToSay" json:"textToSay"`
	CallerIDUsed     string     `xml:"CallerIDUsed" json:"callerIDUsed"`
	CallerIDNameUsed string     `xml:"CallerIDNameUsed" json:"callerIDNameUsed"`
	ReferenceID      string     `xml:"ReferenceID" json:"referenceID"`
	Variables        []Variable `xml:"Variables>Variable" json:"variables"`
}

// Variable is a name/value pair captured by a call script.
type Variable struct {
	Name  string `xml:"Name" json:"name"`
	Value string `xml:"Value" json:"value"`
}

// DialListReturn is the outcome of dialing every member of a contact list.
type DialListReturn struct {
	ResponseCode  int     `xml:"ResponseCode" json:"responseCode"`
	ResponseText  string  `xml:"ResponseText" json:"responseText"`
	NumbersDialed int     `xml:"NumbersDialed" json:"numbersDialed"`
	QueueIDs      []int64 `xml:"QueueIDs>long" json:"queueIDs"`
}

// ListInfo describes a contact list owned by a license key.
type ListInfo struct {
	ListID       int    `xml:"ListID" json:"listID"`
	ListName     string `xml:"ListName" json:"listName"`
	ParentListID int    `xml:"ParentListID" json:"parentListID"`
	MemberCount  int    `xml:"MemberCount" json:"memberCount"`
}

// ListMember is a single phone contact stored in a contact list.
type ListMember struct {
	ListMemberID int    `xml:"ListMemberID" json:"listMemberID"`
	ListID       int    `xml:"ListID" json:"listID"`
	PhoneNumber  string `xml:"PhoneNumber" json:"phoneNumber"`
	ClientID     string `xml:"ClientID" json:"clientID"`
	FirstName    string `xml:"FirstName" json:"firstName"`
	LastName     string `xml:"LastName" json:"lastName"`
}

// AreaCode is an area code in which incoming numbers can be provisioned.
type AreaCode struct {
	AreaCodeNumber string `xml:"AreaCodeNumber" json:"areaCodeNumber"`
	Location       string `xml:"Location" json:"location"`
}

// ResponseCode documents one of the codes found in NotifyReturn.ResponseCode.
type ResponseCode struct {
	Code int    `xml:"ResponseCode" json:"responseCode"`
	Text string `xml:"ResponseText" json:"responseText"`
}

// Voice is a text-to-speech voice offered by the upstream.
type Voice struct {
	VoiceID       int    `xml:"VoiceID" json:"voiceID"`
	VoiceName     string `xml:"VoiceName" json:"voiceName"`
	VoiceGender   string `xml:"VoiceGender" json:"voiceGender"`
	VoiceAge      string `xml:"VoiceAge" json:"voiceAge"`
	VoiceLanguage string `xml:"VoiceLanguage" json:"voiceLanguage"`
	VoiceSummary  string `xml:"VoiceSummary" json:"voiceSummary"`
}
