package models

import (
	"encoding/json"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "utc designator",
			value: "2030-01-02T03:04:05Z",
			want:  time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "offset converted to utc",
			value: "2030-01-02T05:04:05+02:00",
			want:  time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "naive treated as utc",
			value: "2030-01-02T03:04:05",
			want:  time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:  "naive with fraction",
			value: "2030-01-02T03:04:05.5",
			want:  time.Date(2030, 1, 2, 3, 4, 5, 500000000, time.UTC),
		},
		{name: "date only", value: "2030-01-02", wantErr: true},
		{name: "garbage", value: "tomorrow", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestSoapTime_Text(t *testing.T) {
	t.Run("zero marshals as minimum value", func(t *testing.T) {
		out, err := SoapTime{}.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "0001-01-01T00:00:00", string(out))
	})

	t.Run("non zero marshals in utc", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		out, err := NewSoapTime(time.Date(2030, 1, 2, 5, 4, 5, 0, loc)).MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "2030-01-02T03:04:05Z", string(out))
	})

	t.Run("zone-less upstream value", func(t *testing.T) {
		var s SoapTime
		require.NoError(t, s.UnmarshalText([]byte("2024-06-01T10:20:30.1234567")))
		assert.Equal(t, 2024, s.Year())
		assert.Equal(t, 123456700, s.Nanosecond())
	})

	t.Run("minimum and empty are zero", func(t *testing.T) {
		var s SoapTime
		require.NoError(t, s.UnmarshalText([]byte("0001-01-01T00:00:00")))
		assert.True(t, s.IsZero())
		require.NoError(t, s.UnmarshalText([]byte("  ")))
		assert.True(t, s.IsZero())
	})

	t.Run("invalid", func(t *testing.T) {
		var s SoapTime
		assert.Error(t, s.UnmarshalText([]byte("yesterday")))
	})
}

func TestSoapTime_InXMLAndJSON(t *testing.T) {
	type wrapper struct {
		XMLName xml.Name `xml:"W" json:"-"`
		At      SoapTime `xml:"At" json:"at"`
	}

	var w wrapper
	require.NoError(t, xml.Unmarshal([]byte(`<W><At>2024-06-01T10:20:30</At></W>`), &w))

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-06-01T10:20:30Z"}`, string(out))
}

func TestBase64Binary(t *testing.T) {
	t.Run("round trip through xml", func(t *testing.T) {
		type wrapper struct {
			XMLName xml.Name     `xml:"W"`
			Data    Base64Binary `xml:"Data"`
		}

		out, err := xml.Marshal(wrapper{Data: Base64Binary("RIFF")})
		require.NoError(t, err)
		assert.Equal(t, `<W><Data>UklGRg==</Data></W>`, string(out))

		var back wrapper
		require.NoError(t, xml.Unmarshal(out, &back))
		assert.Equal(t, Base64Binary("RIFF"), back.Data)
	})

	t.Run("line wrapped input", func(t *testing.T) {
		var b Base64Binary
		require.NoError(t, b.UnmarshalText([]byte("UklG\n  Rg==\n")))
		assert.Equal(t, Base64Binary("RIFF"), b)
	})

	t.Run("json string", func(t *testing.T) {
		var req UploadSoundFileRequest
		require.NoError(t, json.Unmarshal([]byte(`{"fileBinary":"UklGRg==","soundFileID":"a"}`), &req))
		assert.Equal(t, Base64Binary("RIFF"), req.FileBinary)
	})

	t.Run("empty decodes to nil", func(t *testing.T) {
		b := Base64Binary("x")
		require.NoError(t, b.UnmarshalText(nil))
		assert.Nil(t, b)
	})

	t.Run("invalid", func(t *testing.T) {
		var b Base64Binary
		assert.Error(t, b.UnmarshalText([]byte("!!!")))
	})
}

func TestErrorDetail_WithMessage(t *testing.T) {
	detail := UpstreamFailure.WithMessage("Invalid License Key")

	assert.Equal(t, 502, detail.StatusCode)
	assert.Equal(t, "Invalid License Key", detail.Message)
	assert.Equal(t, "Upstream service failure.", UpstreamFailure.Message, "catalog entry must stay untouched")
	assert.NotSame(t, UpstreamFailure, detail)
}
