package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/mock"
	"github.com/MKhiriev/go-phone-notify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSoundService(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mock.NewMockSoundAdapter(ctrl)
	svc := NewSoundService(upstream, logger.Nop())
	ctx := context.Background()

	t.Run("upload passes the decoded bytes", func(t *testing.T) {
		upstream.EXPECT().
			UploadSoundFile(ctx, models.UploadSoundFile{
				FileBinary:  models.Base64Binary("RIFF"),
				SoundFileID: "greeting",
				LicenseKey:  testLicenseKey,
			}).
			Return(true, nil)

		ok, err := svc.UploadSoundFile(ctx, testLicenseKey, models.UploadSoundFileRequest{
			FileBinary:  models.Base64Binary("RIFF"),
			SoundFileID: "greeting",
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("mp3 carries the bit rate", func(t *testing.T) {
		upstream.EXPECT().
			GetSoundFileInMP3(ctx, models.GetSoundFileInMP3{SoundFileID: "greeting", BitRate: 64, LicenseKey: testLicenseKey}).
			Return(models.Base64Binary("ID3"), nil)

		got, err := svc.GetSoundFileInMP3(ctx, testLicenseKey, models.SoundFileInMP3Request{SoundFileID: "greeting", BitRate: 64})
		require.NoError(t, err)
		assert.Equal(t, models.Base64Binary("ID3"), got)
	})

	t.Run("length and url", func(t *testing.T) {
		upstream.EXPECT().
			GetSoundFileLength(ctx, models.GetSoundFileLength{SoundFileID: "greeting", LicenseKey: testLicenseKey}).
			Return(12.5, nil)
		upstream.EXPECT().
			GetSoundFileURL(ctx, models.GetSoundFileURL{SoundFileID: "greeting", LicenseKey: testLicenseKey}).
			Return("https://example.com/greeting.wav", nil)

		length, err := svc.GetSoundFileLength(ctx, testLicenseKey, models.SoundFileRequest{SoundFileID: "greeting"})
		require.NoError(t, err)
		assert.InDelta(t, 12.5, length, 0.001)

		url, err := svc.GetSoundFileURL(ctx, testLicenseKey, models.SoundFileRequest{SoundFileID: "greeting"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/greeting.wav", url)
	})

	t.Run("tts renders", func(t *testing.T) {
		upstream.EXPECT().
			GetTTSInMP3(ctx, models.GetTTSInMP3{TextToSay: "hi", VoiceID: 2, BitRate: 32, TTSRate: 4, TTSVolume: 80, LicenseKey: testLicenseKey}).
			Return(models.Base64Binary("mp3"), nil)
		upstream.EXPECT().
			GetTTSInULAW(ctx, models.GetTTSInULAW{TextToSay: "hi", VoiceID: 2, TTSRate: 4, TTSVolume: 80, LicenseKey: testLicenseKey}).
			Return(models.Base64Binary("ulaw"), nil)

		mp3, err := svc.GetTTSInMP3(ctx, testLicenseKey, models.TTSInMP3Request{TextToSay: "hi", VoiceID: 2, BitRate: 32, TTSRate: 4, TTSVolume: 80})
		require.NoError(t, err)
		assert.Equal(t, models.Base64Binary("mp3"), mp3)

		ulaw, err := svc.GetTTSInULAW(ctx, testLicenseKey, models.TTSInULAWRequest{TextToSay: "hi", VoiceID: 2, TTSRate: 4, TTSVolume: 80})
		require.NoError(t, err)
		assert.Equal(t, models.Base64Binary("ulaw"), ulaw)
	})

	t.Run("rename and remove", func(t *testing.T) {
		upstream.EXPECT().
			RenameSoundFile(ctx, models.RenameSoundFile{SoundFileID: "a", NewSoundFileID: "b", LicenseKey: testLicenseKey}).
			Return(true, nil)
		upstream.EXPECT().
			RemoveSoundFile(ctx, models.RemoveSoundFile{SoundFileID: "b", LicenseKey: testLicenseKey}).
			Return(false, &adapter.FaultError{Reason: "not found"})

		renamed, err := svc.RenameSoundFile(ctx, testLicenseKey, models.RenameSoundFileRequest{SoundFileID: "a", NewSoundFileID: "b"})
		require.NoError(t, err)
		assert.True(t, renamed)

		_, err = svc.RemoveSoundFile(ctx, testLicenseKey, models.RemoveSoundFileRequest{SoundFileID: "b"})
		assert.ErrorIs(t, err, adapter.ErrUpstreamFault)
	})

	t.Run("list ids", func(t *testing.T) {
		upstream.EXPECT().
			ReturnSoundFileIDs(ctx, models.ReturnSoundFileIDs{LicenseKey: testLicenseKey}).
			Return([]string{"a", "b"}, nil)

		ids, err := svc.ReturnSoundFileIDs(ctx, testLicenseKey)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids)
	})
}

func TestScriptService(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mock.NewMockScriptAdapter(ctrl)
	svc := NewScriptService(upstream, logger.Nop())
	ctx := context.Background()

	upstream.EXPECT().
		ScriptSave(ctx, models.ScriptSave{ScriptName: "welcome", ScriptText: "<Say>hi</Say>", LicenseKey: testLicenseKey}).
		Return(true, nil)
	upstream.EXPECT().
		ScriptLoad(ctx, models.ScriptLoad{ScriptName: "welcome", LicenseKey: testLicenseKey}).
		Return("<Say>hi</Say>", nil)
	upstream.EXPECT().
		ScriptList(ctx, models.ScriptList{IncludeGlobalScripts: true, LicenseKey: testLicenseKey}).
		Return([]string{"welcome"}, nil)
	upstream.EXPECT().
		SetIncomingCallScript(ctx, models.SetIncomingCallScript{PhoneNumber: "7575559999", Script: "welcome", LicenseKey: testLicenseKey}).
		Return(true, nil)

	saved, err := svc.ScriptSave(ctx, testLicenseKey, models.ScriptSaveRequest{ScriptName: "welcome", ScriptText: "<Say>hi</Say>"})
	require.NoError(t, err)
	assert.True(t, saved)

	text, err := svc.ScriptLoad(ctx, testLicenseKey, models.ScriptLoadRequest{ScriptName: "welcome"})
	require.NoError(t, err)
	assert.Equal(t, "<Say>hi</Say>", text)

	names, err := svc.ScriptList(ctx, testLicenseKey, models.ScriptListRequest{IncludeGlobalScripts: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome"}, names)

	set, err := svc.SetIncomingCallScript(ctx, testLicenseKey, models.SetIncomingCallScriptRequest{PhoneNumber: "7575559999", Script: "welcome"})
	require.NoError(t, err)
	assert.True(t, set)
}

func TestLicenseService(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mock.NewMockLicenseAdapter(ctrl)
	svc := NewLicenseService(upstream, logger.Nop())
	ctx := context.Background()

	upstream.EXPECT().
		AssignIncomingNumber(ctx, models.AssignIncomingNumber{IncomingPhoneNumber: "7575550000", LicenseKey: testLicenseKey}).
		Return(true, nil)
	upstream.EXPECT().
		GetAssignedNumbers(ctx, models.GetAssignedNumbers{LicenseKey: testLicenseKey}).
		Return([]string{"7575550000"}, nil)

	assigned, err := svc.AssignIncomingNumber(ctx, testLicenseKey, models.AssignIncomingNumberRequest{IncomingPhoneNumber: "7575550000"})
	require.NoError(t, err)
	assert.True(t, assigned)

	numbers, err := svc.GetAssignedNumbers(ctx, testLicenseKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"7575550000"}, numbers)
}

func TestInfoService(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mock.NewMockInfoAdapter(ctrl)
	svc := NewInfoService(upstream, logger.Nop())
	ctx := context.Background()

	upstream.EXPECT().GetVersion(ctx).Return("4.0", nil)
	upstream.EXPECT().GetVoices(ctx).Return([]models.Voice{{VoiceID: 1, VoiceName: "Diane"}}, nil)
	upstream.EXPECT().GetAvailableAreaCodes(ctx).Return([]models.AreaCode{{AreaCodeNumber: "757"}}, nil)
	upstream.EXPECT().GetResponseCodes(ctx).Return(nil, adapter.ErrUpstreamUnavailable)
	upstream.EXPECT().
		GetAvailableIncomingNumbers(ctx, models.GetAvailableIncomingNumbers{AreaCodeFilter: "757"}).
		Return([]string{"7575550000"}, nil)

	version, err := svc.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4.0", version)

	voices, err := svc.GetVoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Diane", voices[0].VoiceName)

	codes, err := svc.GetAvailableAreaCodes(ctx)
	require.NoError(t, err)
	assert.Len(t, codes, 1)

	_, err = svc.GetResponseCodes(ctx)
	assert.ErrorIs(t, err, adapter.ErrUpstreamUnavailable)

	numbers, err := svc.GetAvailableIncomingNumbers(ctx, models.AvailableIncomingNumbersRequest{AreaCodeFilter: "757"})
	require.NoError(t, err)
	assert.Equal(t, []string{"7575550000"}, numbers)
}
