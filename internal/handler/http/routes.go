package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.MethodNotAllowed(CheckHTTPMethod)

	router.Get("/version", h.getServerVersion)

	router.Route("/Notify", func(r chi.Router) {
		s := h.services.NotifyService
		r.Method(http.MethodPost, "/NotifyPhoneBasic", licensedBody(h, "NotifyPhoneBasic", s.NotifyPhoneBasic))
		r.Method(http.MethodPost, "/NotifyPhoneBasicWithTryCount", licensedBody(h, "NotifyPhoneBasicWithTryCount", s.NotifyPhoneBasicWithTryCount))
		r.Method(http.MethodPost, "/NotifyPhoneBasicWithTransfer", licensedBody(h, "NotifyPhoneBasicWithTransfer", s.NotifyPhoneBasicWithTransfer))
		r.Method(http.MethodPost, "/NotifyPhoneEnglishBasic", licensedBody(h, "NotifyPhoneEnglishBasic", s.NotifyPhoneEnglishBasic))
		r.Method(http.MethodPost, "/NotifyMultiplePhoneBasic", licensedBody(h, "NotifyMultiplePhoneBasic", s.NotifyMultiplePhoneBasic))
		r.Method(http.MethodPost, "/NotifyMultiplePhoneBasicWithCPM", licensedBody(h, "NotifyMultiplePhoneBasicWithCPM", s.NotifyMultiplePhoneBasicWithCPM))
		r.Method(http.MethodPost, "/NotifyMultiplePhoneBasicWithCPMandReferenceID", licensedBody(h, "NotifyMultiplePhoneBasicWithCPMandReferenceID", s.NotifyMultiplePhoneBasicWithCPMandReferenceID))
		r.Method(http.MethodPost, "/NotifyPhoneAdvanced", licensedBody(h, "NotifyPhoneAdvanced", s.NotifyPhoneAdvanced))
		r.Method(http.MethodPost, "/NotifyMultiplePhoneAdvanced", licensedBody(h, "NotifyMultiplePhoneAdvanced", s.NotifyMultiplePhoneAdvanced))
	})

	router.Route("/StatusReport", func(r chi.Router) {
		s := h.services.StatusService
		r.Method(http.MethodGet, "/GetQueueIDStatus", publicQuery(h, "GetQueueIDStatus", s.GetQueueIDStatus))
		r.Method(http.MethodGet, "/GetQueueIDStatusWithAdvancedInfo", licensedQuery(h, "GetQueueIDStatusWithAdvancedInfo", s.GetQueueIDStatusWithAdvancedInfo))
		r.Method(http.MethodGet, "/GetQueueIDStatusesByPhoneNumber", licensedQuery(h, "GetQueueIDStatusesByPhoneNumber", s.GetQueueIDStatusesByPhoneNumber))
		r.Method(http.MethodGet, "/GetMultipleQueueIdStatus", licensedQuery(h, "GetMultipleQueueIdStatus", s.GetMultipleQueueIDStatus))
	})

	router.Route("/Cancelling", func(r chi.Router) {
		s := h.services.CancelService
		r.Method(http.MethodGet, "/CancelNotify", licensedQuery(h, "CancelNotify", s.CancelNotify))
		r.Method(http.MethodGet, "/CancelNotifyByReferenceID", licensedQuery(h, "CancelNotifyByReferenceID", s.CancelNotifyByReferenceID))
		r.Method(http.MethodGet, "/CancelConference", publicQuery(h, "CancelConference", s.CancelConference))
	})

	router.Route("/ListMember", func(r chi.Router) {
		s := h.services.ListMemberService
		r.Method(http.MethodPost, "/AddNewList", licensedBody(h, "AddNewList", s.AddNewList))
		r.Method(http.MethodPatch, "/AlterListID", licensedBody(h, "AlterListID", s.AlterListID))
		r.Method(http.MethodDelete, "/DeleteList", licensedBody(h, "DeleteList", s.DeleteList))
		r.Method(http.MethodPost, "/DialList", licensedBody(h, "DialList", s.DialList))
		r.Method(http.MethodPost, "/DialListAdvanced", licensedBody(h, "DialListAdvanced", s.DialListAdvanced))
		r.Method(http.MethodGet, "/GetListIDsByLicensekey", licensedNoInput(h, "GetListIDsByLicensekey", s.GetListIDsByLicenseKey))
		r.Method(http.MethodPost, "/AddListMember", licensedBody(h, "AddListMember", s.AddListMember))
		r.Method(http.MethodPatch, "/AlterListMember", licensedBody(h, "AlterListMember", s.AlterListMember))
		r.Method(http.MethodDelete, "/DeleteListMember", licensedBody(h, "DeleteListMember", s.DeleteListMember))
		r.Method(http.MethodGet, "/GetListMembersByListID", licensedQuery(h, "GetListMembersByListID", s.GetListMembersByListID))
	})

	router.Route("/Sound", func(r chi.Router) {
		s := h.services.SoundService
		r.Method(http.MethodPost, "/UploadSoundFile", licensedBody(h, "UploadSoundFile", s.UploadSoundFile))
		r.Method(http.MethodGet, "/GetSoundFile", licensedQuery(h, "GetSoundFile", s.GetSoundFile))
		r.Method(http.MethodGet, "/GetSoundFileInMP3", licensedQuery(h, "GetSoundFileInMP3", s.GetSoundFileInMP3))
		r.Method(http.MethodGet, "/GetSoundFileInUlaw", licensedQuery(h, "GetSoundFileInUlaw", s.GetSoundFileInUlaw))
		r.Method(http.MethodGet, "/GetSoundFileLength", licensedQuery(h, "GetSoundFileLength", s.GetSoundFileLength))
		r.Method(http.MethodGet, "/GetSoundFileURL", licensedQuery(h, "GetSoundFileURL", s.GetSoundFileURL))
		r.Method(http.MethodPost, "/GetTTSInMP3", licensedBody(h, "GetTTSInMP3", s.GetTTSInMP3))
		r.Method(http.MethodPost, "/GetTTSInULAW", licensedBody(h, "GetTTSInULAW", s.GetTTSInULAW))
		r.Method(http.MethodPost, "/RecordSoundViaPhoneCall", licensedBody(h, "RecordSoundViaPhoneCall", s.RecordSoundViaPhoneCall))
		r.Method(http.MethodDelete, "/RemoveSoundFile", licensedBody(h, "RemoveSoundFile", s.RemoveSoundFile))
		r.Method(http.MethodPatch, "/RenameSoundFile", licensedBody(h, "RenameSoundFile", s.RenameSoundFile))
		r.Method(http.MethodGet, "/ReturnSoundFileIDs", licensedNoInput(h, "ReturnSoundFileIDs", s.ReturnSoundFileIDs))
	})

	router.Route("/Script", func(r chi.Router) {
		s := h.services.ScriptService
		r.Method(http.MethodPost, "/SetIncomingCallScript", licensedBody(h, "SetIncomingCallScript", s.SetIncomingCallScript))
		r.Method(http.MethodGet, "/GetIncomingCallScript", licensedQuery(h, "GetIncomingCallScript", s.GetIncomingCallScript))
		r.Method(http.MethodPost, "/ScriptSave", licensedBody(h, "ScriptSave", s.ScriptSave))
		r.Method(http.MethodGet, "/ScriptLoad", licensedQuery(h, "ScriptLoad", s.ScriptLoad))
		r.Method(http.MethodGet, "/ScriptList", licensedQuery(h, "ScriptList", s.ScriptList))
		r.Method(http.MethodDelete, "/ScriptDelete", licensedBody(h, "ScriptDelete", s.ScriptDelete))
	})

	router.Route("/License", func(r chi.Router) {
		s := h.services.LicenseService
		r.Method(http.MethodPost, "/AssignIncomingNumber", licensedBody(h, "AssignIncomingNumber", s.AssignIncomingNumber))
		r.Method(http.MethodGet, "/GetAssignedNumbers", licensedNoInput(h, "GetAssignedNumbers", s.GetAssignedNumbers))
	})

	// reference data, no license key
	router.Route("/Info", func(r chi.Router) {
		s := h.services.InfoService
		r.Method(http.MethodGet, "/GetAvailableAreaCodes", publicNoInput(h, "GetAvailableAreaCodes", s.GetAvailableAreaCodes))
		r.Method(http.MethodGet, "/GetResponseCodes", publicNoInput(h, "GetResponseCodes", s.GetResponseCodes))
		r.Method(http.MethodGet, "/GetVersion", publicNoInput(h, "GetVersion", s.GetVersion))
		r.Method(http.MethodGet, "/GetVoices", publicNoInput(h, "GetVoices", s.GetVoices))
	})
	router.Method(http.MethodGet, "/IncomingNumbers/GetAvailableIncomingNumbers",
		publicQuery(h, "GetAvailableIncomingNumbers", h.services.InfoService.GetAvailableIncomingNumbers))

	router.Get(openAPIJSONPath, h.getOpenAPIJSON(router))
	router.Get(openAPIYAMLPath, h.getOpenAPIYAML(router))

	return router
}
