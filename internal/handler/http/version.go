package http

import (
	"net/http"

	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/utils"
)

// getServerVersion reports the gateway's own version, not the upstream's.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteBody(w, utils.ContentTypeText, []byte(serverVersion), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
