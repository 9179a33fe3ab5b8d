package http

import (
	"net/http"

	"github.com/MKhiriev/go-phone-notify/internal/utils"
)

// withTraceID reuses the caller's X-Trace-ID or issues a new one. The ID is
// echoed in the response, attached to the request logger and stored in the
// context for the upstream client to forward.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		ctx := h.logger.WithTraceID(traceID).WithContext(r.Context())
		ctx = utils.WithTraceID(ctx, traceID)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
