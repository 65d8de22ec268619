package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health reports whether the database is reachable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		if resp, ok := responseFromError(err); ok {
			logger.FromRequest(r).Warn().Err(err).Msg("health check failed")
			respondErrors(w, r, resp.status, app.MsgServiceUnavailable, resp.text)
			return
		}
		h.forward(w, r, "app.health", app.MsgServiceUnavailable, err)
		return
	}

	respond(w, r, http.StatusOK, app.MsgServiceHealthy, nil)
}
