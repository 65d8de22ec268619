// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler
// via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path is known but the method is not. Here such a
// request is answered exactly like an unknown path, so callers cannot probe
// which paths exist.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not routed for path")

	invalidRoute(w, r)
}

// invalidRoute answers requests that match no route.
func invalidRoute(w http.ResponseWriter, r *http.Request) {
	respondErrors(w, r, http.StatusNotFound, app.MsgInvalidRoute, app.ErrPageNotFound)
}
