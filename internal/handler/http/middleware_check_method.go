// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// checkHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed]. Chi calls it when the path matches a route but
// the method does not; it answers with the JSON error body instead of chi's
// plain-text default.
func checkHTTPMethod(w http.ResponseWriter, r *http.Request) {
	writeErrorKind(w, r, http.StatusMethodNotAllowed, KindMethodNotAllowed, "method "+r.Method+" is not allowed for "+r.URL.Path)
}

// notFound is registered via [chi.Mux.NotFound] for unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorKind(w, r, http.StatusNotFound, KindNotFound, "route "+r.URL.Path+" not found")
}
