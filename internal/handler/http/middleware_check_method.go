// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: an unsupported
// method gets HTTP 404 Not Found, the same answer as an unknown path.
//
// If the router can route the method after all (for example because a
// sub-router registered it), the request is forwarded to the router's
// normal ServeHTTP pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			// restart routing from the root with a clean route context
			ctx := context.WithValue(r.Context(), chi.RouteCtxKey, chi.NewRouteContext())
			router.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		notFound(w, r)
	}
}

// notFound writes a JSON 404 for paths and methods that are not routed.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, fmt.Sprintf("%s %s not found", r.Method, r.URL.Path), http.StatusNotFound)
}
