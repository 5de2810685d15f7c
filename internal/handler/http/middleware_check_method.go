// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers with 405 and a {"detail": "Method Not Allowed"} body. When the
// requested path matches a route pattern exactly, the methods that route does
// handle are listed in the Allow header.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// allowedMethods walks the route tree, descending into mounted sub-routers,
// and returns the methods registered for path. Only exact pattern matches
// are considered; parameterised segments are not expanded.
func allowedMethods(routes chi.Routes, path string) []string {
	seen := make(map[string]struct{})
	collectMethods(routes, path, seen)

	methods := make([]string, 0, len(seen))
	for method := range seen {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

// collectMethods adds to seen every method of routes matching path. A mount
// is registered under several patterns, hence the set.
func collectMethods(routes chi.Routes, path string, seen map[string]struct{}) {
	for _, route := range routes.Routes() {
		if route.SubRoutes != nil {
			prefix := strings.TrimSuffix(strings.TrimSuffix(route.Pattern, "*"), "/")
			if !strings.HasPrefix(path, prefix) {
				continue
			}
			rest := strings.TrimPrefix(path, prefix)
			if rest == "" {
				rest = "/"
			}
			if rest[0] == '/' {
				collectMethods(route.SubRoutes, rest, seen)
			}
			continue
		}

		if route.Pattern != path {
			continue
		}
		for method := range route.Handlers {
			if method != "*" {
				seen[method] = struct{}{}
			}
		}
	}
}
