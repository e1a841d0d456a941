package server

import (
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestContentTypesOverrides(t *testing.T) {
	types := ContentTypes()

	for _, ext := range []string{".js", ".mjs"} {
		if got := types[ext]; got != "application/javascript" {
			t.Errorf("ContentTypes()[%q] = %q, want %q", ext, got, "application/javascript")
		}
	}
}

func TestContentTypesReturnsFreshMap(t *testing.T) {
	first := ContentTypes()
	first[".js"] = "text/plain"
	first[".css"] = "bogus"

	second := ContentTypes()
	if second[".js"] != "application/javascript" {
		t.Error("mutating a returned table must not affect later calls")
	}
	if _, ok := second[".css"]; ok {
		t.Error("mutating a returned table must not affect later calls")
	}
}

func TestGlobalMimeRegistryUntouched(t *testing.T) {
	before := mime.TypeByExtension(".mjs")

	ContentTypes()
	newTestServer(t, map[string]string{"app.mjs": "export {}"})

	if after := mime.TypeByExtension(".mjs"); after != before {
		t.Errorf("global mime registry changed: %q -> %q", before, after)
	}
}

func TestWithContentTypes(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "js override", path: "/main.js", want: "application/javascript"},
		{name: "mjs override", path: "/lib/module.mjs", want: "application/javascript"},
		{name: "uppercase extension", path: "/MAIN.JS", want: "application/javascript"},
		{name: "query string ignored", path: "/main.js?v=2", want: "application/javascript"},
		{name: "other extension untouched", path: "/style.css", want: ""},
		{name: "no extension untouched", path: "/about", want: ""},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := withContentTypes(ContentTypes(), next)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Content-Type"); got != tt.want {
				t.Errorf("Content-Type = %q, want %q", got, tt.want)
			}
		})
	}
}
