package server

import (
	"net/http"
	"path"
	"strings"
)

// moduleScriptType is the content type browsers require for ES module
// scripts loaded via <script type="module"> or import statements.
const moduleScriptType = "application/javascript"

// ContentTypes returns the extension-to-content-type overrides applied on
// top of the standard table. Module scripts are refused by browsers when
// served with a non-JavaScript type, so .js and .mjs are always pinned.
// A fresh map is returned on every call; the process-global mime registry
// is never mutated.
func ContentTypes() map[string]string {
	return map[string]string{
		".js":  moduleScriptType,
		".mjs": moduleScriptType,
	}
}

// withContentTypes sets the Content-Type header for overridden extensions
// before delegating. The file server keeps a Content-Type that is already
// set, so the override wins over both the default table and sniffing.
func withContentTypes(types map[string]string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ext := strings.ToLower(path.Ext(r.URL.Path))
		if ctype, ok := types[ext]; ok {
			w.Header().Set("Content-Type", ctype)
		}
		next.ServeHTTP(w, r)
	})
}
