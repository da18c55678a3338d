package httpapi

import (
	"net/http"
	"strings"
)

// DefaultBasePath prefixes every route mounted by Mount.
const DefaultBasePath = "/layouts"

// Mount registers the handlers on mux under base. An empty base uses
// DefaultBasePath.
func (h *Handlers) Mount(mux *http.ServeMux, base string) {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		base = DefaultBasePath
	}
	mux.HandleFunc("POST "+base, func(w http.ResponseWriter, r *http.Request) {
		h.HandleImportDocument(w, r, "")
	})
	mux.HandleFunc("PUT "+base+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		h.HandleImportDocument(w, r, r.PathValue("id"))
	})
	mux.HandleFunc("GET "+base+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		h.HandleGetDocument(w, r, r.PathValue("id"))
	})
	mux.HandleFunc("GET "+base+"/{id}/rows", func(w http.ResponseWriter, r *http.Request) {
		h.HandleRows(w, r, r.PathValue("id"))
	})
	mux.HandleFunc("POST "+base+"/{id}/normalize", func(w http.ResponseWriter, r *http.Request) {
		h.HandleNormalizeLayout(w, r, r.PathValue("id"))
	})
	mux.HandleFunc("POST "+base+"/{id}/unify-heights", func(w http.ResponseWriter, r *http.Request) {
		h.HandleUnifyHeights(w, r, r.PathValue("id"))
	})
	mux.HandleFunc("GET "+base+"/{id}/items/{path}/constraints", func(w http.ResponseWriter, r *http.Request) {
		h.HandleConstraints(w, r, r.PathValue("id"), r.PathValue("path"))
	})
	mux.HandleFunc("POST "+base+"/{id}/items/{path}/normalize", func(w http.ResponseWriter, r *http.Request) {
		h.HandleNormalizeItem(w, r, r.PathValue("id"), r.PathValue("path"))
	})
	mux.HandleFunc("POST "+base+"/{id}/items/{path}/resize", func(w http.ResponseWriter, r *http.Request) {
		h.HandleResizeItem(w, r, r.PathValue("id"), r.PathValue("path"))
	})
}
