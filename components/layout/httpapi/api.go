package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	layout "github.com/goliatone/go-dashboard-layout/components/layout"
	"github.com/goliatone/go-dashboard-layout/components/layout/commands"
	"github.com/goliatone/go-dashboard-layout/components/layout/queries"
)

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	Import          gocommand.Commander[commands.ImportDocumentInput]
	NormalizeItem   gocommand.Commander[commands.NormalizeItemInput]
	NormalizeLayout gocommand.Commander[commands.NormalizeLayoutInput]
	Resize          gocommand.Commander[commands.ResizeItemInput]
	Unify           gocommand.Commander[commands.UnifyHeightsInput]

	Document    gocommand.Querier[queries.DocumentInput, layout.Document]
	Rows        gocommand.Querier[layout.RowsRequest, queries.RenderedRows]
	Constraints gocommand.Querier[layout.ConstraintsRequest, layout.ItemConstraints]
}

// StatusForError maps layout errors onto HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, layout.ErrDocumentNotFound), errors.Is(err, layout.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, layout.ErrInvalidDocument), errors.Is(err, layout.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, layout.ErrInvariant):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) HandleImportDocument(w http.ResponseWriter, r *http.Request, documentID string) {
	doc, err := layout.DecodeDocument(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var result commands.ImportResult
	input := commands.ImportDocumentInput{DocumentID: documentID, Document: *doc, Result: &result}
	if err := h.Import.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), StatusForError(err))
		return
	}
	status := http.StatusOK
	if documentID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}

func (h *Handlers) HandleGetDocument(w http.ResponseWriter, r *http.Request, documentID string) {
	doc, err := h.Document.Query(r.Context(), queries.DocumentInput{DocumentID: documentID})
	if err != nil {
		http.Error(w, err.Error(), StatusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handlers) HandleRows(w http.ResponseWriter, r *http.Request, documentID string) {
	query := r.URL.Query()
	req := layout.RowsRequest{
		DocumentID: documentID,
		Path:       query.Get("path"),
		Screen:     layout.ScreenSize(query.Get("screen")),
	}
	rows, err := h.Rows.Query(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), StatusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) HandleConstraints(w http.ResponseWriter, r *http.Request, documentID, path string) {
	req := layout.ConstraintsRequest{
		DocumentID: documentID,
		Path:       path,
		Screen:     layout.ScreenSize(r.URL.Query().Get("screen")),
	}
	out, err := h.Constraints.Query(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), StatusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) HandleNormalizeItem(w http.ResponseWriter, r *http.Request, documentID, path string) {
	var result commands.NormalizeResult
	input := commands.NormalizeItemInput{DocumentID: documentID, Path: path, Result: &result}
	if err := h.NormalizeItem.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), StatusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) HandleNormalizeLayout(w http.ResponseWriter, r *http.Request, documentID string) {
	var result commands.NormalizeResult
	input := commands.NormalizeLayoutInput{DocumentID: documentID, Result: &result}
	if err := h.NormalizeLayout.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), StatusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) HandleResizeItem(w http.ResponseWriter, r *http.Request, documentID, path string) {
	var payload commands.ResizeItemInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var item layout.Item
	payload.DocumentID = documentID
	payload.Path = path
	payload.Result = &item
	if err := h.Resize.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), StatusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) HandleUnifyHeights(w http.ResponseWriter, r *http.Request, documentID string) {
	if err := h.Unify.Execute(r.Context(), commands.UnifyHeightsInput{DocumentID: documentID}); err != nil {
		http.Error(w, err.Error(), StatusForError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
