package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"orcamento-pro/backend/internal/domain/quote"
	"orcamento-pro/backend/internal/domain/quote/export/formats"
)

// ExportQuote renders the posted quote in the requested format and returns
// it as an attachment. The renderer receives the calculator's lines and
// summary; it never recomputes pricing on its own.
func (h *Handlers) ExportQuote(w http.ResponseWriter, r *http.Request) {
	renderer, err := formats.ForName(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var q quote.Quote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	ix, err := h.catalogIndex()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load catalog failed")
		return
	}
	lines, sum := quote.Summarize(q, ix)

	artifact, err := renderer.Render(q, lines, sum)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Data)
}
