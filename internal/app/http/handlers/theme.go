package handlers

import (
	"encoding/json"
	"net/http"
)

type themePayload struct {
	Theme string `json:"theme"`
}

func (h *Handlers) GetTheme(w http.ResponseWriter, r *http.Request) {
	v, err := h.Store.Theme()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load theme failed")
		return
	}
	writeJSON(w, http.StatusOK, themePayload{Theme: v})
}

func (h *Handlers) SetTheme(w http.ResponseWriter, r *http.Request) {
	var p themePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	switch p.Theme {
	case "claro", "escuro", "corporativo":
	default:
		writeError(w, http.StatusBadRequest, "unknown theme")
		return
	}
	if err := h.Store.SetTheme(p.Theme); err != nil {
		writeError(w, http.StatusInternalServerError, "save theme failed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
