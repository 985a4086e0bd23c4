package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"orcamento-pro/backend/internal/app/config"
	"orcamento-pro/backend/internal/domain/catalog"
	"orcamento-pro/backend/internal/domain/quote"
)

// Store is the persistence surface the handlers need: the product catalog,
// the saved-quote collection and the theme preference.
type Store interface {
	Catalog() catalog.Store
	QuoteCollection() quote.Collection
	Theme() (string, error)
	SetTheme(v string) error
}

type Handlers struct {
	Store Store
	Cfg   config.Config
}

func New(store Store, cfg config.Config) *Handlers {
	return &Handlers{Store: store, Cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
