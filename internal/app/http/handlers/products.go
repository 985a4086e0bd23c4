package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orcamento-pro/backend/internal/domain/catalog"
	"orcamento-pro/backend/internal/domain/quote"
)

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

func (p productRequest) validate() string {
	if p.Name == "" {
		return "name is required"
	}
	if p.Category == "" {
		return "category is required"
	}
	if p.Price.IsNegative() {
		return "price must not be negative"
	}
	return ""
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.Catalog().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list products failed")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	p := catalog.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	if err := h.Store.Catalog().Create(p); err != nil {
		writeError(w, http.StatusInternalServerError, "create product failed")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	p := catalog.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	err := h.Store.Catalog().Update(p)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "update product failed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct refuses to delete a product still referenced by a saved
// quote. The check is a query over the quotes' item lists; the delete is
// refused outright, never partially applied.
func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	quotes, err := h.Store.QuoteCollection().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list quotes failed")
		return
	}
	if quote.ReferencesProduct(quotes, id) {
		writeError(w, http.StatusConflict,
			"product is referenced by one or more saved quotes; remove it from them first")
		return
	}

	if err := h.Store.Catalog().Delete(id); err != nil {
		writeError(w, http.StatusInternalServerError, "delete product failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
