package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"orcamento-pro/backend/internal/domain/catalog"
	"orcamento-pro/backend/internal/domain/quote"
)

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Store.QuoteCollection().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list quotes failed")
		return
	}
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

// NewQuote hands the client a fresh empty quote with a defaulted name, id
// and creation time.
func (h *Handlers) NewQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, quote.New(time.Now()))
}

// SaveQuote upserts the posted quote into the collection. An empty quote is
// rejected; nothing is partially saved.
func (h *Handlers) SaveQuote(w http.ResponseWriter, r *http.Request) {
	var q quote.Quote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if len(q.Items) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "adicione pelo menos um item ao orçamento")
		return
	}
	if msg := validateItems(q.Items); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}

	if err := h.Store.QuoteCollection().Save(q); err != nil {
		writeError(w, http.StatusInternalServerError, "save quote failed")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.QuoteCollection().Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "delete quote failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type summaryLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}

type summaryResponse struct {
	Lines              []summaryLine `json:"lines"`
	Subtotal           string        `json:"subtotal"`
	DiscountLabel      string        `json:"discountLabel"`
	DiscountAmount     string        `json:"discountAmount"`
	TotalAfterDiscount string        `json:"totalAfterDiscount"`
	TaxAmount          string        `json:"taxAmount"`
	GrandTotal         string        `json:"grandTotal"`
}

// QuoteSummary derives the financial breakdown for the posted quote. The
// numbers here are the same ones every export renders: both come from one
// derivation, rounded to two digits at this edge only.
func (h *Handlers) QuoteSummary(w http.ResponseWriter, r *http.Request) {
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

	resp := summaryResponse{
		Lines:              make([]summaryLine, 0, len(lines)),
		Subtotal:           sum.Subtotal.StringFixed(2),
		DiscountLabel:      discountLabel(q),
		DiscountAmount:     sum.DiscountAmount.StringFixed(2),
		TotalAfterDiscount: sum.TotalAfterDiscount.StringFixed(2),
		TaxAmount:          sum.TaxAmount.StringFixed(2),
		GrandTotal:         sum.GrandTotal.StringFixed(2),
	}
	for _, ln := range lines {
		resp.Lines = append(resp.Lines, summaryLine{
			ProductID: ln.Product.ID,
			Name:      ln.Product.Name,
			UnitPrice: ln.Product.Price.StringFixed(2),
			Quantity:  ln.Quantity,
			Total:     ln.Total.StringFixed(2),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func discountLabel(q quote.Quote) string {
	if q.DiscountType == quote.DiscountFixed {
		return "R$" + q.Discount.StringFixed(2)
	}
	return q.Discount.String() + "%"
}

// validateItems rejects invalid mutation input before it reaches the engine.
func validateItems(items []quote.Item) string {
	for _, it := range items {
		if it.ProductID == "" {
			return "item without product"
		}
		if it.Quantity < 1 {
			return "quantity must be at least 1"
		}
	}
	return ""
}

func (h *Handlers) catalogIndex() (catalog.Index, error) {
	products, err := h.Store.Catalog().List()
	if err != nil {
		return nil, err
	}
	return catalog.BuildIndex(products), nil
}
