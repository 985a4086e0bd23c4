package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product is a catalog item. Identity is stable once created; the pricing
// engine never mutates products, only catalog edits do.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

// Store is the catalog contract. List returns products in insertion order.
type Store interface {
	GetByID(id string) (Product, error)
	List() ([]Product, error)
	Create(p Product) error
	Update(p Product) error
	Delete(id string) error
}
