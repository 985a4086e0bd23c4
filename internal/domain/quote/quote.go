package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Item references a catalog product. The reference is non-owning: a deleted
// product leaves the item orphaned, not broken.
type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Quote is one quotation in progress or saved. Items keep insertion order;
// at most one item per ProductID.
type Quote struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Items        []Item          `json:"items"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountType DiscountType    `json:"discountType"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// New returns a fresh empty quote with a defaulted name.
func New(now time.Time) Quote {
	return Quote{
		ID:           uuid.NewString(),
		Name:         "Orçamento " + now.Format("02/01/2006"),
		Items:        []Item{},
		DiscountType: DiscountPercentage,
		CreatedAt:    now,
	}
}

// Collection is the saved-quotes contract. Save upserts by id: an existing id
// is replaced in place (position preserved), a new id is appended. Delete is
// idempotent. List returns quotes in insertion order.
type Collection interface {
	Save(q Quote) error
	Delete(id string) error
	List() ([]Quote, error)
}

// ReferencesProduct reports whether any of the given quotes carries an item
// for productID. Used to refuse deleting a product still in use.
func ReferencesProduct(quotes []Quote, productID string) bool {
	for _, q := range quotes {
		for _, it := range q.Items {
			if it.ProductID == productID {
				return true
			}
		}
	}
	return false
}
