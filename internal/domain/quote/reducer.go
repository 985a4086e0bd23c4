package quote

import "github.com/shopspring/decimal"

// Intent is one editing action on a quote. The set is closed so Reduce can
// switch exhaustively.
type Intent interface{ isIntent() }

type AddItem struct {
	ProductID string
	Quantity  int
}

type UpdateItemQuantity struct {
	ProductID string
	Quantity  int
}

type RemoveItem struct {
	ProductID string
}

// SetDiscount replaces value and type together; they are never set
// independently.
type SetDiscount struct {
	Value decimal.Decimal
	Type  DiscountType
}

type SetTaxRate struct {
	Value decimal.Decimal
}

type SetName struct {
	Value string
}

// Reset replaces the whole state, used when switching to a fresh or loaded
// quote.
type Reset struct {
	Quote Quote
}

func (AddItem) isIntent()            {}
func (UpdateItemQuantity) isIntent() {}
func (RemoveItem) isIntent()         {}
func (SetDiscount) isIntent()        {}
func (SetTaxRate) isIntent()         {}
func (SetName) isIntent()            {}
func (Reset) isIntent()              {}

// Reduce applies one intent and returns the next state. The given quote is
// never mutated; its item slice is copied before any change. Quantity
// validation happens at the dispatch boundary, not here.
func Reduce(q Quote, in Intent) Quote {
	switch in := in.(type) {
	case AddItem:
		for i, it := range q.Items {
			if it.ProductID == in.ProductID {
				items := copyItems(q.Items)
				items[i].Quantity = it.Quantity + in.Quantity
				q.Items = items
				return q
			}
		}
		items := copyItems(q.Items)
		q.Items = append(items, Item{ProductID: in.ProductID, Quantity: in.Quantity})
		return q
	case UpdateItemQuantity:
		for i, it := range q.Items {
			if it.ProductID == in.ProductID {
				items := copyItems(q.Items)
				items[i].Quantity = in.Quantity
				q.Items = items
				return q
			}
		}
		return q
	case RemoveItem:
		items := make([]Item, 0, len(q.Items))
		for _, it := range q.Items {
			if it.ProductID != in.ProductID {
				items = append(items, it)
			}
		}
		q.Items = items
		return q
	case SetDiscount:
		q.Discount = in.Value
		q.DiscountType = in.Type
		return q
	case SetTaxRate:
		q.TaxRate = in.Value
		return q
	case SetName:
		q.Name = in.Value
		return q
	case Reset:
		return in.Quote
	}
	return q
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
