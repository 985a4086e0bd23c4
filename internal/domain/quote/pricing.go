package quote

import (
	"github.com/shopspring/decimal"

	"orcamento-pro/backend/internal/domain/catalog"
)

var oneHundred = decimal.NewFromInt(100)

// Line is one resolved quote row: the product as priced at derivation time
// and the line total.
type Line struct {
	Product  catalog.Product
	Quantity int
	Total    decimal.Decimal
}

// Summary is the financial breakdown of a quote. All values are exact
// decimals; rounding to two digits happens only at presentation.
type Summary struct {
	Subtotal           decimal.Decimal
	DiscountAmount     decimal.Decimal
	TotalAfterDiscount decimal.Decimal
	TaxAmount          decimal.Decimal
	GrandTotal         decimal.Decimal
}

// LineTotal is price * quantity.
func LineTotal(p catalog.Product, quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Summarize derives the resolved lines and the summary for a quote against a
// catalog index. Items whose product is gone are skipped: they contribute
// zero to the subtotal and produce no line, never an error.
//
// The discount is applied to the subtotal first, then the tax rate to the
// discounted total. Tax-after-discount is a business rule, not incidental.
// A fixed discount is not clamped to the subtotal, so the grand total can go
// negative.
func Summarize(q Quote, ix catalog.Index) ([]Line, Summary) {
	lines := make([]Line, 0, len(q.Items))
	subtotal := decimal.Zero
	for _, it := range q.Items {
		p, ok := ix.Resolve(it.ProductID)
		if !ok {
			continue
		}
		total := LineTotal(p, it.Quantity)
		lines = append(lines, Line{Product: p, Quantity: it.Quantity, Total: total})
		subtotal = subtotal.Add(total)
	}

	var discountAmount decimal.Decimal
	if q.DiscountType == DiscountFixed {
		discountAmount = q.Discount
	} else {
		discountAmount = subtotal.Mul(q.Discount.Div(oneHundred))
	}
	totalAfterDiscount := subtotal.Sub(discountAmount)
	taxAmount := totalAfterDiscount.Mul(q.TaxRate.Div(oneHundred))

	return lines, Summary{
		Subtotal:           subtotal,
		DiscountAmount:     discountAmount,
		TotalAfterDiscount: totalAfterDiscount,
		TaxAmount:          taxAmount,
		GrandTotal:         totalAfterDiscount.Add(taxAmount),
	}
}
