package export

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"orcamento-pro/backend/internal/domain/quote"
)

// Artifact is a rendered, downloadable document.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Renderer turns a quote plus the already-derived lines and summary into an
// artifact. Renderers never recompute pricing: any divergence between the
// on-screen summary and an exported document is a correctness bug.
type Renderer interface {
	Render(q quote.Quote, lines []quote.Line, sum quote.Summary) (Artifact, error)
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename builds the artifact name from the quote name: whitespace runs
// become underscores, ext is appended with a dot.
func Filename(name, ext string) string {
	return whitespace.ReplaceAllString(name, "_") + "." + ext
}

// FormatAmount renders a monetary value with two fractional digits and a
// decimal comma. This is the single rounding point for presentation.
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// FormatCurrency prefixes the currency symbol.
func FormatCurrency(d decimal.Decimal) string {
	return "R$" + FormatAmount(d)
}

// DiscountLabel describes the configured discount: "10%" for a percentage,
// the formatted amount for a fixed discount.
func DiscountLabel(q quote.Quote) string {
	if q.DiscountType == quote.DiscountFixed {
		return FormatCurrency(q.Discount)
	}
	return q.Discount.String() + "%"
}
