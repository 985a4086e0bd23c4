package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"orcamento-pro/backend/internal/domain/quote"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "Obra_Rua_Augusta.csv", Filename("Obra Rua Augusta", "csv"))
	assert.Equal(t, "Obra_Nova.pdf", Filename("Obra \t Nova", "pdf"))
	assert.Equal(t, "Orçamento.doc", Filename("Orçamento", "doc"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234,50", FormatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0,00", FormatAmount(decimal.Zero))
	assert.Equal(t, "-15,00", FormatAmount(decimal.NewFromInt(-15)))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$99,00", FormatCurrency(decimal.NewFromInt(99)))
}

func TestDiscountLabel(t *testing.T) {
	pct := quote.Quote{Discount: decimal.NewFromInt(10), DiscountType: quote.DiscountPercentage}
	fixed := quote.Quote{Discount: decimal.NewFromInt(20), DiscountType: quote.DiscountFixed}

	assert.Equal(t, "10%", DiscountLabel(pct))
	assert.Equal(t, "R$20,00", DiscountLabel(fixed))
}
