package doc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcamento-pro/backend/internal/domain/catalog"
	"orcamento-pro/backend/internal/domain/quote"
)

func TestRender(t *testing.T) {
	ix := catalog.BuildIndex([]catalog.Product{
		{ID: "p1", Name: "Tomada dupla", Price: decimal.RequireFromString("12.50"), Category: "Elétrica"},
	})
	q := quote.Quote{
		Name:         "Obra Centro",
		Items:        []quote.Item{{ProductID: "p1", Quantity: 4}},
		Discount:     decimal.NewFromInt(5),
		DiscountType: quote.DiscountPercentage,
		TaxRate:      decimal.NewFromInt(10),
		CreatedAt:    time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}
	lines, sum := quote.Summarize(q, ix)

	artifact, err := New().Render(q, lines, sum)
	require.NoError(t, err)

	assert.Equal(t, "Obra_Centro.doc", artifact.Filename)
	assert.Equal(t, "application/vnd.ms-word", artifact.ContentType)

	html := string(artifact.Data)
	assert.Contains(t, html, "xmlns:w='urn:schemas-microsoft-com:office:word'")
	assert.Contains(t, html, "<h1>Obra Centro</h1>")
	assert.Contains(t, html, "Data: 28/08/2026")
	assert.Contains(t, html, "Tomada dupla")
	assert.Contains(t, html, "R$12,50")
	assert.Contains(t, html, "<strong>Subtotal:</strong> R$50,00")
	assert.Contains(t, html, "<strong>Desconto:</strong> -R$2,50")
	assert.Contains(t, html, "Taxa (10%)")
	assert.Contains(t, html, "<strong>Total Geral:</strong> R$52,25")
}

func TestRenderEscapesMarkup(t *testing.T) {
	ix := catalog.BuildIndex([]catalog.Product{
		{ID: "p1", Name: "<script>alert(1)</script>", Price: decimal.NewFromInt(1), Category: "X"},
	})
	q := quote.Quote{
		Name:  "Orçamento",
		Items: []quote.Item{{ProductID: "p1", Quantity: 1}},
	}
	lines, sum := quote.Summarize(q, ix)

	artifact, err := New().Render(q, lines, sum)
	require.NoError(t, err)

	assert.NotContains(t, string(artifact.Data), "<script>")
}
