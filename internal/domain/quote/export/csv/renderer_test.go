package csv

import (
	"strings"
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
		{ID: "p1", Name: "Cabo flexível", Description: "Rolo 100m", Price: decimal.RequireFromString("149.90"), Category: "Elétrica"},
	})
	q := quote.Quote{
		ID:           "q1",
		Name:         "Obra Rua Augusta",
		Items:        []quote.Item{{ProductID: "p1", Quantity: 2}},
		Discount:     decimal.NewFromInt(10),
		DiscountType: quote.DiscountPercentage,
		TaxRate:      decimal.NewFromInt(5),
		CreatedAt:    time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}
	lines, sum := quote.Summarize(q, ix)

	artifact, err := New().Render(q, lines, sum)
	require.NoError(t, err)

	assert.Equal(t, "Obra_Rua_Augusta.csv", artifact.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", artifact.ContentType)

	rows := strings.Split(string(artifact.Data), "\n")
	require.GreaterOrEqual(t, len(rows), 7)

	assert.Equal(t, "Item;Descrição;Categoria;Preço Unitário;Quantidade;Subtotal", rows[0])
	assert.Equal(t, `"Cabo flexível";"Rolo 100m";"Elétrica";149,90;2;299,80`, rows[1])
	assert.Equal(t, "", rows[2])
	assert.Equal(t, "Subtotal;;;;;299,80", rows[3])
	assert.Equal(t, "Desconto (10%);;;;;-29,98", rows[4])
	assert.Equal(t, "Taxa (5%);;;;;13,49", rows[5])
	assert.Equal(t, "Total Geral;;;;;283,31", rows[6])
}

func TestRenderFixedDiscountLabel(t *testing.T) {
	ix := catalog.BuildIndex([]catalog.Product{
		{ID: "p1", Name: "Disjuntor", Price: decimal.NewFromInt(50), Category: "Elétrica"},
	})
	q := quote.Quote{
		Name:         "Orçamento",
		Items:        []quote.Item{{ProductID: "p1", Quantity: 1}},
		Discount:     decimal.NewFromInt(20),
		DiscountType: quote.DiscountFixed,
	}
	lines, sum := quote.Summarize(q, ix)

	artifact, err := New().Render(q, lines, sum)
	require.NoError(t, err)

	assert.Contains(t, string(artifact.Data), "Desconto (R$20,00);;;;;-20,00")
	assert.Contains(t, string(artifact.Data), "Total Geral;;;;;30,00")
}

func TestRenderSkipsOrphanedItems(t *testing.T) {
	ix := catalog.BuildIndex(nil)
	q := quote.Quote{
		Name:  "Orçamento",
		Items: []quote.Item{{ProductID: "gone", Quantity: 3}},
	}
	lines, sum := quote.Summarize(q, ix)

	artifact, err := New().Render(q, lines, sum)
	require.NoError(t, err)

	rows := strings.Split(string(artifact.Data), "\n")
	// header, blank separator, four summary rows, trailing newline
	assert.Equal(t, "", rows[1])
	assert.Contains(t, string(artifact.Data), "Subtotal;;;;;0,00")
}
