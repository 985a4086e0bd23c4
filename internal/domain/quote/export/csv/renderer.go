// Package csv renders a quote as semicolon-delimited text with decimal-comma
// number formatting, matching what spreadsheet imports in pt-BR locales
// expect.
package csv

import (
	"fmt"
	"strings"

	"orcamento-pro/backend/internal/domain/quote"
	"orcamento-pro/backend/internal/domain/quote/export"
)

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Render(q quote.Quote, lines []quote.Line, sum quote.Summary) (export.Artifact, error) {
	var b strings.Builder

	b.WriteString("Item;Descrição;Categoria;Preço Unitário;Quantidade;Subtotal\n")
	for _, ln := range lines {
		fmt.Fprintf(&b, "\"%s\";\"%s\";\"%s\";%s;%d;%s\n",
			ln.Product.Name,
			ln.Product.Description,
			ln.Product.Category,
			export.FormatAmount(ln.Product.Price),
			ln.Quantity,
			export.FormatAmount(ln.Total),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal;;;;;%s\n", export.FormatAmount(sum.Subtotal))
	fmt.Fprintf(&b, "Desconto (%s);;;;;-%s\n", export.DiscountLabel(q), export.FormatAmount(sum.DiscountAmount))
	fmt.Fprintf(&b, "Taxa (%s%%);;;;;%s\n", q.TaxRate.String(), export.FormatAmount(sum.TaxAmount))
	fmt.Fprintf(&b, "Total Geral;;;;;%s\n", export.FormatAmount(sum.GrandTotal))

	return export.Artifact{
		Filename:    export.Filename(q.Name, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte(b.String()),
	}, nil
}
