package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"orcamento-pro/backend/internal/domain/quote"
	"orcamento-pro/backend/internal/domain/quote/export"
)

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Render(q quote.Quote, lines []quote.Line, sum quote.Summary) (export.Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(q.Name, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(q.Name))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Data: %s", q.CreatedAt.Format("02/01/2006"))))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(90, 7, tr("Produto"))
	pdf.Cell(30, 7, tr("Preço Unitário"))
	pdf.Cell(30, 7, tr("Quantidade"))
	pdf.Cell(30, 7, "Subtotal")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, ln := range lines {
		pdf.Cell(90, 6, tr(trim(ln.Product.Name, 50)))
		pdf.Cell(30, 6, tr(export.FormatCurrency(ln.Product.Price)))
		pdf.Cell(30, 6, fmt.Sprintf("%d", ln.Quantity))
		pdf.Cell(30, 6, tr(export.FormatCurrency(ln.Total)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Subtotal: %s", export.FormatCurrency(sum.Subtotal))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Desconto: -%s", export.FormatCurrency(sum.DiscountAmount))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Taxa (%s%%): +%s", q.TaxRate.String(), export.FormatCurrency(sum.TaxAmount))))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total Geral: %s", export.FormatCurrency(sum.GrandTotal))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return export.Artifact{}, err
	}
	return export.Artifact{
		Filename:    export.Filename(q.Name, "pdf"),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
