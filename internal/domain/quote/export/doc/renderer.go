// Package doc renders a quote as Word-compatible HTML markup, the same
// structure word processors accept when handed an .doc file.
package doc

import (
	"bytes"
	"html/template"

	"orcamento-pro/backend/internal/domain/quote"
	"orcamento-pro/backend/internal/domain/quote/export"
)

const docTemplate = `<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head><meta charset='utf-8'><title>{{.Name}}</title></head>
<body style="font-family: Arial, sans-serif;">
<h1>{{.Name}}</h1>
<p>Data: {{.Date}}</p>
<table style="width: 100%; border-collapse: collapse;">
<thead>
<tr>
<th style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Produto</th>
<th style="border: 1px solid #dddddd; text-align: right; padding: 8px; background-color: #f2f2f2;">Preço Unitário</th>
<th style="border: 1px solid #dddddd; text-align: center; padding: 8px; background-color: #f2f2f2;">Quantidade</th>
<th style="border: 1px solid #dddddd; text-align: right; padding: 8px; background-color: #f2f2f2;">Subtotal</th>
</tr>
</thead>
<tbody>
{{range .Lines}}<tr>
<td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">{{.Name}}</td>
<td style="border: 1px solid #dddddd; text-align: right; padding: 8px;">{{.UnitPrice}}</td>
<td style="border: 1px solid #dddddd; text-align: center; padding: 8px;">{{.Quantity}}</td>
<td style="border: 1px solid #dddddd; text-align: right; padding: 8px;">{{.Total}}</td>
</tr>
{{end}}</tbody>
</table>
<div style="margin-top: 20px; width: 300px; margin-left: auto; text-align: right;">
<p><strong>Subtotal:</strong> {{.Subtotal}}</p>
<p><strong>Desconto:</strong> -{{.Discount}}</p>
<p><strong>Taxa ({{.TaxRate}}%):</strong> +{{.Tax}}</p>
<hr/>
<h3><strong>Total Geral:</strong> {{.GrandTotal}}</h3>
</div>
</body>
</html>
`

var tmpl = template.Must(template.New("doc").Parse(docTemplate))

type lineData struct {
	Name      string
	UnitPrice string
	Quantity  int
	Total     string
}

type docData struct {
	Name       string
	Date       string
	Lines      []lineData
	Subtotal   string
	Discount   string
	TaxRate    string
	Tax        string
	GrandTotal string
}

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Render(q quote.Quote, lines []quote.Line, sum quote.Summary) (export.Artifact, error) {
	data := docData{
		Name:       q.Name,
		Date:       q.CreatedAt.Format("02/01/2006"),
		Lines:      make([]lineData, 0, len(lines)),
		Subtotal:   export.FormatCurrency(sum.Subtotal),
		Discount:   export.FormatCurrency(sum.DiscountAmount),
		TaxRate:    q.TaxRate.String(),
		Tax:        export.FormatCurrency(sum.TaxAmount),
		GrandTotal: export.FormatCurrency(sum.GrandTotal),
	}
	for _, ln := range lines {
		data.Lines = append(data.Lines, lineData{
			Name:      ln.Product.Name,
			UnitPrice: export.FormatCurrency(ln.Product.Price),
			Quantity:  ln.Quantity,
			Total:     export.FormatCurrency(ln.Total),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return export.Artifact{}, err
	}
	return export.Artifact{
		Filename:    export.Filename(q.Name, "doc"),
		ContentType: "application/vnd.ms-word",
		Data:        buf.Bytes(),
	}, nil
}
