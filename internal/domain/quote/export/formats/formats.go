// Package formats maps format names to their renderers.
package formats

import (
	"fmt"

	"orcamento-pro/backend/internal/domain/quote/export"
	"orcamento-pro/backend/internal/domain/quote/export/csv"
	"orcamento-pro/backend/internal/domain/quote/export/doc"
	"orcamento-pro/backend/internal/domain/quote/export/pdf"
)

// ForName returns the renderer for a format name (csv, pdf, doc).
func ForName(name string) (export.Renderer, error) {
	switch name {
	case "csv":
		return csv.New(), nil
	case "pdf":
		return pdf.New(), nil
	case "doc":
		return doc.New(), nil
	}
	return nil, fmt.Errorf("unknown export format %q", name)
}
