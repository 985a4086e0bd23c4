// quotectl renders a saved quote to a file without running the server.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"orcamento-pro/backend/internal/domain/catalog"
	"orcamento-pro/backend/internal/domain/quote"
	"orcamento-pro/backend/internal/domain/quote/export/formats"
	"orcamento-pro/backend/internal/infra/store/jsonfile"
)

func main() {
	dataFile := pflag.String("data", "data/orcamentos.json", "store file")
	quoteID := pflag.String("quote", "", "id of the quote to export")
	format := pflag.String("format", "pdf", "export format: csv, pdf or doc")
	out := pflag.String("out", "", "output path (default: the artifact filename)")
	list := pflag.Bool("list", false, "list saved quotes and exit")
	pflag.Parse()

	store, err := jsonfile.Open(*dataFile)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	quotes, err := store.QuoteCollection().List()
	if err != nil {
		log.Fatalf("list quotes: %v", err)
	}

	if *list {
		for _, q := range quotes {
			fmt.Printf("%s\t%s\t%d item(s)\t%s\n",
				q.ID, q.Name, len(q.Items), q.CreatedAt.Format("02/01/2006"))
		}
		return
	}

	if *quoteID == "" {
		log.Fatal("missing -quote (use -list to see saved quotes)")
	}

	var target *quote.Quote
	for i := range quotes {
		if quotes[i].ID == *quoteID {
			target = &quotes[i]
			break
		}
	}
	if target == nil {
		log.Fatalf("quote %s not found", *quoteID)
	}

	renderer, err := formats.ForName(*format)
	if err != nil {
		log.Fatal(err)
	}

	products, err := store.Catalog().List()
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	lines, sum := quote.Summarize(*target, catalog.BuildIndex(products))

	artifact, err := renderer.Render(*target, lines, sum)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	path := *out
	if path == "" {
		path = artifact.Filename
	}
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s (%d bytes)", path, len(artifact.Data))
}
