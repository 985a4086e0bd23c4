package catalog

// Index is a derived productID -> Product lookup used by pricing. It is
// rebuilt from the store whenever the catalog changes and is never persisted.
type Index map[string]Product

func BuildIndex(products []Product) Index {
	ix := make(Index, len(products))
	for _, p := range products {
		ix[p.ID] = p
	}
	return ix
}

func (ix Index) Resolve(id string) (Product, bool) {
	p, ok := ix[id]
	return p, ok
}
