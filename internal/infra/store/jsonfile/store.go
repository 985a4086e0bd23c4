// Package jsonfile persists the whole application state as one JSON document
// with three logical keys (products, quotes, theme). The document is loaded
// once at startup and rewritten on every mutation; writes are serialized by a
// mutex and go through a temp-file rename.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"orcamento-pro/backend/internal/domain/catalog"
	"orcamento-pro/backend/internal/domain/quote"
)

const defaultTheme = "claro"

type state struct {
	Products []catalog.Product `json:"products"`
	Quotes   []quote.Quote     `json:"quotes"`
	Theme    string            `json:"theme"`
}

type Store struct {
	mu   sync.Mutex
	path string
	st   state
}

// Open loads the document at path, or starts empty when it does not exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path, st: state{Theme: defaultTheme}}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.st); err != nil {
		return nil, fmt.Errorf("jsonfile: parse %s: %w", path, err)
	}
	if s.st.Theme == "" {
		s.st.Theme = defaultTheme
	}
	return s, nil
}

// persist writes the whole document. Callers hold s.mu.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) Catalog() catalog.Store            { return catalogStore{s} }
func (s *Store) QuoteCollection() quote.Collection { return quoteCollection{s} }

func (s *Store) Theme() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Theme, nil
}

func (s *Store) SetTheme(v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Theme = v
	return s.persist()
}

type catalogStore struct{ s *Store }

func (c catalogStore) GetByID(id string) (catalog.Product, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for _, p := range c.s.st.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, catalog.ErrNotFound
}

func (c catalogStore) List() ([]catalog.Product, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	out := make([]catalog.Product, len(c.s.st.Products))
	copy(out, c.s.st.Products)
	return out, nil
}

func (c catalogStore) Create(p catalog.Product) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.st.Products = append(c.s.st.Products, p)
	return c.s.persist()
}

func (c catalogStore) Update(p catalog.Product) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i, existing := range c.s.st.Products {
		if existing.ID == p.ID {
			c.s.st.Products[i] = p
			return c.s.persist()
		}
	}
	return catalog.ErrNotFound
}

func (c catalogStore) Delete(id string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	out := c.s.st.Products[:0]
	for _, p := range c.s.st.Products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	c.s.st.Products = out
	return c.s.persist()
}

type quoteCollection struct{ s *Store }

func (q quoteCollection) Save(v quote.Quote) error {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	for i, existing := range q.s.st.Quotes {
		if existing.ID == v.ID {
			q.s.st.Quotes[i] = v
			return q.s.persist()
		}
	}
	q.s.st.Quotes = append(q.s.st.Quotes, v)
	return q.s.persist()
}

func (q quoteCollection) Delete(id string) error {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	out := q.s.st.Quotes[:0]
	for _, existing := range q.s.st.Quotes {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	q.s.st.Quotes = out
	return q.s.persist()
}

func (q quoteCollection) List() ([]quote.Quote, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	out := make([]quote.Quote, len(q.s.st.Quotes))
	copy(out, q.s.st.Quotes)
	return out, nil
}
