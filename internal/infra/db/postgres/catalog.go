package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"orcamento-pro/backend/internal/domain/catalog"
)

type catalogStore struct{ db *DB }

func (c catalogStore) GetByID(id string) (catalog.Product, error) {
	row := c.db.Pool.QueryRow(context.Background(), `
		SELECT id, name, description, price::text, category
		FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, err
}

func (c catalogStore) List() ([]catalog.Product, error) {
	rows, err := c.db.Pool.Query(context.Background(), `
		SELECT id, name, description, price::text, category
		FROM products ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (c catalogStore) Create(p catalog.Product) error {
	_, err := c.db.Pool.Exec(context.Background(), `
		INSERT INTO products (id, name, description, price, category)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Description, p.Price.String(), p.Category)
	return err
}

func (c catalogStore) Update(p catalog.Product) error {
	tag, err := c.db.Pool.Exec(context.Background(), `
		UPDATE products SET name = $2, description = $3, price = $4, category = $5
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Price.String(), p.Category)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (c catalogStore) Delete(id string) error {
	_, err := c.db.Pool.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1`, id)
	return err
}

func scanProduct(row pgx.Row) (catalog.Product, error) {
	var p catalog.Product
	var price string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Category); err != nil {
		return catalog.Product{}, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return catalog.Product{}, err
	}
	p.Price = d
	return p, nil
}
