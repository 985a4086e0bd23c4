package postgres

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"orcamento-pro/backend/internal/domain/quote"
)

type quoteCollection struct{ db *DB }

func (c quoteCollection) Save(q quote.Quote) error {
	items, err := json.Marshal(q.Items)
	if err != nil {
		return err
	}
	_, err = c.db.Pool.Exec(context.Background(), `
		INSERT INTO quotes (id, name, items, discount, discount_type, tax_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			items = EXCLUDED.items,
			discount = EXCLUDED.discount,
			discount_type = EXCLUDED.discount_type,
			tax_rate = EXCLUDED.tax_rate,
			created_at = EXCLUDED.created_at`,
		q.ID, q.Name, items, q.Discount.String(), string(q.DiscountType), q.TaxRate.String(), q.CreatedAt)
	return err
}

func (c quoteCollection) Delete(id string) error {
	_, err := c.db.Pool.Exec(context.Background(),
		`DELETE FROM quotes WHERE id = $1`, id)
	return err
}

func (c quoteCollection) List() ([]quote.Quote, error) {
	rows, err := c.db.Pool.Query(context.Background(), `
		SELECT id, name, items, discount::text, discount_type, tax_rate::text, created_at
		FROM quotes ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []quote.Quote
	for rows.Next() {
		var q quote.Quote
		var items []byte
		var discount, taxRate, discountType string
		if err := rows.Scan(&q.ID, &q.Name, &items, &discount, &discountType, &taxRate, &q.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &q.Items); err != nil {
			return nil, err
		}
		if q.Discount, err = decimal.NewFromString(discount); err != nil {
			return nil, err
		}
		if q.TaxRate, err = decimal.NewFromString(taxRate); err != nil {
			return nil, err
		}
		q.DiscountType = quote.DiscountType(discountType)
		out = append(out, q)
	}
	return out, rows.Err()
}
