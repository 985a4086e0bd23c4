package quote

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceAddItem(t *testing.T) {
	t.Run("AppendsNewItem", func(t *testing.T) {
		q := New(time.Now())

		next := Reduce(q, AddItem{ProductID: "p1", Quantity: 2})

		require.Len(t, next.Items, 1)
		assert.Equal(t, Item{ProductID: "p1", Quantity: 2}, next.Items[0])
	})

	t.Run("MergesQuantityForExistingProduct", func(t *testing.T) {
		q := New(time.Now())
		q = Reduce(q, AddItem{ProductID: "p1", Quantity: 2})

		next := Reduce(q, AddItem{ProductID: "p1", Quantity: 3})

		require.Len(t, next.Items, 1)
		assert.Equal(t, 5, next.Items[0].Quantity)
	})

	t.Run("KeepsInsertionOrder", func(t *testing.T) {
		q := New(time.Now())
		q = Reduce(q, AddItem{ProductID: "p1", Quantity: 1})
		q = Reduce(q, AddItem{ProductID: "p2", Quantity: 1})
		q = Reduce(q, AddItem{ProductID: "p1", Quantity: 4})

		require.Len(t, q.Items, 2)
		assert.Equal(t, "p1", q.Items[0].ProductID)
		assert.Equal(t, 5, q.Items[0].Quantity)
		assert.Equal(t, "p2", q.Items[1].ProductID)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		q := New(time.Now())
		q = Reduce(q, AddItem{ProductID: "p1", Quantity: 2})

		_ = Reduce(q, AddItem{ProductID: "p1", Quantity: 3})
		_ = Reduce(q, RemoveItem{ProductID: "p1"})

		require.Len(t, q.Items, 1)
		assert.Equal(t, 2, q.Items[0].Quantity)
	})
}

func TestReduceUpdateItemQuantity(t *testing.T) {
	t.Run("ReplacesQuantity", func(t *testing.T) {
		q := New(time.Now())
		q = Reduce(q, AddItem{ProductID: "p1", Quantity: 2})

		next := Reduce(q, UpdateItemQuantity{ProductID: "p1", Quantity: 7})

		require.Len(t, next.Items, 1)
		assert.Equal(t, 7, next.Items[0].Quantity)
	})

	t.Run("NoImplicitInsertForUnknownProduct", func(t *testing.T) {
		q := New(time.Now())

		next := Reduce(q, UpdateItemQuantity{ProductID: "ghost", Quantity: 7})

		assert.Empty(t, next.Items)
	})
}

func TestReduceRemoveItem(t *testing.T) {
	t.Run("DropsMatchingItem", func(t *testing.T) {
		q := New(time.Now())
		q = Reduce(q, AddItem{ProductID: "p1", Quantity: 1})
		q = Reduce(q, AddItem{ProductID: "p2", Quantity: 1})

		next := Reduce(q, RemoveItem{ProductID: "p1"})

		require.Len(t, next.Items, 1)
		assert.Equal(t, "p2", next.Items[0].ProductID)
	})

	t.Run("UnknownProductIsNoOp", func(t *testing.T) {
		q := New(time.Now())
		q = Reduce(q, AddItem{ProductID: "p1", Quantity: 1})

		next := Reduce(q, RemoveItem{ProductID: "ghost"})

		assert.Equal(t, q.Items, next.Items)
	})
}

func TestReduceAdjustments(t *testing.T) {
	t.Run("SetDiscountReplacesValueAndTypeTogether", func(t *testing.T) {
		q := New(time.Now())

		next := Reduce(q, SetDiscount{Value: decimal.NewFromInt(15), Type: DiscountFixed})

		assert.Equal(t, "15", next.Discount.String())
		assert.Equal(t, DiscountFixed, next.DiscountType)
	})

	t.Run("SetTaxRate", func(t *testing.T) {
		q := New(time.Now())

		next := Reduce(q, SetTaxRate{Value: decimal.RequireFromString("7.5")})

		assert.Equal(t, "7.5", next.TaxRate.String())
	})

	t.Run("SetName", func(t *testing.T) {
		q := New(time.Now())

		next := Reduce(q, SetName{Value: "Reforma cozinha"})

		assert.Equal(t, "Reforma cozinha", next.Name)
	})

	t.Run("ResetReplacesWholeState", func(t *testing.T) {
		q := New(time.Now())
		q = Reduce(q, AddItem{ProductID: "p1", Quantity: 1})

		loaded := New(time.Now())
		loaded = Reduce(loaded, AddItem{ProductID: "p9", Quantity: 9})

		next := Reduce(q, Reset{Quote: loaded})

		assert.Equal(t, loaded, next)
	})
}

func TestNewQuoteDefaults(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	q := New(now)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "Orçamento 28/08/2026", q.Name)
	assert.Empty(t, q.Items)
	assert.Equal(t, DiscountPercentage, q.DiscountType)
	assert.True(t, q.Discount.IsZero())
	assert.True(t, q.TaxRate.IsZero())
	assert.Equal(t, now, q.CreatedAt)
}

func TestReferencesProduct(t *testing.T) {
	quotes := []Quote{
		{ID: "q1", Items: []Item{{ProductID: "p1", Quantity: 1}}},
		{ID: "q2", Items: []Item{{ProductID: "p2", Quantity: 3}}},
	}

	assert.True(t, ReferencesProduct(quotes, "p2"))
	assert.False(t, ReferencesProduct(quotes, "p3"))
}
