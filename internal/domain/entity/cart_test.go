package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cartItem(id uuid.UUID, price string, qty int) CartItem {
	return CartItem{
		ProductID: id,
		Name:      "item",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestCartTotals(t *testing.T) {
	cart := &Cart{UserID: uuid.New()}
	cart.Upsert(cartItem(uuid.New(), "12.50", 2))
	cart.Upsert(cartItem(uuid.New(), "3.25", 3))

	assert.Equal(t, 5, cart.ItemCount())
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("34.75")))
}

func TestCartUpsertMergesLines(t *testing.T) {
	productID := uuid.New()
	cart := &Cart{}

	cart.Upsert(cartItem(productID, "10.00", 1))
	cart.Upsert(cartItem(productID, "10.00", 2))

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("30.00")))
}

func TestCartSetQuantity(t *testing.T) {
	productID := uuid.New()
	cart := &Cart{}
	cart.Upsert(cartItem(productID, "5.00", 2))

	assert.True(t, cart.SetQuantity(productID, 4))
	assert.Equal(t, 4, cart.Items[0].Quantity)

	// zero removes the line
	assert.True(t, cart.SetQuantity(productID, 0))
	assert.Empty(t, cart.Items)

	assert.False(t, cart.SetQuantity(uuid.New(), 1))
}

func TestCartRemove(t *testing.T) {
	productID := uuid.New()
	other := uuid.New()
	cart := &Cart{}
	cart.Upsert(cartItem(productID, "5.00", 1))
	cart.Upsert(cartItem(other, "7.00", 1))

	assert.True(t, cart.Remove(productID))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, other, cart.Items[0].ProductID)

	assert.False(t, cart.Remove(productID))
}

func TestCartItemSubtotal(t *testing.T) {
	item := cartItem(uuid.New(), "19.99", 3)
	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("59.97")))
}
