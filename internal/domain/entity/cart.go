package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a single product line in a user's cart
type CartItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns unit price times quantity
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds a user's pending marketplace selection. Carts live in Redis,
// not in the database, keyed per user.
type Cart struct {
	UserID uuid.UUID  `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// Total returns the sum of all item subtotals
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount returns the total quantity across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Upsert adds the item or increases the quantity of an existing line
func (c *Cart) Upsert(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity of a line, removing it when qty <= 0.
// Returns false if the product is not in the cart.
func (c *Cart) SetQuantity(productID uuid.UUID, qty int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if qty <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = qty
			}
			return true
		}
	}
	return false
}

// Remove drops a line from the cart. Returns false if the product is absent.
func (c *Cart) Remove(productID uuid.UUID) bool {
	return c.SetQuantity(productID, 0)
}
