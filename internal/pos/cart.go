package pos

import "github.com/shopspring/decimal"

// ShoppingCart accumulates the prices scanned during one checkout.
type ShoppingCart struct {
	prices []decimal.Decimal
}

func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{}
}

// Add records the price as-is. Zero and negative prices are accepted.
func (c *ShoppingCart) Add(price decimal.Decimal) {
	c.prices = append(c.prices, price)
}

// Total is the exact sum of every added price, zero for an empty cart.
func (c *ShoppingCart) Total() decimal.Decimal {
	return decimal.Sum(decimal.Zero, c.prices...)
}

func (c *ShoppingCart) Count() int {
	return len(c.prices)
}
