package model

import "github.com/shopspring/decimal"

type Product struct {
	Name              string          `json:"name" db:"name"`
	Code              string          `json:"code" db:"code"`
	Price             decimal.Decimal `json:"price" db:"price"`
	InventoryQuantity int             `json:"inventory_quantity" db:"inventory_quantity"`
}

// Equal compares every field. decimal.Decimal holds a *big.Int, so == would
// compare pointers instead of amounts.
func (p Product) Equal(o Product) bool {
	return p.Name == o.Name &&
		p.Code == o.Code &&
		p.Price.Equal(o.Price) &&
		p.InventoryQuantity == o.InventoryQuantity
}

// LessStock orders products by remaining inventory, lowest first.
func (p Product) LessStock(o Product) bool {
	return p.InventoryQuantity < o.InventoryQuantity
}
