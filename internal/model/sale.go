package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is an immutable snapshot: Product carries the price in effect when
// the sale was recorded.
type LineItem struct {
	Quantity  int             `json:"quantity"`
	Product   Product         `json:"product"`
	LineTotal decimal.Decimal `json:"line_total"`
}

func NewLineItem(p Product, qty int) LineItem {
	return LineItem{
		Quantity:  qty,
		Product:   p,
		LineTotal: p.Price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

type Sale struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Date      time.Time       `json:"date"`
	Total     decimal.Decimal `json:"total"`
	Customer  Customer        `json:"customer"`
	LineItems []LineItem      `json:"line_items"`
}

// SumLineItems returns the sale total for items.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal)
	}
	return total
}

// CivilDate truncates t to midnight UTC of its calendar day.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s Sale) Before(o Sale) bool {
	return s.Date.Before(o.Date)
}
