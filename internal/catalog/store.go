package catalog

import (
	"fmt"
	"sort"

	"CornerStore/internal/model"
)

// Catalog owns the product collection. It is not safe for concurrent use;
// the store facade serializes access.
type Catalog struct {
	m     map[string]model.Product
	order []string
}

func New() *Catalog {
	return &Catalog{m: map[string]model.Product{}}
}

func (c *Catalog) Len() int { return len(c.m) }

func (c *Catalog) Add(p model.Product) error {
	if _, ok := c.m[p.Code]; ok {
		return fmt.Errorf("%w: product code %s is already registered", model.ErrDuplicateKey, p.Code)
	}
	c.m[p.Code] = p
	c.order = append(c.order, p.Code)
	return nil
}

func (c *Catalog) Remove(code string) error {
	if _, ok := c.m[code]; !ok {
		return notFound(code)
	}
	delete(c.m, code)
	c.order = removeCode(c.order, code)
	return nil
}

func (c *Catalog) Find(code string) (model.Product, error) {
	p, ok := c.m[code]
	if !ok {
		return model.Product{}, notFound(code)
	}
	return p, nil
}

// Edit replaces the product stored under previous.Code only while the stored
// value still equals previous. A changed code re-keys the entry in place.
func (c *Catalog) Edit(updated, previous model.Product) error {
	cur, ok := c.m[previous.Code]
	if !ok || !cur.Equal(previous) {
		return fmt.Errorf("%w: product %s changed or no longer exists", model.ErrEditFailed, previous.Code)
	}

	if updated.Code != previous.Code {
		if _, taken := c.m[updated.Code]; taken {
			return fmt.Errorf("%w: product code %s is already registered", model.ErrDuplicateKey, updated.Code)
		}
		delete(c.m, previous.Code)
		for i, code := range c.order {
			if code == previous.Code {
				c.order[i] = updated.Code
				break
			}
		}
	}

	c.m[updated.Code] = updated
	return nil
}

// LowStockView lists products by ascending inventory. Equal quantities keep
// insertion order.
func (c *Catalog) LowStockView() []model.Product {
	out := c.List()
	sort.SliceStable(out, func(i, j int) bool { return out[i].LessStock(out[j]) })
	return out
}

// List returns products in insertion order.
func (c *Catalog) List() []model.Product {
	out := make([]model.Product, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.m[code])
	}
	return out
}

// ApplySaleDeduction subtracts each line item's quantity from the product's
// inventory. Inventory is not floored at zero.
func (c *Catalog) ApplySaleDeduction(items []model.LineItem) error {
	for _, it := range items {
		if _, ok := c.m[it.Product.Code]; !ok {
			return notFound(it.Product.Code)
		}
	}
	for _, it := range items {
		p := c.m[it.Product.Code]
		p.InventoryQuantity -= it.Quantity
		c.m[p.Code] = p
	}
	return nil
}

func notFound(code string) error {
	return fmt.Errorf("%w: product with code %s does not exist", model.ErrNotFound, code)
}

func removeCode(codes []string, code string) []string {
	for i, c := range codes {
		if c == code {
			return append(codes[:i], codes[i+1:]...)
		}
	}
	return codes
}
