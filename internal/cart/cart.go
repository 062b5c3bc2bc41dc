package cart

import (
	"fmt"

	"CornerStore/internal/model"
)

// Cart maps product codes to requested quantities for one session. It does
// not check quantities against stock.
type Cart struct {
	m map[string]int
}

func New() *Cart {
	return &Cart{m: map[string]int{}}
}

func (c *Cart) SetQuantity(code string, qty int) {
	c.m[code] = qty
}

func (c *Cart) Remove(code string) error {
	if _, ok := c.m[code]; !ok {
		return fmt.Errorf("%w: product %s is not in the cart", model.ErrNotFound, code)
	}
	delete(c.m, code)
	return nil
}

// Contents returns a copy of the cart.
func (c *Cart) Contents() map[string]int {
	out := make(map[string]int, len(c.m))
	for k, v := range c.m {
		out[k] = v
	}
	return out
}

func (c *Cart) Len() int { return len(c.m) }

func (c *Cart) Clear() error {
	clear(c.m)
	if len(c.m) != 0 {
		return fmt.Errorf("%w: %d entries left in the cart", model.ErrClearFailed, len(c.m))
	}
	return nil
}
