package directory

import (
	"fmt"

	"CornerStore/internal/model"
)

// NoSelection is always the first entry of AllNames. Callers compare the
// chosen entry against it to detect that no customer was picked.
const NoSelection = "Select a customer"

type Directory struct {
	m     map[string]model.Customer
	order []string
}

func New() *Directory {
	return &Directory{m: map[string]model.Customer{}}
}

func (d *Directory) Len() int { return len(d.m) }

func (d *Directory) Add(c model.Customer) error {
	if _, ok := d.m[c.ID]; ok {
		return fmt.Errorf("%w: customer with id %s is already registered", model.ErrDuplicateKey, c.ID)
	}
	d.m[c.ID] = c
	d.order = append(d.order, c.ID)
	return nil
}

func (d *Directory) Remove(id string) error {
	if _, ok := d.m[id]; !ok {
		return notFound(id)
	}
	delete(d.m, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

func (d *Directory) Find(id string) (model.Customer, error) {
	c, ok := d.m[id]
	if !ok {
		return model.Customer{}, notFound(id)
	}
	return c, nil
}

// Edit swaps in updated only if the stored customer still equals previous.
// The stored purchase history moves to the updated value.
func (d *Directory) Edit(updated, previous model.Customer) error {
	cur, ok := d.m[previous.ID]
	if !ok || !cur.Equal(previous) {
		return fmt.Errorf("%w: customer %s changed or no longer exists", model.ErrEditFailed, previous.ID)
	}

	if updated.ID != previous.ID {
		if _, taken := d.m[updated.ID]; taken {
			return fmt.Errorf("%w: customer with id %s is already registered", model.ErrDuplicateKey, updated.ID)
		}
		delete(d.m, previous.ID)
		for i, v := range d.order {
			if v == previous.ID {
				d.order[i] = updated.ID
				break
			}
		}
	}

	updated.PurchaseHistory = cur.PurchaseHistory
	d.m[updated.ID] = updated
	return nil
}

// List returns customers in insertion order.
func (d *Directory) List() []model.Customer {
	out := make([]model.Customer, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.m[id])
	}
	return out
}

func (d *Directory) AllNames() []string {
	out := make([]string, 0, len(d.order)+1)
	out = append(out, NoSelection)
	for _, id := range d.order {
		out = append(out, d.m[id].Name)
	}
	return out
}

func (d *Directory) AppendPurchase(id string, s model.Sale) error {
	c, ok := d.m[id]
	if !ok {
		return notFound(id)
	}
	c.PurchaseHistory = append(c.PurchaseHistory, s)
	d.m[id] = c
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: customer with id %s does not exist", model.ErrNotFound, id)
}
