package model

type Customer struct {
	Name            string `json:"name" db:"name"`
	ID              string `json:"id" db:"id"`
	Address         string `json:"address" db:"address"`
	PurchaseHistory []Sale `json:"purchase_history,omitempty" db:"-"`
}

// Equal is structural over name, id and address. Purchase history is not
// part of a customer's value.
func (c Customer) Equal(o Customer) bool {
	return c.Name == o.Name && c.ID == o.ID && c.Address == o.Address
}

// Snapshot returns the customer without its purchase history, the form
// embedded in a Sale.
func (c Customer) Snapshot() Customer {
	return Customer{Name: c.Name, ID: c.ID, Address: c.Address}
}
