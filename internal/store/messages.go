package store

// Confirmations returned to callers after a successful mutation.
const (
	MsgProductAdded   = "product registered"
	MsgProductEdited  = "product updated"
	MsgProductRemoved = "product removed"

	MsgCustomerAdded   = "customer registered"
	MsgCustomerEdited  = "customer updated"
	MsgCustomerRemoved = "customer removed"

	MsgCartUpdated = "product added to the cart"
	MsgCartRemoved = "product removed from the cart"
	MsgCartCleared = "cart emptied"

	MsgSaleRecorded = "sale added to the history"

	MsgProductUnchanged  = "the product was not changed"
	MsgCustomerUnchanged = "the customer was not changed"
	MsgSaleNotFound      = "no sale found with that code"
)
