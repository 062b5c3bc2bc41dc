package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CornerStore/internal/model"
)

// Checkout records a sale of contents to the customer. It appends the sale to
// the ledger and the customer's history, clears the cart and deducts
// inventory. All inputs are validated before the first effect, so a returned
// validation error leaves every component untouched.
//
// contents is taken as given: checking out the same contents twice records
// two sales and deducts inventory twice.
func (s *Store) Checkout(contents map[string]int, customerID string) (model.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout(contents, customerID)
}

// CheckoutCart checks out the current cart. Reading the cart and recording
// the sale share one critical section, so no cart update can slip in between
// and be cleared unsold.
func (s *Store) CheckoutCart(customerID string) (model.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout(s.cart.Contents(), customerID)
}

func (s *Store) checkout(contents map[string]int, customerID string) (model.Sale, error) {
	if len(contents) == 0 {
		return model.Sale{}, fmt.Errorf("%w: add products before checking out", model.ErrEmptyCart)
	}

	cust, err := s.directory.Find(customerID)
	if err != nil {
		return model.Sale{}, err
	}

	items, err := s.lineItems(contents)
	if err != nil {
		return model.Sale{}, err
	}

	code, err := s.uniqueSaleCode()
	if err != nil {
		return model.Sale{}, err
	}

	sale := model.Sale{
		ID:        "s_" + uuid.NewString(),
		Code:      code,
		Date:      model.CivilDate(s.now()),
		Total:     model.SumLineItems(items),
		Customer:  cust.Snapshot(),
		LineItems: items,
	}

	s.ledger.Append(sale)
	if err := s.directory.AppendPurchase(cust.ID, sale); err != nil {
		return sale, err
	}
	if err := s.cart.Clear(); err != nil {
		s.log.Error("cart not empty after checkout", zap.String("sale_code", sale.Code), zap.Error(err))
		return sale, err
	}
	if err := s.catalog.ApplySaleDeduction(items); err != nil {
		return sale, err
	}

	s.metrics.recordSale(sale)
	s.log.Info("sale recorded",
		zap.String("sale_code", sale.Code),
		zap.String("sale_id", sale.ID),
		zap.String("customer_id", cust.ID),
		zap.Int("line_items", len(items)),
		zap.String("total", sale.Total.String()),
	)

	return sale, nil
}

// lineItems prices each cart entry at the current catalog price. Items are
// ordered by product code.
func (s *Store) lineItems(contents map[string]int) ([]model.LineItem, error) {
	codes := make([]string, 0, len(contents))
	for code := range contents {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	items := make([]model.LineItem, 0, len(codes))
	for _, code := range codes {
		qty := contents[code]
		if qty <= 0 {
			return nil, fmt.Errorf("%w: quantity for %s must be positive, got %d", model.ErrInvalidQuantity, code, qty)
		}
		p, err := s.catalog.Find(code)
		if err != nil {
			return nil, err
		}
		items = append(items, model.NewLineItem(p, qty))
	}
	return items, nil
}
