// Package store is the facade over the catalog, customer directory, cart and
// sales ledger. Every method takes the store-wide lock, so a checkout, which
// touches three components, is atomic to readers.
package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"CornerStore/internal/cart"
	"CornerStore/internal/catalog"
	"CornerStore/internal/directory"
	"CornerStore/internal/ledger"
	"CornerStore/internal/model"
)

type Options struct {
	Log     *zap.Logger
	Metrics *Metrics

	// Now stamps sale dates. Defaults to time.Now.
	Now func() time.Time
	// SaleCode draws candidate sale codes. Defaults to RandomSaleCode.
	SaleCode func() string
}

type Store struct {
	mu sync.RWMutex

	catalog   *catalog.Catalog
	directory *directory.Directory
	cart      *cart.Cart
	ledger    *ledger.Ledger

	log      *zap.Logger
	metrics  *Metrics
	now      func() time.Time
	saleCode func() string
}

func New(opts Options) *Store {
	s := &Store{
		catalog:   catalog.New(),
		directory: directory.New(),
		cart:      cart.New(),
		ledger:    ledger.New(),
		log:       opts.Log,
		metrics:   opts.Metrics,
		now:       opts.Now,
		saleCode:  opts.SaleCode,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.saleCode == nil {
		s.saleCode = RandomSaleCode
	}
	return s
}

// Products

func (s *Store) AddProduct(p model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.Add(p); err != nil {
		return err
	}
	s.metrics.setProducts(s.catalog.Len())
	return nil
}

func (s *Store) RemoveProduct(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.Remove(code); err != nil {
		return err
	}
	s.metrics.setProducts(s.catalog.Len())
	return nil
}

func (s *Store) FindProduct(code string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Find(code)
}

func (s *Store) EditProduct(updated, previous model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Edit(updated, previous)
}

func (s *Store) LowStockView() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.LowStockView()
}

// Customers

func (s *Store) AddCustomer(c model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.PurchaseHistory = nil
	if err := s.directory.Add(c); err != nil {
		return err
	}
	s.metrics.setCustomers(s.directory.Len())
	return nil
}

func (s *Store) RemoveCustomer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.directory.Remove(id); err != nil {
		return err
	}
	s.metrics.setCustomers(s.directory.Len())
	return nil
}

func (s *Store) FindCustomer(id string) (model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directory.Find(id)
}

func (s *Store) EditCustomer(updated, previous model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.Edit(updated, previous)
}

func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directory.List()
}

func (s *Store) CustomerNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directory.AllNames()
}

// CustomerSales lists a registered customer's purchases, most recent first.
// It reads the customer's own history, which follows the customer through
// an id change and is dropped with the customer.
func (s *Store) CustomerSales(id string) ([]model.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.directory.Find(id)
	if err != nil {
		return nil, err
	}
	return ledger.NewestFirst(slices.Clone(c.PurchaseHistory)), nil
}

// Cart

func (s *Store) SetCartQuantity(code string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(code, qty)
}

// AddToCart sets the quantity for a catalog product. The product lookup and
// the cart write happen under one lock, so a product removed concurrently
// never lands in the cart.
func (s *Store) AddToCart(code string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		return fmt.Errorf("%w: quantity for %s must be positive, got %d", model.ErrInvalidQuantity, code, qty)
	}
	if _, err := s.catalog.Find(code); err != nil {
		return err
	}
	s.cart.SetQuantity(code, qty)
	return nil
}

func (s *Store) RemoveFromCart(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(code)
}

func (s *Store) CartContents() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Contents()
}

func (s *Store) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clear()
}

// Sales

func (s *Store) FindSale(code string) (model.Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Find(code)
}

func (s *Store) SalesByDateDescending() []model.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.OrderedByDateDescending()
}
