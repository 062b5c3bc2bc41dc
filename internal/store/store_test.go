package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"CornerStore/internal/directory"
	"CornerStore/internal/model"
)

var saleDay = time.Date(2024, 3, 8, 15, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, codes ...string) *Store {
	t.Helper()

	opts := Options{
		Log: zap.NewNop(),
		Now: func() time.Time { return saleDay },
	}
	if len(codes) > 0 {
		i := 0
		opts.SaleCode = func() string {
			c := codes[i%len(codes)]
			i++
			return c
		}
	}
	return New(opts)
}

func seedJuan(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.AddCustomer(model.Customer{Name: "Juan", ID: "1212", Address: "Mi casa"}))
	require.NoError(t, s.AddProduct(model.Product{Name: "Arroz", Code: "1111", Price: decimal.NewFromInt(5000), InventoryQuantity: 50}))
	require.NoError(t, s.AddProduct(model.Product{Name: "Azucar", Code: "1234", Price: decimal.NewFromInt(4500), InventoryQuantity: 30}))
}

func TestCheckoutEndToEnd(t *testing.T) {
	s := newTestStore(t)
	seedJuan(t, s)

	s.SetCartQuantity("1111", 5)
	s.SetCartQuantity("1234", 5)

	sale, err := s.Checkout(s.CartContents(), "1212")
	require.NoError(t, err)

	assert.True(t, sale.Total.Equal(decimal.NewFromInt(47500)), "total=%s", sale.Total)
	assert.Len(t, sale.Code, 4)
	assert.Regexp(t, "^[A-Z]{4}$", sale.Code)
	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), sale.Date)
	assert.Equal(t, "Juan", sale.Customer.Name)
	require.Len(t, sale.LineItems, 2)
	assert.Equal(t, "1111", sale.LineItems[0].Product.Code)
	assert.True(t, sale.LineItems[0].LineTotal.Equal(decimal.NewFromInt(25000)))

	history := s.SalesByDateDescending()
	require.Len(t, history, 1)
	assert.Equal(t, sale.Code, history[0].Code)

	arroz, err := s.FindProduct("1111")
	require.NoError(t, err)
	assert.Equal(t, 45, arroz.InventoryQuantity)

	azucar, err := s.FindProduct("1234")
	require.NoError(t, err)
	assert.Equal(t, 25, azucar.InventoryQuantity)

	assert.Empty(t, s.CartContents())

	juan, err := s.FindCustomer("1212")
	require.NoError(t, err)
	require.Len(t, juan.PurchaseHistory, 1)
	assert.Equal(t, sale.Code, juan.PurchaseHistory[0].Code)
}

func TestCheckoutTwiceDeductsTwice(t *testing.T) {
	s := newTestStore(t)
	seedJuan(t, s)

	s.SetCartQuantity("1111", 5)
	s.SetCartQuantity("1234", 5)
	contents := s.CartContents()

	first, err := s.Checkout(contents, "1212")
	require.NoError(t, err)
	second, err := s.Checkout(contents, "1212")
	require.NoError(t, err)

	assert.NotEqual(t, first.Code, second.Code)

	arroz, _ := s.FindProduct("1111")
	assert.Equal(t, 40, arroz.InventoryQuantity)
	azucar, _ := s.FindProduct("1234")
	assert.Equal(t, 20, azucar.InventoryQuantity)

	assert.Len(t, s.SalesByDateDescending(), 2)
}

func TestCheckoutLineTotalsSnapshotPrice(t *testing.T) {
	s := newTestStore(t)
	seedJuan(t, s)

	sale, err := s.Checkout(map[string]int{"1111": 2}, "1212")
	require.NoError(t, err)

	arroz, _ := s.FindProduct("1111")
	repriced := arroz
	repriced.Price = decimal.NewFromInt(9999)
	require.NoError(t, s.EditProduct(repriced, arroz))

	got, ok := s.FindSale(sale.Code)
	require.True(t, ok)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(10000)))
	assert.True(t, got.LineItems[0].Product.Price.Equal(decimal.NewFromInt(5000)))
}

func TestCheckoutValidationLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name     string
		contents map[string]int
		customer string
		want     error
	}{
		{"empty cart", map[string]int{}, "1212", model.ErrEmptyCart},
		{"unknown customer", map[string]int{"1111": 1}, "9999", model.ErrNotFound},
		{"unknown product", map[string]int{"1111": 1, "0000": 1}, "1212", model.ErrNotFound},
		{"zero quantity", map[string]int{"1111": 0}, "1212", model.ErrInvalidQuantity},
		{"negative quantity", map[string]int{"1234": -3}, "1212", model.ErrInvalidQuantity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			seedJuan(t, s)
			s.SetCartQuantity("1111", 1)

			_, err := s.Checkout(tc.contents, tc.customer)
			require.ErrorIs(t, err, tc.want)

			assert.Empty(t, s.SalesByDateDescending())
			assert.Equal(t, map[string]int{"1111": 1}, s.CartContents())
			arroz, _ := s.FindProduct("1111")
			assert.Equal(t, 50, arroz.InventoryQuantity)
		})
	}
}

func TestCheckoutSaleCodeRetriesOnCollision(t *testing.T) {
	s := newTestStore(t, "AAAA", "AAAA", "BBBB")
	seedJuan(t, s)

	first, err := s.Checkout(map[string]int{"1111": 1}, "1212")
	require.NoError(t, err)
	second, err := s.Checkout(map[string]int{"1111": 1}, "1212")
	require.NoError(t, err)

	assert.Equal(t, "AAAA", first.Code)
	assert.Equal(t, "BBBB", second.Code)
}

func TestCheckoutSaleCodeExhausted(t *testing.T) {
	s := newTestStore(t, "AAAA")
	seedJuan(t, s)

	_, err := s.Checkout(map[string]int{"1111": 1}, "1212")
	require.NoError(t, err)

	_, err = s.Checkout(map[string]int{"1111": 1}, "1212")
	require.ErrorIs(t, err, model.ErrCodeExhausted)

	_, err = s.GenerateSaleCode()
	require.ErrorIs(t, err, model.ErrCodeExhausted)

	arroz, _ := s.FindProduct("1111")
	assert.Equal(t, 49, arroz.InventoryQuantity)
}

func TestRandomSaleCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, "^[A-Z]{4}$", RandomSaleCode())
	}
}

func TestCustomerSales(t *testing.T) {
	s := newTestStore(t)
	seedJuan(t, s)
	require.NoError(t, s.AddCustomer(model.Customer{Name: "Jose", ID: "1313", Address: "Su casa"}))

	_, err := s.Checkout(map[string]int{"1111": 1}, "1212")
	require.NoError(t, err)

	sales, err := s.CustomerSales("1212")
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	sales, err = s.CustomerSales("1313")
	require.NoError(t, err)
	assert.Empty(t, sales)

	_, err = s.CustomerSales("0000")
	require.ErrorIs(t, err, model.ErrNotFound)

	assert.Equal(t, []string{directory.NoSelection, "Juan", "Jose"}, s.CustomerNames())
}

func TestCustomerSalesFollowsIDEdit(t *testing.T) {
	s := newTestStore(t)
	seedJuan(t, s)

	sale, err := s.Checkout(map[string]int{"1111": 1}, "1212")
	require.NoError(t, err)

	juan := model.Customer{Name: "Juan", ID: "1212", Address: "Mi casa"}
	require.NoError(t, s.EditCustomer(model.Customer{Name: "Juan", ID: "9999", Address: "Mi casa"}, juan))

	sales, err := s.CustomerSales("9999")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale.Code, sales[0].Code)

	_, err = s.CustomerSales("1212")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCustomerSalesNotInheritedByReusedID(t *testing.T) {
	s := newTestStore(t)
	seedJuan(t, s)

	_, err := s.Checkout(map[string]int{"1111": 1}, "1212")
	require.NoError(t, err)

	require.NoError(t, s.RemoveCustomer("1212"))
	require.NoError(t, s.AddCustomer(model.Customer{Name: "Other", ID: "1212", Address: "Otra casa"}))

	sales, err := s.CustomerSales("1212")
	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.Len(t, s.SalesByDateDescending(), 1)
}

func TestCustomerSalesNewestFirst(t *testing.T) {
	days := []time.Time{
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC),
	}
	i := 0
	s := New(Options{
		Log: zap.NewNop(),
		Now: func() time.Time { d := days[i]; i++; return d },
	})
	seedJuan(t, s)

	for range days {
		_, err := s.Checkout(map[string]int{"1111": 1}, "1212")
		require.NoError(t, err)
	}

	sales, err := s.CustomerSales("1212")
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, days[1].Day(), sales[0].Date.Day())
	assert.Equal(t, days[2].Day(), sales[1].Date.Day())
	assert.Equal(t, days[0].Day(), sales[2].Date.Day())
}

func TestAddToCart(t *testing.T) {
	s := newTestStore(t)
	seedJuan(t, s)

	require.NoError(t, s.AddToCart("1111", 3))
	require.ErrorIs(t, s.AddToCart("9999", 1), model.ErrNotFound)
	require.ErrorIs(t, s.AddToCart("1234", 0), model.ErrInvalidQuantity)

	assert.Equal(t, map[string]int{"1111": 3}, s.CartContents())
}

func TestCheckoutCart(t *testing.T) {
	s := newTestStore(t)
	seedJuan(t, s)

	_, err := s.CheckoutCart("1212")
	require.ErrorIs(t, err, model.ErrEmptyCart)

	require.NoError(t, s.AddToCart("1111", 5))
	require.NoError(t, s.AddToCart("1234", 5))

	sale, err := s.CheckoutCart("1212")
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(47500)), "total=%s", sale.Total)
	assert.Empty(t, s.CartContents())
}

// Every cart entry added while checkouts run is either sold exactly once or
// still in the cart afterwards.
func TestCheckoutCartConcurrentAdds(t *testing.T) {
	s := New(Options{Log: zap.NewNop()})
	require.NoError(t, s.AddCustomer(model.Customer{Name: "Juan", ID: "1212", Address: "Mi casa"}))

	const n = 200
	for i := 0; i < n; i++ {
		code := fmt.Sprintf("p%03d", i)
		require.NoError(t, s.AddProduct(model.Product{Name: code, Code: code, Price: decimal.NewFromInt(10), InventoryQuantity: 1}))
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.AddToCart(fmt.Sprintf("p%03d", i), 1))
		}(i)
		go func() {
			defer wg.Done()
			_, err := s.CheckoutCart("1212")
			if err != nil {
				assert.ErrorIs(t, err, model.ErrEmptyCart)
			}
		}()
	}
	wg.Wait()

	sold := map[string]int{}
	for _, sale := range s.SalesByDateDescending() {
		for _, it := range sale.LineItems {
			sold[it.Product.Code] += it.Quantity
		}
	}
	left := s.CartContents()

	for i := 0; i < n; i++ {
		code := fmt.Sprintf("p%03d", i)
		assert.Equal(t, 1, sold[code]+left[code], code)

		p, err := s.FindProduct(code)
		require.NoError(t, err)
		assert.Equal(t, 1-sold[code], p.InventoryQuantity, code)
	}
}

func TestStoreMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New(Options{Metrics: NewMetrics(reg)})
	seedJuan(t, s)

	_, err := s.Checkout(map[string]int{"1111": 5, "1234": 5}, "1212")
	require.NoError(t, err)

	m := s.metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Sales))
	assert.Equal(t, 47500.0, testutil.ToFloat64(m.Amount))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.UnitsSold.WithLabelValues("1111")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Products))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Customers))

	require.NoError(t, s.RemoveProduct("1234"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Products))
}
