package seed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"CornerStore/internal/model"
)

const (
	productFields  = 4
	customerFields = 3
)

// ParseProducts reads "name, code, price, quantity" lines. It stops at the
// first malformed line and returns the products read before it together
// with an ErrParse error.
func ParseProducts(r io.Reader) ([]model.Product, error) {
	var out []model.Product

	err := eachLine(r, func(n int, line string) error {
		parts := splitFields(line)
		if len(parts) < productFields {
			return parseErr(n, "want %d fields, got %d", productFields, len(parts))
		}

		price, err := decimal.NewFromString(parts[2])
		if err != nil {
			return parseErr(n, "price %q: %v", parts[2], err)
		}
		if price.IsNegative() {
			return parseErr(n, "price %s is negative", price)
		}

		qty, err := strconv.Atoi(parts[3])
		if err != nil {
			return parseErr(n, "quantity %q: %v", parts[3], err)
		}
		if qty < 0 {
			return parseErr(n, "quantity %d is negative", qty)
		}

		out = append(out, model.Product{
			Name:              parts[0],
			Code:              parts[1],
			Price:             price,
			InventoryQuantity: qty,
		})
		return nil
	})

	return out, err
}

// ParseCustomers reads "name, id, address" lines. Lines with any other field
// count are skipped.
func ParseCustomers(r io.Reader) ([]model.Customer, error) {
	var out []model.Customer

	err := eachLine(r, func(_ int, line string) error {
		parts := splitFields(line)
		if len(parts) != customerFields {
			return nil
		}
		out = append(out, model.Customer{Name: parts[0], ID: parts[1], Address: parts[2]})
		return nil
	})

	return out, err
}

func eachLine(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// splitFields trims every field and drops trailing empty ones, so
// "Juan,1212,Mi casa," still has three fields.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func parseErr(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", model.ErrParse, line, fmt.Sprintf(format, args...))
}
