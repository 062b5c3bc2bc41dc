package seed

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	"CornerStore/internal/model"
)

// Source supplies the initial catalog and directory. Both methods may return
// a partial result alongside an error.
type Source interface {
	Products(ctx context.Context) ([]model.Product, error)
	Customers(ctx context.Context) ([]model.Customer, error)
}

// Sink receives seeded records; *store.Store satisfies it.
type Sink interface {
	AddProduct(p model.Product) error
	AddCustomer(c model.Customer) error
}

type FileSource struct {
	ProductsPath  string
	CustomersPath string
}

func (f FileSource) Products(_ context.Context) ([]model.Product, error) {
	if f.ProductsPath == "" {
		return nil, nil
	}
	fh, err := os.Open(f.ProductsPath)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ParseProducts(fh)
}

func (f FileSource) Customers(_ context.Context) ([]model.Customer, error) {
	if f.CustomersPath == "" {
		return nil, nil
	}
	fh, err := os.Open(f.CustomersPath)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ParseCustomers(fh)
}

type Result struct {
	Products  int
	Customers int
	Skipped   int
}

// Apply copies src into dst. Seed data is best effort: read failures and
// rejected records are logged and the rest is kept. Only a cancelled ctx
// is returned as an error.
func Apply(ctx context.Context, src Source, dst Sink, log *zap.Logger) (Result, error) {
	var res Result

	products, err := src.Products(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		log.Error("load products failed", zap.Error(err), zap.Int("loaded_before_failure", len(products)))
	}
	for _, p := range products {
		if err := dst.AddProduct(p); err != nil {
			log.Warn("seed product rejected", zap.String("code", p.Code), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Products++
	}

	customers, err := src.Customers(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		log.Error("load customers failed", zap.Error(err), zap.Int("loaded_before_failure", len(customers)))
	}
	for _, c := range customers {
		if err := dst.AddCustomer(c); err != nil {
			log.Warn("seed customer rejected", zap.String("id", c.ID), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Customers++
	}

	log.Info("seed loaded",
		zap.Int("products", res.Products),
		zap.Int("customers", res.Customers),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

// IsParseFailure reports whether err came from a malformed seed line.
func IsParseFailure(err error) bool {
	return errors.Is(err, model.ErrParse)
}
