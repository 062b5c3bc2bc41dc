package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"CornerStore/internal/model"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second

	pgUndefinedTable = "42P01"
)

var ErrSeedTableMissing = errors.New("seed table missing")

// PostgresSource reads the seed from "products" and "customers" tables.
type PostgresSource struct {
	db *sqlx.DB
}

func NewPostgresSource(db *sqlx.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// OpenPostgres connects through the pgx stdlib driver and pings once.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresSource, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	s := NewPostgresSource(db)
	if err := s.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresSource) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresSource) Close() error {
	return s.db.Close()
}

func (s *PostgresSource) Products(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, 16)

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &out, `
			SELECT name, code, price, inventory_quantity
			FROM products
			ORDER BY code ASC
		`)
	})
	if err != nil {
		return nil, classify("products", err)
	}
	return out, nil
}

func (s *PostgresSource) Customers(ctx context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, 16)

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &out, `
			SELECT name, id, address
			FROM customers
			ORDER BY id ASC
		`)
	})
	if err != nil {
		return nil, classify("customers", err)
	}
	return out, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

func classify(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return fmt.Errorf("%w: %s", ErrSeedTableMissing, table)
	}
	return err
}
