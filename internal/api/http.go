package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"CornerStore/internal/model"
	"CornerStore/internal/store"
	"CornerStore/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store *store.Store
	Log   *zap.Logger

	// Ready backs /readyz when set.
	Ready func(ctx context.Context) error
}

func (s *Server) routes(r chi.Router, limit func(http.Handler) http.Handler) {
	r.Get("/products", s.listProducts)
	r.Get("/products/{code}", s.getProduct)

	r.Get("/customers", s.listCustomers)
	r.Get("/customers/names", s.customerNames)
	r.Get("/customers/{id}", s.getCustomer)
	r.Get("/customers/{id}/sales", s.customerSales)

	r.Get("/cart", s.getCart)

	r.Get("/sales", s.listSales)
	r.Get("/sales/{code}", s.getSale)

	r.Group(func(wr chi.Router) {
		wr.Use(limit)

		wr.Post("/products", s.addProduct)
		wr.Put("/products/{code}", s.editProduct)
		wr.Delete("/products/{code}", s.removeProduct)

		wr.Post("/customers", s.addCustomer)
		wr.Put("/customers/{id}", s.editCustomer)
		wr.Delete("/customers/{id}", s.removeCustomer)

		wr.Put("/cart/{code}", s.setCartQuantity)
		wr.Delete("/cart/{code}", s.removeFromCart)
		wr.Delete("/cart", s.clearCart)

		wr.Post("/checkout", s.checkout)
	})
}

var errExtraData = errors.New("extra data after json object")

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errExtraData
	}
	return nil
}

func (s *Server) badJSON(w http.ResponseWriter, r *http.Request, err error) {
	kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
}

// writeStoreError turns a store failure into its status code and one-line
// message.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrDuplicateKey):
		kit.WriteError(w, r, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, model.ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, model.ErrEditFailed):
		kit.WriteError(w, r, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, model.ErrEmptyCart), errors.Is(err, model.ErrInvalidQuantity):
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, model.ErrCodeExhausted):
		s.Log.Error("sale code generation failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, err.Error(), nil)
	case errors.Is(err, model.ErrClearFailed):
		s.Log.Error("cart clear failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, err.Error(), nil)
	default:
		s.Log.Error("store operation failed", zap.Error(err), zap.String("path", r.URL.Path))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
