package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"CornerStore/internal/store"
	"CornerStore/pkg/kit"
)

type cartQuantityReq struct {
	Quantity int `json:"quantity"`
}

type checkoutReq struct {
	CustomerID string `json:"customer_id"`
}

func (s *Server) getCart(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.CartContents())
}

// setCartQuantity only accepts codes present in the catalog. Stock is not
// checked.
func (s *Server) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartQuantityReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.badJSON(w, r, err)
		return
	}
	if req.Quantity <= 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "quantity must be greater than zero", nil)
		return
	}

	if err := s.Store.AddToCart(chi.URLParam(r, "code"), req.Quantity); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, store.MsgCartUpdated, s.Store.CartContents())
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.RemoveFromCart(chi.URLParam(r, "code")); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, store.MsgCartRemoved, s.Store.CartContents())
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.ClearCart(); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, store.MsgCartCleared, nil)
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.badJSON(w, r, err)
		return
	}

	id := strings.TrimSpace(req.CustomerID)
	if id == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "select a customer", nil)
		return
	}

	sale, err := s.Store.CheckoutCart(id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusCreated, store.MsgSaleRecorded, sale)
}

func (s *Server) listSales(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.SalesByDateDescending())
}

func (s *Server) getSale(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	sale, ok := s.Store.FindSale(code)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, store.MsgSaleNotFound, map[string]any{"code": code})
		return
	}
	kit.WriteJSON(w, http.StatusOK, sale)
}
