package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"CornerStore/internal/model"
	"CornerStore/internal/store"
	"CornerStore/pkg/kit"
)

type editProductReq struct {
	Previous model.Product `json:"previous"`
	Updated  model.Product `json:"updated"`
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.LowStockView())
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.Store.FindProduct(chi.URLParam(r, "code"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := decodeJSON(w, r, &p); err != nil {
		s.badJSON(w, r, err)
		return
	}
	p = normalizeProduct(p)
	if msg := validateProduct(p); msg != "" {
		kit.WriteError(w, r, http.StatusBadRequest, msg, nil)
		return
	}

	if err := s.Store.AddProduct(p); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusCreated, store.MsgProductAdded, p)
}

func (s *Server) editProduct(w http.ResponseWriter, r *http.Request) {
	var req editProductReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.badJSON(w, r, err)
		return
	}

	code := chi.URLParam(r, "code")
	if req.Previous.Code != code {
		kit.WriteError(w, r, http.StatusBadRequest, "previous.code must match the path", map[string]any{"code": code})
		return
	}

	updated := normalizeProduct(req.Updated)
	if msg := validateProduct(updated); msg != "" {
		kit.WriteError(w, r, http.StatusBadRequest, msg, nil)
		return
	}
	if updated.Equal(req.Previous) {
		kit.WriteError(w, r, http.StatusBadRequest, store.MsgProductUnchanged, nil)
		return
	}

	if err := s.Store.EditProduct(updated, req.Previous); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, store.MsgProductEdited, updated)
}

func (s *Server) removeProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.RemoveProduct(chi.URLParam(r, "code")); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, store.MsgProductRemoved, nil)
}

func normalizeProduct(p model.Product) model.Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.TrimSpace(p.Code)
	return p
}

func validateProduct(p model.Product) string {
	switch {
	case p.Name == "" || p.Code == "":
		return "name and code are required"
	case p.Price.IsNegative():
		return "price must not be negative"
	case p.InventoryQuantity < 0:
		return "inventory_quantity must not be negative"
	}
	return ""
}
