package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"CornerStore/internal/model"
	"CornerStore/internal/store"
	"CornerStore/pkg/kit"
)

type customerReq struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Address string `json:"address"`
}

func (c customerReq) customer() model.Customer {
	return model.Customer{
		Name:    strings.TrimSpace(c.Name),
		ID:      strings.TrimSpace(c.ID),
		Address: strings.TrimSpace(c.Address),
	}
}

type editCustomerReq struct {
	Previous customerReq `json:"previous"`
	Updated  customerReq `json:"updated"`
}

func (s *Server) listCustomers(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.Customers())
}

func (s *Server) customerNames(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.CustomerNames())
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := s.Store.FindCustomer(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) customerSales(w http.ResponseWriter, r *http.Request) {
	sales, err := s.Store.CustomerSales(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, sales)
}

func (s *Server) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.badJSON(w, r, err)
		return
	}

	c := req.customer()
	if !complete(c) {
		kit.WriteError(w, r, http.StatusBadRequest, "name, id and address are required", nil)
		return
	}

	if err := s.Store.AddCustomer(c); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusCreated, store.MsgCustomerAdded, c)
}

func (s *Server) editCustomer(w http.ResponseWriter, r *http.Request) {
	var req editCustomerReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.badJSON(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	previous := model.Customer{Name: req.Previous.Name, ID: req.Previous.ID, Address: req.Previous.Address}
	if previous.ID != id {
		kit.WriteError(w, r, http.StatusBadRequest, "previous.id must match the path", map[string]any{"id": id})
		return
	}

	updated := req.Updated.customer()
	if !complete(updated) {
		kit.WriteError(w, r, http.StatusBadRequest, "name, id and address are required", nil)
		return
	}
	if updated.Equal(previous) {
		kit.WriteError(w, r, http.StatusBadRequest, store.MsgCustomerUnchanged, nil)
		return
	}

	if err := s.Store.EditCustomer(updated, previous); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, store.MsgCustomerEdited, updated)
}

func (s *Server) removeCustomer(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.RemoveCustomer(chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, store.MsgCustomerRemoved, nil)
}

func complete(c model.Customer) bool {
	return c.Name != "" && c.ID != "" && c.Address != ""
}
