package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/victorucama-create/nexasuite-erp/erp"
	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
)

// ListCustomersHandler returns a paginated customer listing, optionally
// narrowed by status or a free-text search over name and email.
func (s *Server) ListCustomersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageParams(r)
		filter := erp.CustomerFilter{
			Status: r.URL.Query().Get("status"),
			Search: r.URL.Query().Get("search"),
		}

		customers, pagination, err := s.data.Customers.List(filter, page, limit)
		if err != nil {
			log.Err(err).Msg("Failed to list customers")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			Success:    true,
			Data:       customers,
			Pagination: &pagination,
		})
	}
}

// CreateCustomerHandler registers a new customer
func (s *Server) CreateCustomerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var customer erp.Customer
		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			writeError(w, interrors.KindBadRequest, "")
			return
		}

		if err := s.data.Customers.Create(&customer); err != nil {
			log.Err(err).Msg("Failed to create customer")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusCreated, envelope{
			Success: true,
			Message: "Cliente criado com sucesso",
			Data:    customer,
		})
	}
}

// ListSalesHandler returns every recorded sale
func (s *Server) ListSalesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := s.data.Sales.List()
		if err != nil {
			log.Err(err).Msg("Failed to list sales")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusOK, envelope{Success: true, Data: sales})
	}
}

// CreateSaleHandler records a point-of-sale transaction
func (s *Server) CreateSaleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sale erp.Sale
		if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
			writeError(w, interrors.KindBadRequest, "")
			return
		}

		if err := s.data.Sales.Create(&sale); err != nil {
			log.Err(err).Msg("Failed to create sale")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusCreated, envelope{
			Success: true,
			Message: "Venda realizada com sucesso",
			Data:    sale,
		})
	}
}

// ListProductsHandler returns the inventory, optionally limited to items
// at or below their minimum stock level.
func (s *Server) ListProductsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lowStockOnly := r.URL.Query().Get("lowStock") == "true"

		products, err := s.data.Products.List(lowStockOnly)
		if err != nil {
			log.Err(err).Msg("Failed to list products")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusOK, envelope{Success: true, Data: products})
	}
}
