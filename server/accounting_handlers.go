package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/victorucama-create/nexasuite-erp/erp"
	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
)

// ListTransactionsHandler returns a paginated ledger slice, optionally
// narrowed by type and date range.
func (s *Server) ListTransactionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageParams(r)
		filter := erp.TransactionFilter{
			Type:      r.URL.Query().Get("type"),
			StartDate: r.URL.Query().Get("startDate"),
			EndDate:   r.URL.Query().Get("endDate"),
		}

		transactions, pagination, err := s.data.Transactions.List(filter, page, limit)
		if err != nil {
			log.Err(err).Msg("Failed to list transactions")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			Success:    true,
			Data:       transactions,
			Pagination: &pagination,
		})
	}
}

// CreateTransactionHandler records a new ledger entry
func (s *Server) CreateTransactionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tx erp.Transaction
		if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
			writeError(w, interrors.KindBadRequest, "")
			return
		}

		if err := s.data.Transactions.Create(&tx); err != nil {
			log.Err(err).Msg("Failed to create transaction")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusCreated, envelope{
			Success: true,
			Message: "Transação criada com sucesso",
			Data:    tx,
		})
	}
}

// ListAccountsHandler returns the chart of accounts
func (s *Server) ListAccountsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := s.data.Accounts.List()
		if err != nil {
			log.Err(err).Msg("Failed to list accounts")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusOK, envelope{Success: true, Data: accounts})
	}
}

func (s *Server) BalanceSheetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Data:    erp.ReportBalanceSheet(),
		})
	}
}

func (s *Server) IncomeStatementHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Data:    erp.ReportIncomeStatement(),
		})
	}
}
