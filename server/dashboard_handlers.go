package server

import (
	"net/http"

	"github.com/victorucama-create/nexasuite-erp/erp"
)

// DashboardHandler aggregates the headline figures shown on the home screen
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Data:    erp.Dashboard(),
		})
	}
}
