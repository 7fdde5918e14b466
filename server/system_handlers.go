package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/victorucama-create/nexasuite-erp/erp"
	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
)

// ListUsersHandler returns the registered accounts. Password hashes never
// serialise, so the listing is safe to expose to administrators.
func (s *Server) ListUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := s.users.List()
		if err != nil {
			log.Err(err).Msg("Failed to list users")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusOK, envelope{Success: true, Data: accounts})
	}
}

func (s *Server) GetGeneralSettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := s.data.Settings.GetGeneral()
		if err != nil {
			log.Err(err).Msg("Failed to load general settings")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusOK, envelope{Success: true, Data: settings})
	}
}

// UpdateGeneralSettingsHandler replaces the company-wide configuration block
func (s *Server) UpdateGeneralSettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings erp.GeneralSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			writeError(w, interrors.KindBadRequest, "")
			return
		}

		if err := s.data.Settings.UpdateGeneral(settings); err != nil {
			log.Err(err).Msg("Failed to update general settings")
			writeError(w, interrors.KindServerFault, "")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Message: "Configurações atualizadas com sucesso",
			Data:    settings,
		})
	}
}
