package server

import (
	"encoding/json"
	"net/http"

	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
	"github.com/victorucama-create/nexasuite-erp/users"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success      bool        `json:"success"`
	User         *users.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
}

// LoginHandler checks the submitted credentials and issues a token pair.
// Any mismatch yields the same 401 body regardless of which field was wrong.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, interrors.KindBadRequest, "")
			return
		}

		user, pair, err := s.auth.Login(req.Email, req.Password)
		if err != nil {
			writeError(w, interrors.KindInvalidCredentials, "Credenciais inválidas")
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Success:      true,
			User:         user,
			Token:        pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshHandler exchanges a valid refresh token for a new pair
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
			writeError(w, interrors.KindMissingCredential, "Token não fornecido")
			return
		}

		pair, err := s.auth.Refresh(req.RefreshToken)
		if err != nil {
			writeError(w, interrors.KindExpiredOrInvalidCredential, "Refresh token inválido")
			return
		}

		writeJSON(w, http.StatusOK, refreshResponse{
			Success:      true,
			Token:        pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}

type meResponse struct {
	Success bool        `json:"success"`
	User    *users.User `json:"user"`
}

// MeHandler returns the identity bound to the access token
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, meResponse{
			Success: true,
			User:    UserFromContext(r.Context()),
		})
	}
}

// LogoutHandler acknowledges a logout. Tokens are stateless; the session
// itself lives client-side and is destroyed there.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Message: "Sessão encerrada com sucesso",
		})
	}
}
