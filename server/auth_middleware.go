package server

import (
	"context"
	"net/http"
	"strings"

	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
	"github.com/victorucama-create/nexasuite-erp/token"
	"github.com/victorucama-create/nexasuite-erp/users"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUser stores the authenticated user identity
	ContextKeyUser ContextKey = "user"
	// ContextKeyClaims stores the verified access token claims
	ContextKeyClaims ContextKey = "claims"
	// ContextKeyCompanyID stores the organization identifier header value
	ContextKeyCompanyID ContextKey = "company_id"
)

// Request headers consumed by the gate
const (
	HeaderRequestID = "X-Request-ID"
	HeaderCompanyID = "X-Company-Id"
)

// Gate rejection messages, as shipped by the product
const (
	msgMissingCredential = "Token de autenticação não fornecido"
	msgInvalidCredential = "Token inválido ou expirado"
)

// RequireAuth is the authentication gate for API routes. It expects a
// bearer access token, verifies it, and binds the subject's identity to
// the request context.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, interrors.KindMissingCredential, msgMissingCredential)
				return
			}

			rawToken := strings.TrimPrefix(authHeader, "Bearer ")
			if rawToken == "" {
				writeError(w, interrors.KindMissingCredential, msgMissingCredential)
				return
			}

			claims, err := s.auth.VerifyAccess(rawToken)
			if err != nil {
				writeError(w, interrors.KindExpiredOrInvalidCredential, msgInvalidCredential)
				return
			}

			user, err := s.auth.Profile(claims.UserID)
			if err != nil {
				writeError(w, interrors.KindExpiredOrInvalidCredential, msgInvalidCredential)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			ctx = context.WithValue(ctx, ContextKeyClaims, claims)
			if companyID := r.Header.Get(HeaderCompanyID); companyID != "" {
				ctx = context.WithValue(ctx, ContextKeyCompanyID, companyID)
			}
			next(w, r.WithContext(ctx))
		}
	}
}

// RequirePermission rejects authenticated requests whose identity lacks the
// given permission scope. Must be chained after RequireAuth.
func (s *Server) RequirePermission(scope string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil || !user.Permissions.Allows(scope) {
				writeError(w, interrors.KindForbidden, "")
				return
			}
			next(w, r)
		}
	}
}

// UserFromContext returns the identity bound by RequireAuth, or nil
func UserFromContext(ctx context.Context) *users.User {
	user, _ := ctx.Value(ContextKeyUser).(*users.User)
	return user
}

// ClaimsFromContext returns the verified claims bound by RequireAuth, or nil
func ClaimsFromContext(ctx context.Context) *token.AccessClaims {
	claims, _ := ctx.Value(ContextKeyClaims).(*token.AccessClaims)
	return claims
}
