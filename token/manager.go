package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
	"github.com/victorucama-create/nexasuite-erp/users"
)

// Token type discriminators. Access and refresh tokens are signed with
// different secrets and carry a "typ" claim, so neither can ever pass
// verification in the other's domain.
const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// Pair is a freshly minted access/refresh token couple
type Pair struct {
	AccessToken      string    `json:"token"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
}

// AccessClaims are the verified contents of an access token
type AccessClaims struct {
	UserID    int
	Email     string
	Roles     []string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RefreshClaims are the verified contents of a refresh token
type RefreshClaims struct {
	UserID    int
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Manager issues and verifies access and refresh tokens
type Manager struct {
	accessSigner  Signer
	refreshSigner Signer
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	nowFunc       func() time.Time
}

type ManagerOption func(*Manager)

func WithTokenExpiry(accessExpiry, refreshExpiry time.Duration) ManagerOption {
	return func(m *Manager) {
		m.accessExpiry = accessExpiry
		m.refreshExpiry = refreshExpiry
	}
}

func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

func WithIssuer(issuer string) ManagerOption {
	return func(m *Manager) {
		m.issuer = issuer
	}
}

func New(accessSigner, refreshSigner Signer, options ...ManagerOption) *Manager {
	m := &Manager{
		accessSigner:  accessSigner,
		refreshSigner: refreshSigner,
		issuer:        "nexasuite-erp",
	}

	for _, opt := range options {
		opt(m)
	}

	if m.accessExpiry == 0 {
		m.accessExpiry = 24 * time.Hour
	}
	if m.refreshExpiry == 0 {
		m.refreshExpiry = 7 * 24 * time.Hour
	}
	if m.nowFunc == nil {
		m.nowFunc = time.Now
	}
	return m
}

// GeneratePair mints a new access/refresh token pair for the user
func (m *Manager) GeneratePair(user *users.User) (*Pair, error) {
	now := m.nowFunc()
	accessExpiresAt := now.Add(m.accessExpiry)
	refreshExpiresAt := now.Add(m.refreshExpiry)

	accessToken, err := m.accessSigner.Sign(jwt.MapClaims{
		"iss":   m.issuer,
		"sub":   strconv.Itoa(user.ID),
		"email": user.Email,
		"roles": user.RoleStrings(),
		"typ":   typeAccess,
		"iat":   now.Unix(),
		"exp":   accessExpiresAt.Unix(),
		"jti":   uuid.New().String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Manager.GeneratePair access token")
	}

	refreshToken, err := m.refreshSigner.Sign(jwt.MapClaims{
		"iss": m.issuer,
		"sub": strconv.Itoa(user.ID),
		"typ": typeRefresh,
		"iat": now.Unix(),
		"exp": refreshExpiresAt.Unix(),
		"jti": uuid.New().String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Manager.GeneratePair refresh token")
	}

	return &Pair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// VerifyAccessToken parses and validates an access token
func (m *Manager) VerifyAccessToken(rawToken string) (*AccessClaims, error) {
	claims, err := m.verify(rawToken, m.accessSigner, typeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := subjectID(claims)
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	jti, _ := claims["jti"].(string)

	var roles []string
	if claimRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range claimRoles {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	return &AccessClaims{
		UserID:    userID,
		Email:     email,
		Roles:     roles,
		TokenID:   jti,
		IssuedAt:  time.Unix(int64(iat), 0),
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}

// VerifyRefreshToken parses and validates a refresh token
func (m *Manager) VerifyRefreshToken(rawToken string) (*RefreshClaims, error) {
	claims, err := m.verify(rawToken, m.refreshSigner, typeRefresh)
	if err != nil {
		return nil, err
	}

	userID, err := subjectID(claims)
	if err != nil {
		return nil, err
	}

	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	jti, _ := claims["jti"].(string)

	return &RefreshClaims{
		UserID:    userID,
		TokenID:   jti,
		IssuedAt:  time.Unix(int64(iat), 0),
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}

func (m *Manager) verify(rawToken string, signer Signer, wantType string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(rawToken, signer.GetVerificationKey,
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(m.nowFunc),
	)
	if err != nil || !parsed.Valid {
		return nil, interrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, interrors.ErrInvalidToken
	}

	if typ, _ := claims["typ"].(string); typ != wantType {
		return nil, interrors.ErrInvalidToken
	}

	return claims, nil
}

func subjectID(claims jwt.MapClaims) (int, error) {
	sub, _ := claims["sub"].(string)
	userID, err := strconv.Atoi(sub)
	if err != nil {
		return 0, interrors.ErrInvalidToken
	}
	return userID, nil
}
