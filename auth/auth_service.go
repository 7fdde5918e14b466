package auth

import (
	"time"

	"github.com/pkg/errors"
	"github.com/victorucama-create/nexasuite-erp/token"
	"github.com/victorucama-create/nexasuite-erp/users"
)

// Service checks credentials and exchanges refresh tokens for new pairs.
type Service struct {
	users   users.Repo       // Repository for user data
	tokens  *token.Manager   // Create and verify token pairs
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// NewService initializes a new Service with required dependencies.
func NewService(userRepo users.Repo, tokenManager *token.Manager, options ...ServiceOption) (*Service, error) {
	if userRepo == nil {
		return nil, errors.New("[NewService] user repo is required")
	}
	if tokenManager == nil {
		return nil, errors.New("[NewService] token manager is required")
	}

	service := &Service{
		users:   userRepo,
		tokens:  tokenManager,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// Login checks the credentials and mints a token pair on an exact match.
// Any mismatch, including an unknown email, returns InvalidCredentialsErr
// without revealing which part was wrong.
func (s *Service) Login(email, password string) (*users.User, *token.Pair, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, nil, InvalidCredentialsErr
	}

	if !users.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil, InvalidCredentialsErr
	}

	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[Service.Login] GeneratePair")
	}

	user.LastLogin = s.nowTime()

	return user, pair, nil
}

// Refresh verifies a refresh token and mints a new pair bound to the same
// subject. The submitted refresh token is not invalidated; it stays usable
// until its own expiry.
func (s *Service) Refresh(refreshToken string) (*token.Pair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, InvalidRefreshTokenErr
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, UserNotFoundErr
	}

	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Refresh] GeneratePair")
	}

	return pair, nil
}

// Profile returns the identity bound to a verified access token subject.
func (s *Service) Profile(userID int) (*users.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, UserNotFoundErr
	}
	return user, nil
}

// VerifyAccess validates a raw access token and returns its claims.
func (s *Service) VerifyAccess(rawToken string) (*token.AccessClaims, error) {
	return s.tokens.VerifyAccessToken(rawToken)
}
