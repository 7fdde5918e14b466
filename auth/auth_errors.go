package auth

import "errors"

var (
	InvalidCredentialsErr  = errors.New("invalid credentials")
	InvalidRefreshTokenErr = errors.New("invalid refresh token")
	UserNotFoundErr        = errors.New("user not found")
)
