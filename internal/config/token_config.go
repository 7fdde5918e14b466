package config

import (
	"time"
)

type TokenConfig interface {
	GetAccessTokenSecret() string
	GetRefreshTokenSecret() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetAccessTokenSecret() string {
	return GetEnv("JWT_SECRET", "your-secret-key")
}

func (Tokens) GetRefreshTokenSecret() string {
	return GetEnv("JWT_REFRESH_SECRET", "your-refresh-secret-key")
}

func (Tokens) GetAccessTokenExpiry() time.Duration {
	return durationEnv("JWT_EXPIRY", 24*time.Hour)
}

func (Tokens) GetRefreshTokenExpiry() time.Duration {
	return durationEnv("JWT_REFRESH_EXPIRY", 7*24*time.Hour)
}

func durationEnv(envVar string, defaultValue time.Duration) time.Duration {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
