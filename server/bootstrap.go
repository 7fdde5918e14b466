package server

import (
	"time"

	"github.com/pkg/errors"
	"github.com/victorucama-create/nexasuite-erp/internal/config"
	"github.com/victorucama-create/nexasuite-erp/users"
)

const (
	defaultAdminEmail    = "admin@nexasuite.com"
	defaultAdminPassword = "Nexa@2025Master!"
)

// initialiseSystem seeds the demo administrator account so a fresh
// deployment can be logged into straight away. The credentials can be
// overridden through the environment for non-demo installs.
func (s *Server) initialiseSystem() error {
	email := config.GetEnv("ADMIN_EMAIL", defaultAdminEmail)
	password := config.GetEnv("ADMIN_PASSWORD", defaultAdminPassword)

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil // already seeded
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "[Server initialiseSystem] failed to hash admin password")
	}

	admin := &users.User{
		Name:         "Super Administrador",
		Email:        email,
		PasswordHash: hash,
		Roles:        []users.RoleType{users.RoleSuperAdmin},
		Permissions:  users.Permissions{"*"},
		Company: users.Company{
			ID:       1,
			Name:     "NexaSuite ERP",
			Plan:     "Professional",
			Currency: "MZN",
			Country:  "MZ",
		},
		Avatar:     "SA",
		DateJoined: time.Now().UTC(),
	}

	if err := s.users.Upsert(admin); err != nil {
		return errors.Wrap(err, "[Server initialiseSystem] failed to seed admin user")
	}
	return nil
}
