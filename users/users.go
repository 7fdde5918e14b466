package users

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// RoleType represents a user role
type RoleType string

const (
	RoleSuperAdmin RoleType = "SUPER_ADMIN" // Full access to every module
	RoleAdmin      RoleType = "ADMIN"       // Company-level administration
	RoleManager    RoleType = "MANAGER"     // Module management
	RoleOperator   RoleType = "OPERATOR"    // Day-to-day operations
	RoleViewer     RoleType = "VIEWER"      // Read-only access
)

// Company is the organization context a user operates under
type Company struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Plan     string `json:"plan,omitempty"`
	Currency string `json:"currency,omitempty"`
	Country  string `json:"country,omitempty"`
}

type User struct {
	ID           int         `json:"id"`                    // Unique identifier for the user
	Name         string      `json:"name"`                  // Display name
	Email        string      `json:"email"`                 // User's email address
	PasswordHash string      `json:"-"`                     // Hashed version of the user's password - never serialize
	Roles        []RoleType  `json:"roles,omitempty"`       // Assigned roles
	Permissions  Permissions `json:"permissions,omitempty"` // Granted permission scopes
	Company      Company     `json:"company,omitempty"`     // Organization context
	Avatar       string      `json:"avatar,omitempty"`      // Short avatar label
	DateJoined   time.Time   `json:"date_joined,omitempty"` // Date and time when the user registered
	LastLogin    time.Time   `json:"last_login,omitempty"`  // Last time the user logged in
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// HasRole checks if the user has a specific role
func (u *User) HasRole(role RoleType) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsSuperAdmin returns true if the user has super admin privileges
func (u *User) IsSuperAdmin() bool {
	return u.HasRole(RoleSuperAdmin)
}

// RoleStrings returns the user's roles as plain strings, as encoded in
// token claims.
func (u *User) RoleStrings() []string {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return roles
}
