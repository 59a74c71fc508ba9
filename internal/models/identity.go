package models

// Role is the authorization role carried by an identity.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Identity is a user's public profile. It never carries a secret.
type Identity struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// CredentialEntry is a single login-capable record in the fixed directory.
// The secret is compared byte-for-byte on login and is never serialized.
type CredentialEntry struct {
	Identity `mapstructure:",squash"`
	Secret   string `json:"-" mapstructure:"secret"`
}
