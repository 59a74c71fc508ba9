package repository

import (
	"context"
	"database/sql"

	"duttmandir/internal/models"
)

// SessionRepo persists the single current session record (the serialized
// identity token). At most one record exists per running instance.
type SessionRepo interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Directory is the fixed set of login-capable credential entries.
// Never mutated at runtime; registration does not grow it.
type Directory interface {
	FindByEmail(email string) *models.CredentialEntry
	Authenticate(email, secret string) *models.CredentialEntry
	Size() int
}

type Repository struct {
	Session   SessionRepo
	Directory Directory
}

func NewRepository(db *sql.DB, seed []models.CredentialEntry) *Repository {
	return &Repository{
		Session:   NewSessionSQLite(db),
		Directory: NewStaticDirectory(seed),
	}
}
