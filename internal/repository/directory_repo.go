package repository

import "duttmandir/internal/models"

// StaticDirectory holds the fixed credential entries loaded at startup.
// Lookups are exact-match on email (case-sensitive) and secret.
type StaticDirectory struct {
	entries []models.CredentialEntry
}

// NewStaticDirectory copies seed so later mutation of the caller's slice
// cannot reach the directory. An empty seed falls back to the defaults.
func NewStaticDirectory(seed []models.CredentialEntry) *StaticDirectory {
	if len(seed) == 0 {
		seed = SeedEntries()
	}
	entries := make([]models.CredentialEntry, len(seed))
	copy(entries, seed)
	return &StaticDirectory{entries: entries}
}

var _ Directory = (*StaticDirectory)(nil)

// SeedEntries returns the built-in directory: one admin, one regular user.
func SeedEntries() []models.CredentialEntry {
	return []models.CredentialEntry{
		{
			Identity: models.Identity{
				ID:     1,
				Name:   "Admin User",
				Email:  "admin@duttmandir.com",
				Role:   models.RoleAdmin,
				Avatar: "/admin-avatar.png",
			},
			Secret: "admin123",
		},
		{
			Identity: models.Identity{
				ID:     2,
				Name:   "Temple User",
				Email:  "user@duttmandir.com",
				Role:   models.RoleUser,
				Avatar: "/user-avatar.png",
			},
			Secret: "user123",
		},
	}
}

// FindByEmail returns the entry with the given email, or nil.
func (d *StaticDirectory) FindByEmail(email string) *models.CredentialEntry {
	for i := range d.entries {
		if d.entries[i].Email == email {
			e := d.entries[i]
			return &e
		}
	}
	return nil
}

// Authenticate returns the entry matching both email and secret, or nil.
func (d *StaticDirectory) Authenticate(email, secret string) *models.CredentialEntry {
	for i := range d.entries {
		if d.entries[i].Email == email && d.entries[i].Secret == secret {
			e := d.entries[i]
			return &e
		}
	}
	return nil
}

// Size reports the number of directory entries.
func (d *StaticDirectory) Size() int {
	return len(d.entries)
}
