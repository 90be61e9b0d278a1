package memstore

import (
	"context"
	"time"

	"library-backend/internal/domains/auth"
)

// UserRepository is an in-memory auth.Repository with unique usernames.
type UserRepository struct {
	*table[auth.User]
}

var _ auth.Repository = (*UserRepository)(nil)

// NewUserRepository stores seed; users without an id are numbered from 1.
func NewUserRepository(seed ...auth.User) *UserRepository {
	for i := range seed {
		if seed[i].ID == 0 {
			seed[i].ID = int64(i + 1)
		}
	}
	return &UserRepository{newTable(
		func(u auth.User) int64 { return u.ID },
		func(u *auth.User, id int64) { u.ID = id },
		nil,
		auth.ErrUserNotFound,
		seed,
	)}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	r.reads.Add(1)
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.rows {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, u *auth.User) error {
	r.writes.Add(1)
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rows {
		if existing.Username == u.Username {
			return auth.ErrUserExists
		}
	}

	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.rows[u.ID] = *u
	return nil
}
