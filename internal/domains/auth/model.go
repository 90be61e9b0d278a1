package auth

import "time"

// User is an account allowed to sign in; maps to the users table.
type User struct {
	ID                    int64
	Username              string
	FullName              string
	PasswordHash          string
	AccountNonExpired     bool
	AccountNonLocked      bool
	CredentialsNonExpired bool
	Enabled               bool
	CreatedAt             time.Time
}

// CanSignIn reports whether every account flag allows authentication.
func (u *User) CanSignIn() bool {
	return u.Enabled && u.AccountNonExpired && u.AccountNonLocked && u.CredentialsNonExpired
}

// RefreshTokenKey is the cache key under which a user's current refresh token lives.
func RefreshTokenKey(username string) string {
	return "auth:refresh:" + username
}
