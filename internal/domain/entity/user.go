// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the account that owns contacts. The username is its immutable key.
type User struct {
	Username       string // Unique login name, never changes after registration.
	Password       string // bcrypt hash of the user's password.
	Name           string // Display name.
	Token          string // Current session token, empty when logged out.
	TokenExpiredAt int64  // Token expiry in epoch milliseconds, zero when logged out.
}

// IssueToken stores a freshly generated token valid until now+ttl.
func (u *User) IssueToken(token string, now time.Time, ttl time.Duration) {
	u.Token = token
	u.TokenExpiredAt = now.Add(ttl).UnixMilli()
}

// ClearToken drops the session token and its expiry together.
func (u *User) ClearToken() {
	u.Token = ""
	u.TokenExpiredAt = 0
}

// HasToken reports whether the user currently holds a session token.
func (u *User) HasToken() bool {
	return u.Token != "" && u.TokenExpiredAt != 0
}

// IsTokenExpired reports whether the token expiry lies strictly before now.
func (u *User) IsTokenExpired(now time.Time) bool {
	return u.TokenExpiredAt < now.UnixMilli()
}
