package models

import "time"

// User models a registered StreamVault account. The password hash never
// leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session binds a bearer token to a user for its validity window.
type Session struct {
	Token     string    `json:"-"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry relative to now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
