package models

// User is a registered account. Created once at sign-up, immutable afterwards.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // never serialized
}

// Session binds an opaque bearer token to a user. One row per sign-in,
// removed at sign-out, no expiry.
type Session struct {
	Token  string `json:"token"`
	UserID int    `json:"user_id"`
}
