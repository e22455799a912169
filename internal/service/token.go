package service

import "github.com/google/uuid"

// TokenSource mints opaque session tokens. Injectable so tests can supply
// deterministic tokens.
type TokenSource interface {
	NewToken() string
}

// UUIDTokenSource issues random 128-bit UUID tokens.
type UUIDTokenSource struct{}

func (UUIDTokenSource) NewToken() string {
	return uuid.NewString()
}
