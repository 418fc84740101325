// Package session holds server-side login sessions keyed by an opaque
// cookie token.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session: not found")

// Session identifies the caller. It never carries credentials.
type Session struct {
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions by token. Get returns ErrNotFound for unknown or
// expired tokens. Delete of an unknown token is not an error.
type Store interface {
	Get(ctx context.Context, token string) (Session, error)
	Put(ctx context.Context, token string, s Session) error
	Delete(ctx context.Context, token string) error
}

type ctxKey struct{}

func WithContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session resolved by Manager.Middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
