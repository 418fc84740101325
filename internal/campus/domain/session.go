package domain

import "time"

// SessionRecord is a persisted session keyed by the fingerprint of its
// cookie token. The raw token is never stored.
type SessionRecord struct {
	TokenHash string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s SessionRecord) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
