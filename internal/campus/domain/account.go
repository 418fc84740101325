package domain

import "time"

// Account is a registered identity. Email is the key.
type Account struct {
	Email        string
	PasswordHash string // bcrypt encoded
	Blocked      bool
	CreatedAt    time.Time
}
