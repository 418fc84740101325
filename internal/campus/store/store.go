package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are exposed as methods so a Tx-scoped store
// can hand out the same repositories bound to the transaction.
type Store interface {
	Accounts() Accounts
	Profiles() Profiles
	Messages() Messages
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. A non-nil error from fn rolls
	// the transaction back, otherwise it is committed. Inside fn only the
	// passed Tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
// Repositories of a Tx are safe for concurrent use.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetByEmail returns the account with an exact email match.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// Create inserts a new account. Returns ErrAlreadyExists for a taken email.
	Create(ctx context.Context, a domain.Account) error

	// ListExisting returns the subset of emails that belong to an account.
	ListExisting(ctx context.Context, emails []string) ([]string, error)
}

type Profiles interface {
	GetByEmail(ctx context.Context, email string) (domain.Profile, error)

	// Create inserts the profile for p.Email and returns its id.
	Create(ctx context.Context, p domain.Profile) (int64, error)

	// Update rewrites every field of the profile for p.Email. When p.ProfilePic
	// is empty the stored picture is kept. Returns ErrNotFound when no row matched.
	Update(ctx context.Context, p domain.Profile) error

	// ListByYear returns the profiles of one cohort ordered by name.
	ListByYear(ctx context.Context, year string) ([]domain.Profile, error)

	// ListEmailsExcept returns the email of every profile but the given one.
	ListEmailsExcept(ctx context.Context, email string) ([]string, error)
}

type Messages interface {
	// Create stores one message and returns its id.
	Create(ctx context.Context, m domain.Message) (int64, error)

	// Conversation returns every message exchanged in either direction between
	// email and any of others, newest first.
	Conversation(ctx context.Context, email string, others []string) ([]domain.Message, error)
}

type Sessions interface {
	Create(ctx context.Context, s domain.SessionRecord) error

	// GetByTokenHash returns the session whether or not it has expired.
	GetByTokenHash(ctx context.Context, hash string) (domain.SessionRecord, error)

	DeleteByTokenHash(ctx context.Context, hash string) error

	// DeleteExpired removes sessions expired before now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
