package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

type accountsRepo struct {
	db DBTX
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	var (
		a         domain.Account
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT email, password_hash, blocked, created_at FROM accounts WHERE email = ?`,
		email,
	).Scan(&a.Email, &a.PasswordHash, &a.Blocked, &createdAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.CreatedAt = fromUnix(createdAt)
	return a, nil
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password_hash, blocked, created_at) VALUES (?, ?, ?, ?)`,
		a.Email, a.PasswordHash, a.Blocked, toUnix(a.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) ListExisting(ctx context.Context, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT email FROM accounts WHERE email IN (`+placeholders(len(emails))+`)`,
		stringArgs(emails)...,
	)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
