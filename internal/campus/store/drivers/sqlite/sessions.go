package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

type sessionsRepo struct {
	db DBTX
}

func (r *sessionsRepo) Create(ctx context.Context, s domain.SessionRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token_hash, email, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		s.TokenHash, s.Email, toUnix(s.CreatedAt), toUnix(s.ExpiresAt),
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetByTokenHash(ctx context.Context, hash string) (domain.SessionRecord, error) {
	var (
		s                    domain.SessionRecord
		createdAt, expiresAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT token_hash, email, created_at, expires_at FROM sessions WHERE token_hash = ?`, hash,
	).Scan(&s.TokenHash, &s.Email, &createdAt, &expiresAt)
	if err != nil {
		return domain.SessionRecord{}, mapNotFound(err)
	}
	s.CreatedAt = fromUnix(createdAt)
	s.ExpiresAt = fromUnix(expiresAt)
	return s, nil
}

func (r *sessionsRepo) DeleteByTokenHash(ctx context.Context, hash string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = ?`, hash)
	return err
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, toUnix(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
