package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type accountsRepo struct {
	db DBTX
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT email, password_hash, blocked, created_at FROM accounts WHERE email = $1`,
		email,
	).Scan(&a.Email, &a.PasswordHash, &a.Blocked, &a.CreatedAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password_hash, blocked, created_at) VALUES ($1, $2, $3, $4)`,
		a.Email, a.PasswordHash, a.Blocked, a.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *accountsRepo) ListExisting(ctx context.Context, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT email FROM accounts WHERE email IN (`+placeholders(1, len(emails))+`)`,
		stringArgs(emails)...,
	)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

type profilesRepo struct {
	db DBTX
}

const profileColumns = `id, email, name, degree, year, project, project_date, old_project, profile_pic, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (domain.Profile, error) {
	var (
		p   domain.Profile
		pic sql.NullString
	)
	err := row.Scan(&p.ID, &p.Email, &p.Name, &p.Degree, &p.Year, &p.Project,
		&p.ProjectDate, &p.OldProject, &pic, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, err
	}
	p.ProfilePic = mapNullString(pic)
	return p, nil
}

func (r *profilesRepo) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email))
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) Create(ctx context.Context, p domain.Profile) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO profiles (email, name, degree, year, project, project_date, old_project, profile_pic)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		p.Email, p.Name, p.Degree, p.Year, p.Project, p.ProjectDate, p.OldProject, mapStringNull(p.ProfilePic),
	).Scan(&id)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *profilesRepo) Update(ctx context.Context, p domain.Profile) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles
		    SET name = $1, degree = $2, year = $3, project = $4, project_date = $5, old_project = $6,
		        profile_pic = COALESCE($7, profile_pic), updated_at = now()
		  WHERE email = $8`,
		p.Name, p.Degree, p.Year, p.Project, p.ProjectDate, p.OldProject, mapStringNull(p.ProfilePic), p.Email,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *profilesRepo) ListByYear(ctx context.Context, year string) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE year = $1 ORDER BY name, id`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profilesRepo) ListEmailsExcept(ctx context.Context, email string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT email FROM profiles WHERE email <> $1 ORDER BY email`, email)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

type messagesRepo struct {
	db DBTX
}

func (r *messagesRepo) Create(ctx context.Context, m domain.Message) (int64, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO messages (sender_email, receiver_email, text, image, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		m.SenderEmail, m.ReceiverEmail, m.Text, mapStringNull(m.Image), m.CreatedAt,
	).Scan(&id)
	return id, err
}

func (r *messagesRepo) Conversation(ctx context.Context, email string, others []string) ([]domain.Message, error) {
	if len(others) == 0 {
		return nil, nil
	}

	// $1 is the email, $2.. the counterparts; both directions reuse them.
	in := placeholders(2, len(others))
	args := append([]any{email}, stringArgs(others)...)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sender_email, receiver_email, text, image, created_at
		   FROM messages
		  WHERE (sender_email = $1 AND receiver_email IN (`+in+`))
		     OR (receiver_email = $1 AND sender_email IN (`+in+`))
		  ORDER BY created_at DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var (
			m     domain.Message
			image sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.SenderEmail, &m.ReceiverEmail, &m.Text, &image, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Image = mapNullString(image)
		out = append(out, m)
	}
	return out, rows.Err()
}

type sessionsRepo struct {
	db DBTX
}

func (r *sessionsRepo) Create(ctx context.Context, s domain.SessionRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token_hash, email, created_at, expires_at) VALUES ($1, $2, $3, $4)`,
		s.TokenHash, s.Email, s.CreatedAt, s.ExpiresAt,
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetByTokenHash(ctx context.Context, hash string) (domain.SessionRecord, error) {
	var s domain.SessionRecord
	err := r.db.QueryRowContext(ctx,
		`SELECT token_hash, email, created_at, expires_at FROM sessions WHERE token_hash = $1`, hash,
	).Scan(&s.TokenHash, &s.Email, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return domain.SessionRecord{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) DeleteByTokenHash(ctx context.Context, hash string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = $1`, hash)
	return err
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
