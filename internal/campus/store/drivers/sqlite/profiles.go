package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type profilesRepo struct {
	db DBTX
}

const profileColumns = `id, email, name, degree, year, project, project_date, old_project, profile_pic, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (domain.Profile, error) {
	var (
		p                    domain.Profile
		pic                  sql.NullString
		createdAt, updatedAt int64
	)
	err := row.Scan(&p.ID, &p.Email, &p.Name, &p.Degree, &p.Year, &p.Project,
		&p.ProjectDate, &p.OldProject, &pic, &createdAt, &updatedAt)
	if err != nil {
		return domain.Profile{}, err
	}
	p.ProfilePic = mapNullString(pic)
	p.CreatedAt = fromUnix(createdAt)
	p.UpdatedAt = fromUnix(updatedAt)
	return p, nil
}

func (r *profilesRepo) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = ?`, email))
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) Create(ctx context.Context, p domain.Profile) (int64, error) {
	now := toUnix(time.Now())
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (email, name, degree, year, project, project_date, old_project, profile_pic, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Email, p.Name, p.Degree, p.Year, p.Project, p.ProjectDate, p.OldProject,
		mapStringNull(p.ProfilePic), now, now,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *profilesRepo) Update(ctx context.Context, p domain.Profile) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles
		    SET name = ?, degree = ?, year = ?, project = ?, project_date = ?, old_project = ?,
		        profile_pic = COALESCE(?, profile_pic), updated_at = ?
		  WHERE email = ?`,
		p.Name, p.Degree, p.Year, p.Project, p.ProjectDate, p.OldProject,
		mapStringNull(p.ProfilePic), toUnix(time.Now()), p.Email,
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
		`SELECT `+profileColumns+` FROM profiles WHERE year = ? ORDER BY name, id`, year)
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
		`SELECT email FROM profiles WHERE email <> ? ORDER BY email`, email)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}
