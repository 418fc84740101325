package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

type messagesRepo struct {
	db DBTX
}

func (r *messagesRepo) Create(ctx context.Context, m domain.Message) (int64, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (sender_email, receiver_email, text, image, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.SenderEmail, m.ReceiverEmail, m.Text, mapStringNull(m.Image), toUnix(m.CreatedAt),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *messagesRepo) Conversation(ctx context.Context, email string, others []string) ([]domain.Message, error) {
	if len(others) == 0 {
		return nil, nil
	}

	in := placeholders(len(others))
	args := make([]any, 0, 2*len(others)+2)
	args = append(args, email)
	args = append(args, stringArgs(others)...)
	args = append(args, email)
	args = append(args, stringArgs(others)...)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sender_email, receiver_email, text, image, created_at
		   FROM messages
		  WHERE (sender_email = ? AND receiver_email IN (`+in+`))
		     OR (receiver_email = ? AND sender_email IN (`+in+`))
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
			m         domain.Message
			image     sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.SenderEmail, &m.ReceiverEmail, &m.Text, &image, &createdAt); err != nil {
			return nil, err
		}
		m.Image = mapNullString(image)
		m.CreatedAt = fromUnix(createdAt)
		out = append(out, m)
	}
	return out, rows.Err()
}
