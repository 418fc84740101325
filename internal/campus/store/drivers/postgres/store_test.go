package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return New(db), mock
}

func TestAccountsGetByEmail(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)
	q := `(?s)^SELECT\s+email,\s*password_hash,\s*blocked,\s*created_at\s+FROM\s+accounts\s+WHERE\s+email\s*=\s*\$1$`

	now := time.Now()
	mock.ExpectQuery(q).WithArgs("a@k").
		WillReturnRows(sqlmock.NewRows([]string{"email", "password_hash", "blocked", "created_at"}).
			AddRow("a@k", "h", true, now))
	mock.ExpectQuery(q).WithArgs("ghost@k").WillReturnError(sql.ErrNoRows)

	a, err := s.Accounts().GetByEmail(ctx, "a@k")
	require.NoError(t, err)
	require.True(t, a.Blocked)
	require.Equal(t, "h", a.PasswordHash)

	_, err = s.Accounts().GetByEmail(ctx, "ghost@k")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAccountsCreateDuplicate(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+accounts`).
		WithArgs("a@k", "h", false, sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	err := s.Accounts().Create(context.Background(), domain.Account{Email: "a@k", PasswordHash: "h"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestAccountsListExisting(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`(?s)^SELECT\s+email\s+FROM\s+accounts\s+WHERE\s+email\s+IN\s+\(\$1,\s*\$2\)$`).
		WithArgs("a@k", "b@k").
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("a@k"))

	got, err := s.Accounts().ListExisting(context.Background(), []string{"a@k", "b@k"})
	require.NoError(t, err)
	require.Equal(t, []string{"a@k"}, got)
}

func TestProfilesUpdate(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)
	q := `(?s)^UPDATE\s+profiles\s+SET.*COALESCE\(\$7,\s*profile_pic\).*WHERE\s+email\s*=\s*\$8$`
	p := domain.Profile{
		Email: "a@k", Name: "A", Degree: "BSc", Year: "2024",
		Project: "P", ProjectDate: "2024-01-01", OldProject: "O",
	}

	mock.ExpectExec(q).
		WithArgs("A", "BSc", "2024", "P", "2024-01-01", "O", nil, "a@k").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Profiles().Update(ctx, p))

	mock.ExpectExec(q).
		WithArgs("A", "BSc", "2024", "P", "2024-01-01", "O", "new.png", "a@k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	p.ProfilePic = "new.png"
	require.ErrorIs(t, s.Profiles().Update(ctx, p), store.ErrNotFound)
}

func TestProfilesCreateReturnsID(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+profiles.*RETURNING\s+id$`).
		WithArgs("a@k", "A", "BSc", "2024", "P", "D", "O", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := s.Profiles().Create(context.Background(), domain.Profile{
		Email: "a@k", Name: "A", Degree: "BSc", Year: "2024", Project: "P", ProjectDate: "D", OldProject: "O",
	})
	require.NoError(t, err)
	require.EqualValues(t, 7, id)
}

func TestMessagesConversationQuery(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	mock.ExpectQuery(`(?s)WHERE\s+\(sender_email\s*=\s*\$1\s+AND\s+receiver_email\s+IN\s+\(\$2,\s*\$3\)\)\s+OR\s+\(receiver_email\s*=\s*\$1\s+AND\s+sender_email\s+IN\s+\(\$2,\s*\$3\)\)\s+ORDER\s+BY\s+created_at\s+DESC`).
		WithArgs("a@k", "b@k", "c@k").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_email", "receiver_email", "text", "image", "created_at"}).
			AddRow(int64(2), "b@k", "a@k", "hi", nil, now).
			AddRow(int64(1), "a@k", "c@k", "hey", "1-2.png", now.Add(-time.Minute)))

	got, err := s.Messages().Conversation(context.Background(), "a@k", []string{"b@k", "c@k"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Empty(t, got[0].Image)
	require.Equal(t, "1-2.png", got[1].Image)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+messages`).WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		_, err := tx.Messages().Create(context.Background(), domain.Message{SenderEmail: "a@k", ReceiverEmail: "x@k", Text: "t"})
		return err
	})
	require.ErrorContains(t, err, "fk violation")
}

func TestWithTxCommits(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+sessions\s+WHERE\s+expires_at`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	var n int64
	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		var err error
		n, err = tx.Sessions().DeleteExpired(context.Background(), time.Now())
		return err
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
}
