package session

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestDatastoreStore(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations())
	defer db.Close()

	d := NewDatastoreStore(db)
	now := time.Now().UTC()

	require.NoError(t, d.Put(ctx, "raw-token", Session{Email: "a@k", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))

	t.Run("only the fingerprint is stored", func(t *testing.T) {
		rec, err := db.Sessions().GetByTokenHash(ctx, cryptox.FingerprintToken("raw-token"))
		require.NoError(t, err)
		require.Equal(t, "a@k", rec.Email)
	})

	t.Run("get", func(t *testing.T) {
		s, err := d.Get(ctx, "raw-token")
		require.NoError(t, err)
		require.Equal(t, "a@k", s.Email)
	})

	t.Run("expired", func(t *testing.T) {
		d.now = func() time.Time { return now.Add(2 * time.Hour) }
		defer func() { d.now = time.Now }()
		_, err := d.Get(ctx, "raw-token")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, d.Delete(ctx, "raw-token"))
		_, err := d.Get(ctx, "raw-token")
		require.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, d.Delete(ctx, "raw-token"))
	})
}
