package session

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
)

// DatastoreStore keeps sessions in the relational store so they survive a
// restart. Only the token fingerprint is written.
type DatastoreStore struct {
	Store store.Store
	now   func() time.Time
}

func NewDatastoreStore(s store.Store) *DatastoreStore {
	return &DatastoreStore{Store: s, now: time.Now}
}

func (d *DatastoreStore) Get(ctx context.Context, token string) (Session, error) {
	rec, err := d.Store.Sessions().GetByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}
	if rec.Expired(d.now()) {
		return Session{}, ErrNotFound
	}
	return Session{Email: rec.Email, CreatedAt: rec.CreatedAt, ExpiresAt: rec.ExpiresAt}, nil
}

func (d *DatastoreStore) Put(ctx context.Context, token string, s Session) error {
	return d.Store.Sessions().Create(ctx, domain.SessionRecord{
		TokenHash: cryptox.FingerprintToken(token),
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	})
}

func (d *DatastoreStore) Delete(ctx context.Context, token string) error {
	return d.Store.Sessions().DeleteByTokenHash(ctx, cryptox.FingerprintToken(token))
}
