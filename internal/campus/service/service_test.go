package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/aussiebroadwan/campus/internal/campus/blob"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent GIF.
var tinyGIF = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

type testEnv struct {
	store     *sqlite.Store
	blobs     *blob.DiskStore
	auth      *AuthService
	profiles  *ProfileService
	directory *DirectoryService
	messaging *MessagingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	blobs, err := blob.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	return &testEnv{
		store:     s,
		blobs:     blobs,
		auth:      &AuthService{Store: s, EmailDomain: DefaultEmailDomain, BcryptCost: cryptox.MinCost},
		profiles:  &ProfileService{Store: s, Blobs: blobs},
		directory: &DirectoryService{Store: s, UploadPrefix: DefaultUploadPrefix},
		messaging: &MessagingService{Store: s, Blobs: blobs, Concurrency: 4},
	}
}

// addUser creates an account and, when year is set, a profile.
func (e *testEnv) addUser(t *testing.T, email, year string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.store.Accounts().Create(ctx, domain.Account{Email: email, PasswordHash: "x"}))
	if year != "" {
		_, err := e.store.Profiles().Create(ctx, domain.Profile{
			Email: email, Name: email, Degree: "BTech", Year: year,
			Project: "p", ProjectDate: "2024-01-01", OldProject: "o",
		})
		require.NoError(t, err)
	}
}

func gifUpload(name string) *blob.Upload {
	return &blob.Upload{Filename: name, ContentType: "image/gif", Body: bytes.NewReader(tinyGIF)}
}

func validInput() ProfileInput {
	return ProfileInput{
		Name:        "Student One",
		Degree:      "BTech CSE",
		Year:        "2024",
		Project:     "Campus Drone",
		ProjectDate: "2024-03-01",
		OldProject:  "Line Follower",
	}
}

func requireKind(t *testing.T, err error, kind error) *Error {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	return AsError(err)
}

var _ store.Store = (*sqlite.Store)(nil)
