package blob

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStore(t *testing.T) {
	ctx := context.Background()
	d, err := NewDiskStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	ref, err := d.Put(ctx, "avatar.gif", "image/gif", bytes.NewReader(tinyGIF))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(d.Dir, ref))

	rc, err := d.Open(ctx, ref)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, tinyGIF, got)

	_, err = d.Open(ctx, "../secret")
	require.ErrorIs(t, err, ErrInvalidRef)

	_, err = d.Open(ctx, "1-1.png")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, d.Delete(ctx, ref))
	require.NoError(t, d.Delete(ctx, ref))
	require.NoFileExists(t, filepath.Join(d.Dir, ref))
}

func TestHandler(t *testing.T) {
	ctx := context.Background()
	d, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ref, err := d.Put(ctx, "a.gif", "image/gif", bytes.NewReader(tinyGIF))
	require.NoError(t, err)

	// a file outside the store must stay unreachable
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(d.Dir), "secret.txt"), []byte("x"), 0o600))

	srv := http.StripPrefix("/uploads/", Handler(d))

	tests := []struct {
		path string
		code int
	}{
		{"/uploads/" + ref, http.StatusOK},
		{"/uploads/1-1.png", http.StatusNotFound},
		{"/uploads/..%2fsecret.txt", http.StatusNotFound},
		{"/uploads/sub/dir.png", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				require.Equal(t, "image/gif", rec.Header().Get("Content-Type"))
				require.Equal(t, tinyGIF, rec.Body.Bytes())
			}
		})
	}
}

func TestHandlerServesNonImageAsAttachment(t *testing.T) {
	dir := t.TempDir()
	d, err := NewDiskStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(d.Dir, "1-1.html"), []byte("<script>alert(1)</script>"), 0o600))

	rec := httptest.NewRecorder()
	http.StripPrefix("/uploads/", Handler(d)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/1-1.html", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	require.Equal(t, "attachment", rec.Header().Get("Content-Disposition"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
