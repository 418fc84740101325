package blob

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DiskStore keeps blobs as files in one directory.
type DiskStore struct {
	Dir string
	now func() time.Time
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir, now: time.Now}, nil
}

func (d *DiskStore) Put(_ context.Context, originalName, _ string, r io.Reader) (string, error) {
	ref := NewName(originalName, d.now())

	f, err := os.OpenFile(filepath.Join(d.Dir, ref), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return ref, nil
}

func (d *DiskStore) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	if !ValidRef(ref) {
		return nil, ErrInvalidRef
	}
	f, err := os.Open(filepath.Join(d.Dir, ref))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

func (d *DiskStore) Delete(_ context.Context, ref string) error {
	if !ValidRef(ref) {
		return ErrInvalidRef
	}
	err := os.Remove(filepath.Join(d.Dir, ref))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
