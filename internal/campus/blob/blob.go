// Package blob stores uploaded images under generated names.
package blob

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"
)

// DefaultImage is served for profiles that never uploaded a picture.
const DefaultImage = "default.jpg"

var (
	ErrNotFound   = errors.New("blob: not found")
	ErrInvalidRef = errors.New("blob: invalid reference")
	ErrNotImage   = errors.New("blob: content is not an image")
)

// Store persists blobs under references it generates itself. A reference is
// a bare file name and never contains a path separator.
type Store interface {
	Put(ctx context.Context, originalName, contentType string, r io.Reader) (string, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Delete(ctx context.Context, ref string) error
}

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// imageTypes maps the extensions a stored name may carry to the content
// type they are served with.
var imageTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
}

var refPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*(\.[a-z0-9]{1,8})?$`)

// NewName returns "<unix-millis>-<random>.<ext>". The extension comes from
// originalName and is dropped unless it names an image format.
func NewName(originalName string, now time.Time) string {
	name := fmt.Sprintf("%d-%d", now.UnixMilli(), rand.IntN(1e9))

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(strings.ReplaceAll(originalName, `\`, "/")), "."))
	if _, ok := imageTypes[ext]; ok {
		name += "." + ext
	}
	return name
}

// ContentType returns the image type for ref's extension, or "" when the
// extension is not an image format.
func ContentType(ref string) string {
	return imageTypes[strings.TrimPrefix(path.Ext(ref), ".")]
}

// ValidRef reports whether ref is a plain name this package could have issued.
func ValidRef(ref string) bool {
	return len(ref) <= 128 && refPattern.MatchString(ref)
}

// ResolvePath turns a stored reference into the public path under prefix,
// falling back to the default image.
func ResolvePath(prefix, ref string) string {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if ref == "" {
		return prefix + DefaultImage
	}
	return prefix + ref
}

// SniffImage checks the leading bytes of r and returns a reader that still
// yields the full content together with the detected content type.
func SniffImage(r io.Reader) (io.Reader, string, error) {
	br := bufio.NewReaderSize(r, 512)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, "", err
	}

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", ErrNotImage
	}
	return br, contentType, nil
}
