package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/blob"
)

const (
	// DefaultMaxUploadBytes caps a single request body carrying an upload.
	DefaultMaxUploadBytes = 10 << 20

	formFieldsAllowance = 1 << 20
	multipartMemory     = 8 << 20
)

// parseForm reads a urlencoded or multipart body capped at maxBytes plus a
// small allowance for the text fields.
func parseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+formFieldsAllowance)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(multipartMemory)
	}
	return r.ParseForm()
}

// formUpload returns the file posted under field, or nil when none was sent.
// The returned close func is always safe to call.
func formUpload(r *http.Request, field string) (*blob.Upload, func(), error) {
	noop := func() {}
	if r.MultipartForm == nil {
		return nil, noop, nil
	}

	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	// browsers send an empty part when no file was chosen
	if hdr.Size == 0 && hdr.Filename == "" {
		_ = f.Close()
		return nil, noop, nil
	}

	up := &blob.Upload{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Body:        io.Reader(f),
	}
	return up, func() { _ = f.Close() }, nil
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}
