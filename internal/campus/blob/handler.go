package blob

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// Handler serves blobs read-only. It expects the public prefix to be
// stripped already, so the request path is the bare reference.
func Handler(store Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ref := strings.TrimPrefix(r.URL.Path, "/")
		if !ValidRef(ref) {
			http.NotFound(w, r)
			return
		}

		rc, err := store.Open(r.Context(), ref)
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidRef):
			http.NotFound(w, r)
			return
		case err != nil:
			slogx.FromContext(r.Context()).Error("open blob failed", "ref", ref, "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer rc.Close()

		if ct := ContentType(ref); ct != "" {
			w.Header().Set("Content-Type", ct)
		} else {
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Header().Set("Content-Disposition", "attachment")
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "public, max-age=86400")

		if r.Method == http.MethodHead {
			return
		}
		_, _ = io.Copy(w, rc)
	})
}
