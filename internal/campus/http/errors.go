package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

var kindStatus = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrUnauthenticated:    http.StatusUnauthorized,
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrInvalidSender:      http.StatusBadRequest,
	service.ErrInvalidReceivers:   http.StatusBadRequest,
	service.ErrPersistence:        http.StatusInternalServerError,
	service.ErrPartialWrite:       http.StatusInternalServerError,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrAccountBlocked:     http.StatusForbidden,
	service.ErrEmailTaken:         http.StatusConflict,
	service.ErrForbidden:          http.StatusForbidden,
}

// writeServiceError answers with the status and stable code of err's kind.
// The wrapped cause is logged, never sent.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())
	e := service.AsError(err)

	status, ok := kindStatus[e.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "kind", e.Kind.Error(), "err", err)
	} else {
		log.Info("request rejected", "kind", e.Kind.Error(), "reason", e.Message)
	}

	httpx.WriteError(w, status, e.Kind.Error(), e.Message, e.Emails...)
}

// writeFormError answers a request whose body could not be parsed.
func writeFormError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, service.ErrValidation.Error(), "Upload is too large")
		return
	}
	slogx.FromContext(r.Context()).Info("malformed form", "err", err)
	httpx.WriteError(w, http.StatusBadRequest, service.ErrValidation.Error(), "Malformed form data")
}
