package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/campus/internal/campus/blob"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// storeImage saves an optional image upload and returns its reference, or
// "" when there is nothing to store.
func storeImage(ctx context.Context, blobs blob.Store, up *blob.Upload) (string, error) {
	if up == nil || up.Body == nil {
		return "", nil
	}

	body, contentType, err := blob.SniffImage(up.Body)
	if errors.Is(err, blob.ErrNotImage) {
		return "", newError(ErrValidation, "Uploaded file must be an image")
	}
	if err != nil {
		return "", wrapError(ErrValidation, "Could not read uploaded file", err)
	}

	ref, err := blobs.Put(ctx, up.Filename, contentType, body)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to store upload", slog.Any("error", err))
		return "", persistence("Could not store uploaded file", err)
	}
	return ref, nil
}

// discardImage removes a blob that is no longer referenced. Failures are
// logged only; an orphaned file is harmless.
func discardImage(ctx context.Context, blobs blob.Store, ref string) {
	if ref == "" {
		return
	}
	if err := blobs.Delete(context.WithoutCancel(ctx), ref); err != nil {
		slogx.FromContext(ctx).Warn("failed to delete blob", slog.String("ref", ref), slog.Any("error", err))
	}
}
