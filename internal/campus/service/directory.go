package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/blob"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const DefaultUploadPrefix = "/uploads/"

type DirectoryService struct {
	Store        store.Store
	UploadPrefix string
}

// DirectoryEntry is a profile with its picture resolved to a public path.
type DirectoryEntry struct {
	Profile   domain.Profile
	ImagePath string
}

// ImagePath resolves a stored blob reference, falling back to the default image.
func (s *DirectoryService) ImagePath(ref string) string {
	prefix := s.UploadPrefix
	if prefix == "" {
		prefix = DefaultUploadPrefix
	}
	return blob.ResolvePath(prefix, ref)
}

// ListByYear returns every profile of a cohort. An empty result is not an error.
func (s *DirectoryService) ListByYear(ctx context.Context, year string) ([]DirectoryEntry, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		return nil, newError(ErrValidation, "Year is required")
	}

	profiles, err := s.Store.Profiles().ListByYear(ctx, year)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list profiles", slog.String("year", year), slog.Any("error", err))
		return nil, persistence("Could not load profiles", err)
	}

	entries := make([]DirectoryEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, DirectoryEntry{Profile: p, ImagePath: s.ImagePath(p.ProfilePic)})
	}
	return entries, nil
}

// UserSummary returns {id, name, email} for the caller's profile.
func (s *DirectoryService) UserSummary(ctx context.Context, email string) (domain.UserSummary, error) {
	if err := requireEmail(email); err != nil {
		return domain.UserSummary{}, err
	}

	p, err := s.Store.Profiles().GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.UserSummary{}, newError(ErrNotFound, "User not found")
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load profile", slog.Any("error", err))
		return domain.UserSummary{}, persistence("Could not load user details", err)
	}
	return p.Summary(), nil
}
