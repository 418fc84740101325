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

type ProfileService struct {
	Store store.Store
	Blobs blob.Store
}

// ProfileInput holds the user-editable profile fields. All are required.
type ProfileInput struct {
	Name        string
	Degree      string
	Year        string
	Project     string
	ProjectDate string
	OldProject  string
}

func (in ProfileInput) trimmed() ProfileInput {
	return ProfileInput{
		Name:        strings.TrimSpace(in.Name),
		Degree:      strings.TrimSpace(in.Degree),
		Year:        strings.TrimSpace(in.Year),
		Project:     strings.TrimSpace(in.Project),
		ProjectDate: strings.TrimSpace(in.ProjectDate),
		OldProject:  strings.TrimSpace(in.OldProject),
	}
}

// Missing lists the names of empty fields in form order.
func (in ProfileInput) Missing() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"degree", in.Degree},
		{"year", in.Year},
		{"project", in.Project},
		{"projectDate", in.ProjectDate},
		{"name", in.Name},
		{"oldProject", in.OldProject},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (in ProfileInput) validate() (ProfileInput, error) {
	in = in.trimmed()
	if missing := in.Missing(); len(missing) > 0 {
		return in, newError(ErrValidation, "All fields are required, missing: "+strings.Join(missing, ", "))
	}
	return in, nil
}

func (in ProfileInput) profile(email, pic string) domain.Profile {
	return domain.Profile{
		Email:       email,
		Name:        in.Name,
		Degree:      in.Degree,
		Year:        in.Year,
		Project:     in.Project,
		ProjectDate: in.ProjectDate,
		OldProject:  in.OldProject,
		ProfilePic:  pic,
	}
}

func requireEmail(email string) error {
	if email == "" {
		return newError(ErrUnauthenticated, "Please log in first")
	}
	return nil
}

// Create validates and stores the caller's first profile. Nothing is written
// when a field is missing.
func (s *ProfileService) Create(ctx context.Context, email string, in ProfileInput, pic *blob.Upload) (domain.Profile, error) {
	log := slogx.FromContext(ctx)
	if err := requireEmail(email); err != nil {
		return domain.Profile{}, err
	}

	in, err := in.validate()
	if err != nil {
		return domain.Profile{}, err
	}

	ref, err := storeImage(ctx, s.Blobs, pic)
	if err != nil {
		return domain.Profile{}, err
	}

	p := in.profile(email, ref)
	p.ID, err = s.Store.Profiles().Create(ctx, p)
	if err != nil {
		discardImage(ctx, s.Blobs, ref)
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Profile{}, newError(ErrValidation, "Profile already exists, update it instead")
		}
		log.Error("failed to create profile", slog.Any("error", err))
		return domain.Profile{}, persistence("Could not save profile", err)
	}

	log.Info("profile created", slog.Int64("profile_id", p.ID))
	return p, nil
}

// Update rewrites the caller's profile. Without a new picture the stored one
// is kept; with one, the old blob is deleted after the row is updated.
func (s *ProfileService) Update(ctx context.Context, email string, in ProfileInput, pic *blob.Upload) (domain.Profile, error) {
	log := slogx.FromContext(ctx)
	if err := requireEmail(email); err != nil {
		return domain.Profile{}, err
	}

	in, err := in.validate()
	if err != nil {
		return domain.Profile{}, err
	}

	current, err := s.Store.Profiles().GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Profile{}, newError(ErrNotFound, "Profile not found")
	}
	if err != nil {
		log.Error("failed to load profile", slog.Any("error", err))
		return domain.Profile{}, persistence("Could not update profile", err)
	}

	ref, err := storeImage(ctx, s.Blobs, pic)
	if err != nil {
		return domain.Profile{}, err
	}

	p := in.profile(email, ref)
	if err := s.Store.Profiles().Update(ctx, p); err != nil {
		discardImage(ctx, s.Blobs, ref)
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, newError(ErrNotFound, "Profile not found")
		}
		log.Error("failed to update profile", slog.Any("error", err))
		return domain.Profile{}, persistence("Could not update profile", err)
	}

	if ref != "" && current.ProfilePic != "" && current.ProfilePic != ref {
		discardImage(ctx, s.Blobs, current.ProfilePic)
	}
	if ref == "" {
		p.ProfilePic = current.ProfilePic
	}
	p.ID = current.ID
	p.CreatedAt = current.CreatedAt

	log.Info("profile updated", slog.Int64("profile_id", p.ID), slog.Bool("new_picture", ref != ""))
	return p, nil
}

// Get returns the profile for email.
func (s *ProfileService) Get(ctx context.Context, email string) (domain.Profile, error) {
	if err := requireEmail(email); err != nil {
		return domain.Profile{}, err
	}

	p, err := s.Store.Profiles().GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Profile{}, newError(ErrNotFound, "Profile not found")
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load profile", slog.Any("error", err))
		return domain.Profile{}, persistence("Could not load profile", err)
	}
	return p, nil
}
