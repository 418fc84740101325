package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/campus/internal/campus/blob"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileRequiresEveryField(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	const email = "a@karunya.edu.in"
	env.addUser(t, email, "")

	blank := map[string]func(*ProfileInput){
		"degree":      func(in *ProfileInput) { in.Degree = "" },
		"year":        func(in *ProfileInput) { in.Year = " " },
		"project":     func(in *ProfileInput) { in.Project = "" },
		"projectDate": func(in *ProfileInput) { in.ProjectDate = "" },
		"name":        func(in *ProfileInput) { in.Name = "" },
		"oldProject":  func(in *ProfileInput) { in.OldProject = "\t" },
	}

	for field, clear := range blank {
		t.Run(field, func(t *testing.T) {
			in := validInput()
			clear(&in)

			_, err := env.profiles.Create(ctx, email, in, nil)
			e := requireKind(t, err, ErrValidation)
			require.Contains(t, e.Message, field)

			_, err = env.store.Profiles().GetByEmail(ctx, email)
			require.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	const email = "a@karunya.edu.in"
	env.addUser(t, email, "")

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := env.profiles.Create(ctx, "", validInput(), nil)
		requireKind(t, err, ErrUnauthenticated)
	})

	t.Run("rejects non-images", func(t *testing.T) {
		up := &blob.Upload{Filename: "x.png", Body: strings.NewReader("#!/bin/sh\nrm -rf /")}
		_, err := env.profiles.Create(ctx, email, validInput(), up)
		requireKind(t, err, ErrValidation)
	})

	p, err := env.profiles.Create(ctx, email, validInput(), gifUpload("me.gif"))
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	require.True(t, strings.HasSuffix(p.ProfilePic, ".gif"))
	require.FileExists(t, filepath.Join(env.blobs.Dir, p.ProfilePic))

	got, err := env.profiles.Get(ctx, email)
	require.NoError(t, err)
	in := validInput()
	require.Equal(t, in.Name, got.Name)
	require.Equal(t, in.Degree, got.Degree)
	require.Equal(t, in.Year, got.Year)
	require.Equal(t, in.Project, got.Project)
	require.Equal(t, in.ProjectDate, got.ProjectDate)
	require.Equal(t, in.OldProject, got.OldProject)

	t.Run("second create is rejected", func(t *testing.T) {
		_, err := env.profiles.Create(ctx, email, validInput(), nil)
		requireKind(t, err, ErrValidation)
	})
}

func TestUpdateProfilePicture(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	const email = "a@karunya.edu.in"
	env.addUser(t, email, "")

	created, err := env.profiles.Create(ctx, email, validInput(), gifUpload("first.gif"))
	require.NoError(t, err)
	original := created.ProfilePic

	t.Run("without a picture keeps the stored one", func(t *testing.T) {
		in := validInput()
		in.Name = "Renamed"
		updated, err := env.profiles.Update(ctx, email, in, nil)
		require.NoError(t, err)
		require.Equal(t, original, updated.ProfilePic)

		got, err := env.profiles.Get(ctx, email)
		require.NoError(t, err)
		require.Equal(t, "Renamed", got.Name)
		require.Equal(t, original, got.ProfilePic)
	})

	t.Run("with a picture replaces it", func(t *testing.T) {
		updated, err := env.profiles.Update(ctx, email, validInput(), gifUpload("second.gif"))
		require.NoError(t, err)
		require.NotEqual(t, original, updated.ProfilePic)

		got, err := env.profiles.Get(ctx, email)
		require.NoError(t, err)
		require.Equal(t, updated.ProfilePic, got.ProfilePic)
		require.NoFileExists(t, filepath.Join(env.blobs.Dir, original))
	})

	t.Run("missing field", func(t *testing.T) {
		in := validInput()
		in.Degree = ""
		_, err := env.profiles.Update(ctx, email, in, nil)
		requireKind(t, err, ErrValidation)
	})

	t.Run("no profile", func(t *testing.T) {
		_, err := env.profiles.Update(ctx, "nobody@karunya.edu.in", validInput(), nil)
		requireKind(t, err, ErrNotFound)
	})
}
