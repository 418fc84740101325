package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const DefaultEmailDomain = "@karunya.edu.in"

type AuthService struct {
	Store       store.Store
	EmailDomain string
	BcryptCost  int
}

// LoginResult tells the caller where to send a freshly logged in user.
type LoginResult struct {
	Email      string
	HasProfile bool
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) domain() string {
	if s.EmailDomain == "" {
		return DefaultEmailDomain
	}
	return strings.ToLower(s.EmailDomain)
}

// ValidEmail reports whether email has a local part and the institutional domain.
func (s *AuthService) ValidEmail(email string) bool {
	d := s.domain()
	return strings.HasSuffix(email, d) && len(email) > len(d) && !strings.ContainsAny(email, " \t\r\n")
}

// Signup registers a new account. The caller starts the session.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)
	email = NormalizeEmail(email)

	if !s.ValidEmail(email) {
		return "", newError(ErrValidation, "Email must be a "+s.domain()+" address")
	}
	if password == "" {
		return "", newError(ErrValidation, "Password is required")
	}

	hash, err := cryptox.HashPassword(password, s.BcryptCost)
	if errors.Is(err, cryptox.ErrPasswordTooLong) {
		return "", wrapError(ErrValidation, "Password must be at most 72 bytes", err)
	}
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return "", persistence("Could not create account", err)
	}

	err = s.Store.Accounts().Create(ctx, domain.Account{
		Email:        email,
		PasswordHash: hash,
		Blocked:      false,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		log.Info("signup with taken email", slog.String("email", email))
		return "", &Error{Kind: ErrEmailTaken, Message: "An account with this email already exists", Err: err}
	}
	if err != nil {
		log.Error("failed to create account", slog.Any("error", err))
		return "", persistence("Could not create account", err)
	}

	log.Info("account created", slog.String("email", email))
	return email, nil
}

// Login verifies credentials. Unknown emails and wrong passwords produce the
// same ErrInvalidCredentials; a blocked account yields ErrAccountBlocked.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)
	email = NormalizeEmail(email)

	if email == "" || password == "" {
		return LoginResult{}, newError(ErrValidation, "Email and password are required")
	}

	acct, err := s.Store.Accounts().GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		cryptox.BurnPasswordCheck(password)
		return LoginResult{}, newError(ErrInvalidCredentials, "Invalid credentials!")
	}
	if err != nil {
		log.Error("failed to load account", slog.Any("error", err))
		return LoginResult{}, persistence("Could not log in", err)
	}

	if err := cryptox.VerifyPassword(password, acct.PasswordHash); err != nil {
		log.Info("login with wrong password", slog.String("email", email))
		return LoginResult{}, newError(ErrInvalidCredentials, "Invalid credentials!")
	}

	if acct.Blocked {
		log.Warn("blocked account attempted login", slog.String("email", email))
		return LoginResult{}, newError(ErrAccountBlocked, "Your account has been blocked")
	}

	_, err = s.Store.Profiles().GetByEmail(ctx, email)
	switch {
	case err == nil:
		return LoginResult{Email: email, HasProfile: true}, nil
	case errors.Is(err, store.ErrNotFound):
		return LoginResult{Email: email, HasProfile: false}, nil
	default:
		log.Error("failed to check profile", slog.Any("error", err))
		return LoginResult{}, persistence("Could not log in", err)
	}
}
