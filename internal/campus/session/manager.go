package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/campus/pkg/cryptox"
)

const (
	DefaultCookieName = "campus_session"
	DefaultTTL        = 24 * time.Hour
)

// Manager binds sessions to HTTP cookies.
type Manager struct {
	Store      Store
	CookieName string
	TTL        time.Duration
	Secure     bool

	now func() time.Time
}

func NewManager(store Store, cookieName string, ttl time.Duration, secure bool) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		Store:      store,
		CookieName: cookieName,
		TTL:        ttl,
		Secure:     secure,
		now:        time.Now,
	}
}

// Start creates a session for email under a fresh token and sets the cookie.
// A session already attached to the request is discarded first.
func (m *Manager) Start(w http.ResponseWriter, r *http.Request, email string) (Session, error) {
	if c, err := r.Cookie(m.CookieName); err == nil && c.Value != "" {
		_ = m.Store.Delete(r.Context(), c.Value)
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return Session{}, err
	}

	now := m.now().UTC()
	s := Session{Email: email, CreatedAt: now, ExpiresAt: now.Add(m.TTL)}
	if err := m.Store.Put(r.Context(), token, s); err != nil {
		return Session{}, err
	}

	http.SetCookie(w, m.cookie(token, s.ExpiresAt, int(m.TTL.Seconds())))
	return s, nil
}

// Load resolves the request cookie. Returns ErrNotFound when there is no
// cookie or the session is unknown or expired.
func (m *Manager) Load(r *http.Request) (Session, error) {
	c, err := r.Cookie(m.CookieName)
	if err != nil || c.Value == "" {
		return Session{}, ErrNotFound
	}
	return m.Store.Get(r.Context(), c.Value)
}

// Destroy removes the session and clears the cookie. Idempotent.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, m.cookie("", time.Unix(0, 0), -1))

	c, err := r.Cookie(m.CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	if err := m.Store.Delete(r.Context(), c.Value); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (m *Manager) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
