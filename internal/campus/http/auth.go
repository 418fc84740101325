package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/session"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Sessions    *session.Manager

	HomePage    string
	ProfilePage string
}

// HandleSignup godoc
//
//	@Summary		Sign Up
//	@Description	Create an account for an institutional email address and start a session.
//	@Description	On success the browser is redirected to the profile form.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string					true	"Institutional email"
//	@Param			password	formData	string					true	"Password"
//	@Success		303			"Redirect to the profile form"
//	@Failure		400			{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	campussdk.ErrorResponse	"email already registered"
//	@Failure		500			{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/signin [post]
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeFormError(w, r, err)
		return
	}

	email, err := h.AuthService.Signup(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err := h.Sessions.Start(w, r, email); err != nil {
		slogx.FromContext(r.Context()).Error("failed to start session", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, service.ErrPersistence.Error(), "Could not start session")
		return
	}

	http.Redirect(w, r, h.ProfilePage, http.StatusSeeOther)
}

// HandleLogin godoc
//
//	@Summary		Log In
//	@Description	Verify credentials and start a session. Users with a profile land on
//	@Description	the home page, others on the profile form.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string					true	"Email"
//	@Param			password	formData	string					true	"Password"
//	@Success		303			"Redirect to the home page or profile form"
//	@Failure		400			{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	campussdk.ErrorResponse	"invalid credentials"
//	@Failure		403			{object}	campussdk.ErrorResponse	"account blocked"
//	@Router			/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeFormError(w, r, err)
		return
	}

	res, err := h.AuthService.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err := h.Sessions.Start(w, r, res.Email); err != nil {
		slogx.FromContext(r.Context()).Error("failed to start session", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, service.ErrPersistence.Error(), "Could not start session")
		return
	}

	target := h.ProfilePage
	if res.HasProfile {
		target = h.HomePage
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// HandleLogout godoc
//
//	@Summary		Log Out
//	@Description	Destroy the current session. Calling it without a session succeeds too.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	campussdk.MessageResponse	"message"
//	@Failure		500	{object}	campussdk.ErrorResponse		"error, error_description"
//	@Router			/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(w, r); err != nil {
		slogx.FromContext(r.Context()).Error("failed to destroy session", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, service.ErrPersistence.Error(), "Could not log out")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.MessageResponse{Message: "Logged out successfully"})
}
