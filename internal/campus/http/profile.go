package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/session"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

type ProfileHandler struct {
	ProfileService   *service.ProfileService
	DirectoryService *service.DirectoryService

	HomePage       string
	MaxUploadBytes int64
}

func callerEmail(r *http.Request) string {
	s, _ := session.FromContext(r.Context())
	return s.Email
}

// HandleCreate godoc
//
//	@Summary		Create Profile
//	@Description	Store the caller's profile with an optional picture, then redirect home.
//	@Tags			Profile
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			profilename	formData	string					true	"Display name"
//	@Param			degree		formData	string					true	"Degree"
//	@Param			year		formData	string					true	"Cohort year"
//	@Param			project		formData	string					true	"Current project"
//	@Param			projectDate	formData	string					true	"Project date"
//	@Param			oldproject	formData	string					true	"Previous project"
//	@Param			profilePic	formData	file					false	"Profile picture"
//	@Success		303			"Redirect to the home page"
//	@Failure		400			{object}	campussdk.ErrorResponse	"missing fields"
//	@Failure		413			{object}	campussdk.ErrorResponse	"upload too large"
//	@Failure		500			{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/profile [post]
func (h *ProfileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r, h.MaxUploadBytes); err != nil {
		writeFormError(w, r, err)
		return
	}
	pic, closePic, err := formUpload(r, "profilePic")
	if err != nil {
		writeFormError(w, r, err)
		return
	}
	defer closePic()

	in := service.ProfileInput{
		Name:        formValue(r, "profilename"),
		Degree:      formValue(r, "degree"),
		Year:        formValue(r, "year"),
		Project:     formValue(r, "project"),
		ProjectDate: formValue(r, "projectDate"),
		OldProject:  formValue(r, "oldproject"),
	}

	if _, err := h.ProfileService.Create(r.Context(), callerEmail(r), in, pic); err != nil {
		writeServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, h.HomePage, http.StatusSeeOther)
}

// HandleUpdate godoc
//
//	@Summary		Update Profile
//	@Description	Rewrite the caller's profile. The stored picture is kept unless a new one is sent.
//	@Tags			Profile
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name			formData	string						true	"Display name"
//	@Param			degree			formData	string						true	"Degree"
//	@Param			year			formData	string						true	"Cohort year"
//	@Param			project			formData	string						true	"Current project"
//	@Param			project_date	formData	string						true	"Project date"
//	@Param			oldproject		formData	string						true	"Previous project"
//	@Param			profilePic		formData	file						false	"Profile picture"
//	@Success		200				{object}	campussdk.ProfileResponse	"profile, imagePath"
//	@Failure		400				{object}	campussdk.ErrorResponse		"missing fields"
//	@Failure		401				{object}	campussdk.ErrorResponse		"no session"
//	@Failure		404				{object}	campussdk.ErrorResponse		"no profile yet"
//	@Failure		500				{object}	campussdk.ErrorResponse		"error, error_description"
//	@Router			/updateProfile [post]
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r, h.MaxUploadBytes); err != nil {
		writeFormError(w, r, err)
		return
	}
	pic, closePic, err := formUpload(r, "profilePic")
	if err != nil {
		writeFormError(w, r, err)
		return
	}
	defer closePic()

	in := service.ProfileInput{
		Name:        formValue(r, "name"),
		Degree:      formValue(r, "degree"),
		Year:        formValue(r, "year"),
		Project:     formValue(r, "project"),
		ProjectDate: formValue(r, "project_date"),
		OldProject:  formValue(r, "oldproject"),
	}

	p, err := h.ProfileService.Update(r.Context(), callerEmail(r), in, pic)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.ProfileResponse{
		Profile:   toProfile(p, p.ProfilePic),
		ImagePath: h.DirectoryService.ImagePath(p.ProfilePic),
	})
}

// HandleGet godoc
//
//	@Summary		Get Own Profile
//	@Description	Return the caller's profile with the public path of its picture.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	campussdk.ProfileResponse	"profile, imagePath"
//	@Failure		401	{object}	campussdk.ErrorResponse		"no session"
//	@Failure		404	{object}	campussdk.ErrorResponse		"no profile yet"
//	@Router			/getProfile [get]
//	@Router			/viewProfile [get]
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProfileService.Get(r.Context(), callerEmail(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, campussdk.ProfileResponse{
		Profile:   toProfile(p, p.ProfilePic),
		ImagePath: h.DirectoryService.ImagePath(p.ProfilePic),
	})
}
