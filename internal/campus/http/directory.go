package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

type DirectoryHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleByYear godoc
//
//	@Summary		List Profiles By Year
//	@Description	List every profile of a cohort. An empty cohort is not an error;
//	@Description	the response then carries a message instead of entries.
//	@Tags			Directory
//	@Produce		json
//	@Param			year	query		string								true	"Cohort year"
//	@Success		200		{object}	campussdk.ProfilesByYearResponse	"profiles, message"
//	@Failure		400		{object}	campussdk.ErrorResponse				"year missing"
//	@Failure		401		{object}	campussdk.ErrorResponse				"no session"
//	@Failure		500		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Router			/getProfilesByYear [get]
func (h *DirectoryHandler) HandleByYear(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")

	entries, err := h.DirectoryService.ListByYear(r.Context(), year)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := campussdk.ProfilesByYearResponse{Profiles: make([]campussdk.Profile, 0, len(entries))}
	for _, e := range entries {
		resp.Profiles = append(resp.Profiles, toProfile(e.Profile, e.ImagePath))
	}
	if len(entries) == 0 {
		resp.Message = "No profiles found for year: " + year
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUserDetails godoc
//
//	@Summary		Get User Details
//	@Description	Return id, name and email of the caller's profile.
//	@Tags			Directory
//	@Produce		json
//	@Success		200	{object}	campussdk.UserDetails	"id, name, email"
//	@Failure		401	{object}	campussdk.ErrorResponse	"no session"
//	@Failure		404	{object}	campussdk.ErrorResponse	"no profile yet"
//	@Router			/getUserDetails [get]
func (h *DirectoryHandler) HandleUserDetails(w http.ResponseWriter, r *http.Request) {
	u, err := h.DirectoryService.UserSummary(r.Context(), callerEmail(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, campussdk.UserDetails{ID: u.ID, Name: u.Name, Email: u.Email})
}
