package campus_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/stretchr/testify/require"
)

// TestStudentOnboarding walks signup, login, profile creation and the
// directory as a browser would.
func TestStudentOnboarding(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewClient(baseURL)

	target, err := client.Signup(ctx, "student@karunya.edu.in", testPassword)
	require.NoError(t, err)
	require.Equal(t, "/profile.html", target)

	target, err = client.Login(ctx, "student@karunya.edu.in", testPassword)
	require.NoError(t, err)
	require.Equal(t, "/profile.html", target, "no profile yet")

	form := testProfile("Student One", "2024")
	_, err = client.CreateProfile(ctx, form, nil)
	require.NoError(t, err)

	view, err := client.ViewProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, form.Name, view.Profile.Name)
	require.Equal(t, form.ProjectDate, view.Profile.ProjectDate)
	require.Equal(t, "/uploads/default.jpg", view.ImagePath)

	list, err := client.ProfilesByYear(ctx, "2024")
	require.NoError(t, err)
	require.Len(t, list.Profiles, 1)
	require.Equal(t, "/uploads/default.jpg", list.Profiles[0].ProfilePic)

	details, err := client.UserDetails(ctx)
	require.NoError(t, err)
	require.Equal(t, "student@karunya.edu.in", details.Email)

	target, err = client.Login(ctx, "student@karunya.edu.in", testPassword)
	require.NoError(t, err)
	require.Equal(t, "/index.html", target)
}

func TestSignupRequiresInstitutionalEmail(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t, nil)
	defer cleanup()

	client := campussdk.NewClient(baseURL)
	_, err := client.Signup(t.Context(), "student@gmail.com", testPassword)
	assertAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeValidation)
}

// TestDatabaseSessionLogoutRevokes runs with the datastore-backed session
// store and checks logout revokes the cookie server side.
func TestDatabaseSessionLogoutRevokes(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t, map[string]string{"CAMPUS_SESSION_STORE": "database"})
	defer cleanup()

	ctx := t.Context()
	client := registerStudent(t, baseURL, "db@karunya.edu.in", "2024")

	cookie := client.SessionCookie("campus_session")
	require.NotNil(t, cookie)

	_, err := client.Logout(ctx)
	require.NoError(t, err)

	// replaying the old cookie must not work
	replay := campussdk.NewClient(baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/getUserDetails", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	resp, err := replay.HTTPClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfilePictureUpload(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	client := registerStudent(t, baseURL, "pic@karunya.edu.in", "2023")

	updated, err := client.UpdateProfile(ctx, testProfile("Pic", "2023"), &campussdk.File{Name: "me.gif", Content: tinyGIF})
	require.NoError(t, err)
	require.NotEqual(t, "/uploads/default.jpg", updated.ImagePath)

	resp, err := client.HTTPClient.Get(baseURL + updated.ImagePath)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/gif", resp.Header.Get("Content-Type"))
}
