package campussdk

import (
	"context"
	"net/http"
)

// CreateProfile submits the first profile. It returns the page the server
// redirects to.
func (c *Client) CreateProfile(ctx context.Context, form ProfileForm, pic *File) (string, error) {
	resp, err := c.postMultipart(ctx, "/profile", map[string]string{
		"profilename": form.Name,
		"degree":      form.Degree,
		"year":        form.Year,
		"project":     form.Project,
		"projectDate": form.ProjectDate,
		"oldproject":  form.OldProject,
	}, "profilePic", pic)
	if err != nil {
		return "", err
	}
	return redirectLocation(resp)
}

// UpdateProfile rewrites the profile. A nil pic keeps the stored picture.
func (c *Client) UpdateProfile(ctx context.Context, form ProfileForm, pic *File) (*ProfileResponse, error) {
	resp, err := c.postMultipart(ctx, "/updateProfile", map[string]string{
		"name":         form.Name,
		"degree":       form.Degree,
		"year":         form.Year,
		"project":      form.Project,
		"project_date": form.ProjectDate,
		"oldproject":   form.OldProject,
	}, "profilePic", pic)
	if err != nil {
		return nil, err
	}

	var out ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile returns the caller's profile.
func (c *Client) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	return c.getProfile(ctx, "/getProfile")
}

// ViewProfile is the page-flavoured variant of GetProfile.
func (c *Client) ViewProfile(ctx context.Context) (*ProfileResponse, error) {
	return c.getProfile(ctx, "/viewProfile")
}

func (c *Client) getProfile(ctx context.Context, path string) (*ProfileResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
