package campussdk

import (
	"context"
	"net/http"
	"net/url"
)

// Signup registers an account and starts a session. It returns the page the
// server redirects to.
func (c *Client) Signup(ctx context.Context, email, password string) (string, error) {
	resp, err := c.postForm(ctx, "/signin", url.Values{"email": {email}, "password": {password}})
	if err != nil {
		return "", err
	}
	return redirectLocation(resp)
}

// Login starts a session. The returned page is the profile form when the
// user has no profile yet, otherwise the home page.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.postForm(ctx, "/login", url.Values{"email": {email}, "password": {password}})
	if err != nil {
		return "", err
	}
	return redirectLocation(resp)
}

// Logout ends the session. Calling it without a session succeeds.
func (c *Client) Logout(ctx context.Context) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/logout", nil, nil)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
