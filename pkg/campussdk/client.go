package campussdk

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Client talks to one campus service instance and carries one login session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with its own cookie jar. Redirects are not
// followed so page routes report where they point.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil) // never fails without options
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// SessionCookie returns the session cookie currently held for the service, if any.
func (c *Client) SessionCookie(name string) *http.Cookie {
	if c.HTTPClient.Jar == nil {
		return nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(u) {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
