package campussdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ProfilesByYear(ctx context.Context, year string) (*ProfilesByYearResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/getProfilesByYear?"+url.Values{"year": {year}}.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ProfilesByYearResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserDetails(ctx context.Context) (*UserDetails, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/getUserDetails", nil, nil)
	if err != nil {
		return nil, err
	}

	var out UserDetails
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
