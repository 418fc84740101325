/*
Package campussdk is a small client for the campus service HTTP surface.

A Client keeps the session cookie in its own cookie jar, so a successful
Signup or Login authenticates every later call made through it:

	c := campussdk.NewClient("http://localhost:3000")

	next, err := c.Login(ctx, "student@karunya.edu.in", "pw123")
	if err != nil {
		return err
	}
	// next is the page the server redirected to, e.g. "/profile.html"

	profile, err := c.GetProfile(ctx)

Page routes (/signin, /login, /profile) answer with redirects; the client does
not follow them and returns the Location instead. API routes answer with JSON;
failures come back as *APIError carrying the stable error code.

The response types in this package are also the wire types the server writes.
*/
package campussdk
