package campussdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// SendMessage broadcasts text, and an optional image, to every other user.
func (c *Client) SendMessage(ctx context.Context, text string, image *File) (*SendMessageResponse, error) {
	resp, err := c.postMultipart(ctx, "/sendMessage", map[string]string{"text": text}, "image", image)
	if err != nil {
		return nil, err
	}

	var out SendMessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMessages returns the messages between sender and receivers, newest first.
func (c *Client) GetMessages(ctx context.Context, sender string, receivers ...string) ([]Message, error) {
	q := url.Values{
		"senderEmail":    {sender},
		"receiverEmails": {strings.Join(receivers, ",")},
	}
	resp, err := c.doRequest(ctx, http.MethodGet, "/getMessages?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Message
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
