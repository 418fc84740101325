package campus_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent GIF.
var tinyGIF = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

func TestBroadcastRoundTrip(t *testing.T) {
	baseURL, cleanup := setupCampusContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	alice := registerStudent(t, baseURL, "alice@karunya.edu.in", "2024")

	_, err := alice.SendMessage(ctx, "anyone here?", nil)
	assertAPIError(t, err, http.StatusNotFound, campussdk.ErrorCodeNotFound)

	var receivers []string
	for _, email := range []string{"bob@karunya.edu.in", "carol@karunya.edu.in", "dave@karunya.edu.in"} {
		registerStudent(t, baseURL, email, "2024")
		receivers = append(receivers, email)
	}

	sent, err := alice.SendMessage(ctx, "hello batch", &campussdk.File{Name: "hi.gif", Content: tinyGIF})
	require.NoError(t, err)
	require.ElementsMatch(t, receivers, sent.Receivers)

	for _, r := range receivers {
		msgs, err := alice.GetMessages(ctx, "alice@karunya.edu.in", r)
		require.NoError(t, err)
		require.Len(t, msgs, 1, r)
		require.Equal(t, "hello batch", msgs[0].Text)
		require.NotNil(t, msgs[0].Image)
	}
}
