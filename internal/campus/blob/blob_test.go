package blob

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 1x1 transparent GIF.
var tinyGIF = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

func TestNewName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	tests := []struct {
		original string
		pattern  string
	}{
		{"me.JPG", `^1700000000123-\d+\.jpg$`},
		{"photo.png", `^1700000000123-\d+\.png$`},
		{"../../etc/passwd", `^1700000000123-\d+$`},
		{`C:\Users\me\pic.jpeg`, `^1700000000123-\d+\.jpeg$`},
		{"noext", `^1700000000123-\d+$`},
		{"evil.ph p", `^1700000000123-\d+$`},
		{"long.abcdefghij", `^1700000000123-\d+$`},
		{"evil.html", `^1700000000123-\d+$`},
		{"page.svg", `^1700000000123-\d+$`},
		{"anim.GIF", `^1700000000123-\d+\.gif$`},
	}

	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			name := NewName(tt.original, now)
			require.Regexp(t, regexp.MustCompile(tt.pattern), name)
			require.True(t, ValidRef(name))
		})
	}
}

func TestValidRef(t *testing.T) {
	require.True(t, ValidRef(DefaultImage))
	require.True(t, ValidRef("1700000000123-42.png"))

	for _, bad := range []string{"", "../x.png", "a/b.png", ".hidden", "x.PNG", "x..png", strings.Repeat("a", 200)} {
		require.False(t, ValidRef(bad), bad)
	}
}

func TestContentType(t *testing.T) {
	require.Equal(t, "image/jpeg", ContentType("1-2.jpg"))
	require.Equal(t, "image/gif", ContentType("1-2.gif"))
	require.Empty(t, ContentType("1-2.html"))
	require.Empty(t, ContentType("1-2"))
}

func TestResolvePath(t *testing.T) {
	require.Equal(t, "/uploads/default.jpg", ResolvePath("/uploads/", ""))
	require.Equal(t, "/uploads/1-2.png", ResolvePath("/uploads", "1-2.png"))
}

func TestSniffImage(t *testing.T) {
	r, ct, err := SniffImage(bytes.NewReader(tinyGIF))
	require.NoError(t, err)
	require.Equal(t, "image/gif", ct)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, tinyGIF, got)

	_, _, err = SniffImage(strings.NewReader("<html><script>alert(1)</script>"))
	require.ErrorIs(t, err, ErrNotImage)

	_, _, err = SniffImage(strings.NewReader(""))
	require.ErrorIs(t, err, ErrNotImage)
}
