package urlutil_test

import (
	"testing"

	"bhavesh/backend/internal/urlutil"

	"github.com/stretchr/testify/require"
)

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "https", raw: "https://files.example.com/uploads/a.pdf", want: true},
		{name: "http", raw: "http://files.example.com/a.pdf", want: true},
		{name: "whitespace_padded", raw: "  https://files.example.com/a.pdf  ", want: true},
		{name: "empty", raw: "", want: false},
		{name: "relative", raw: "/uploads/a.pdf", want: false},
		{name: "no_host", raw: "https://", want: false},
		{name: "other_scheme", raw: "ftp://files.example.com/a.pdf", want: false},
		{name: "not_a_url", raw: "://bad url", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, urlutil.IsHTTPURL(tc.raw))
		})
	}
}
