package limit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"1", 1},
		{"3", 3},
		{"10", 10},
		{"007", 7},
		{"123456789", 123456789},
	}
	for _, tt := range tests {
		got, err := Parse(tt.token)
		require.NoError(t, err, "token %q", tt.token)
		require.Equal(t, tt.want, got, "token %q", tt.token)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, token := range []string{"0", "00", "-1", "+3", "foo", "", " 3", "3 ", "3.5", "1e3", "99999999999999999999999"} {
		n, err := Parse(token)
		require.Error(t, err, "token %q", token)
		require.Zero(t, n)

		var ie *InvalidError
		require.True(t, errors.As(err, &ie), "token %q", token)
		require.Equal(t, token, ie.Token)
		require.Equal(t, token, err.Error())
		require.ErrorIs(t, err, ErrInvalid)
	}
}
