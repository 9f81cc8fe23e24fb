package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/clarabennett2626/headr/internal/limit"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(Options{})
	require.NoError(t, err)
	require.Equal(t, []string{Stdin}, cfg.Sources())
	require.Equal(t, LineLimit(10), cfg.Limit())
	require.False(t, cfg.MultiSource())
}

func TestNew_LineLimit(t *testing.T) {
	cfg, err := New(Options{Lines: ptr("3"), Sources: []string{"a.txt", "b.txt"}})
	require.NoError(t, err)
	require.Equal(t, LineLimit(3), cfg.Limit())
	require.Equal(t, 3, cfg.Limit().Count())
	require.Equal(t, []string{"a.txt", "b.txt"}, cfg.Sources())
	require.True(t, cfg.MultiSource())
}

func TestNew_ByteLimit(t *testing.T) {
	cfg, err := New(Options{Bytes: ptr("5")})
	require.NoError(t, err)
	require.Equal(t, ByteLimit(5), cfg.Limit())
	require.Equal(t, "5 bytes", cfg.Limit().String())
}

func TestNew_FallbackLines(t *testing.T) {
	cfg, err := New(Options{FallbackLines: "25"})
	require.NoError(t, err)
	require.Equal(t, LineLimit(25), cfg.Limit())

	cfg, err = New(Options{FallbackLines: "25", Lines: ptr("2")})
	require.NoError(t, err)
	require.Equal(t, LineLimit(2), cfg.Limit())

	cfg, err = New(Options{FallbackLines: "25", Bytes: ptr("2")})
	require.NoError(t, err)
	require.Equal(t, ByteLimit(2), cfg.Limit())
}

func TestNew_Conflicting(t *testing.T) {
	_, err := New(Options{Lines: ptr("1"), Bytes: ptr("2")})
	require.ErrorIs(t, err, ErrConflictingOptions)

	// The conflict wins over a bad value.
	_, err = New(Options{Lines: ptr("foo"), Bytes: ptr("2")})
	require.ErrorIs(t, err, ErrConflictingOptions)
}

func TestNew_IllegalCounts(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		msg  string
	}{
		{"zero lines", Options{Lines: ptr("0")}, "illegal line count -- 0"},
		{"word lines", Options{Lines: ptr("foo")}, "illegal line count -- foo"},
		{"negative bytes", Options{Bytes: ptr("-1")}, "illegal byte count -- -1"},
		{"word bytes", Options{Bytes: ptr("bar")}, "illegal byte count -- bar"},
		{"bad default", Options{FallbackLines: "x"}, "illegal line count -- x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.opts)
			require.Nil(t, cfg)
			require.EqualError(t, err, tt.msg)
			require.ErrorIs(t, err, limit.ErrInvalid)

			var le *LimitError
			require.True(t, errors.As(err, &le))
		})
	}
}

func TestConfig_SourcesIsolated(t *testing.T) {
	in := []string{"a", "b"}
	cfg, err := New(Options{Sources: in})
	require.NoError(t, err)

	in[0] = "changed"
	out := cfg.Sources()
	out[1] = "changed"
	require.Equal(t, []string{"a", "b"}, cfg.Sources())
}

func TestParseDefaults(t *testing.T) {
	src := []byte(`
lines     = 20
color     = "never"
theme     = "light"
log_level = "debug"
`)
	d, err := ParseDefaults("headr.hcl", src)
	require.NoError(t, err)
	require.Equal(t, "20", d.LinesToken())
	require.Equal(t, "never", *d.Color)
	require.Equal(t, "light", *d.Theme)
	require.Equal(t, "debug", *d.LogLevel)
}

func TestParseDefaults_Empty(t *testing.T) {
	d, err := ParseDefaults("headr.hcl", nil)
	require.NoError(t, err)
	require.Equal(t, "", d.LinesToken())
	require.Nil(t, d.Color)
}

func TestParseDefaults_JSON(t *testing.T) {
	d, err := ParseDefaults("headr.json", []byte(`{"lines": 4}`))
	require.NoError(t, err)
	require.Equal(t, "4", d.LinesToken())
}

func TestParseDefaults_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"zero lines", `lines = 0`, "illegal line count -- 0"},
		{"bad color", `color = "sometimes"`, `invalid color "sometimes"`},
		{"bad theme", `theme = "blue"`, `invalid theme "blue"`},
		{"bad level", `log_level = "loud"`, `invalid log_level "loud"`},
		{"unknown attribute", `bytes = 3`, "decoding defaults file"},
		{"syntax", `lines = `, "decoding defaults file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefaults("headr.hcl", []byte(tt.src))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "headr.hcl")
	require.NoError(t, os.WriteFile(path, []byte("lines = 7\n"), 0644))

	d, err := LoadDefaults(path)
	require.NoError(t, err)
	require.Equal(t, "7", d.LinesToken())

	_, err = LoadDefaults(filepath.Join(dir, "missing.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidLogLevel(t *testing.T) {
	require.True(t, ValidLogLevel("warn"))
	require.True(t, ValidLogLevel("debug"))
	require.False(t, ValidLogLevel("trace"))
}
