package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice-id",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)
	return s
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "credentials.yaml")
	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.False(t, creds.Authorized())
	assert.Equal(t, path, creds.Path())
}

func TestCredentialsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stickynotes", "credentials.yaml")
	creds, err := LoadCredentials(path)
	require.NoError(t, err)

	creds.APIURL = "http://notes.example:8000"
	creds.Username = "alice"
	creds.Access = "a.b.c"
	creds.Refresh = "d.e.f"
	require.NoError(t, creds.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dir, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dir.Mode().Perm())

	loaded, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "http://notes.example:8000", loaded.APIURL)
	assert.Equal(t, "alice", loaded.Username)
	assert.Equal(t, "a.b.c", loaded.AccessToken())
	assert.Equal(t, "d.e.f", loaded.RefreshToken())
	assert.True(t, loaded.Authorized())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestCredentialsClearKeepsAPIURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	creds := &Credentials{APIURL: "http://x", Username: "alice", Access: "a", Refresh: "r", path: path}
	require.NoError(t, creds.Save())

	require.NoError(t, creds.Clear())

	loaded, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "http://x", loaded.APIURL)
	assert.Empty(t, loaded.Username)
	assert.False(t, loaded.Authorized())
	assert.Empty(t, loaded.RefreshToken())
}

func TestSetAccessTokenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	creds := &Credentials{Access: "old", Refresh: "r", path: path}

	require.NoError(t, creds.SetAccessToken("new"))

	loaded, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.AccessToken())
	assert.Equal(t, "r", loaded.RefreshToken())
}

func TestLoadCredentialsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("access: [unclosed"), 0o600))

	_, err := LoadCredentials(path)
	assert.Error(t, err)
}

func TestAccessExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		access string
		want   bool
	}{
		{name: "empty", access: "", want: true},
		{name: "garbage", access: "not-a-jwt", want: true},
		{name: "valid", access: signedToken(t, now.Add(time.Minute)), want: false},
		{name: "expired", access: signedToken(t, now.Add(-time.Minute)), want: true},
		{name: "expires now", access: signedToken(t, now), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := &Credentials{Access: tt.access}
			assert.Equal(t, tt.want, creds.AccessExpired(now))
		})
	}
}
