package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gopkg.in/yaml.v3"
)

const credentialsTempPrefix = "credentials-tmp-"

// Credentials is the logged-in session kept between command runs. It
// implements TokenSource; a refreshed access token is written straight back to
// disk.
type Credentials struct {
	APIURL   string `yaml:"api_url,omitempty"`
	Username string `yaml:"username,omitempty"`
	Access   string `yaml:"access,omitempty"`
	Refresh  string `yaml:"refresh,omitempty"`

	path string
}

// DefaultCredentialsPath is stickynotes/credentials.yaml under the user config
// directory ($XDG_CONFIG_HOME or ~/.config on Linux).
func DefaultCredentialsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "stickynotes", "credentials.yaml"), nil
}

// LoadCredentials reads the file at path. A missing file is an empty session.
func LoadCredentials(path string) (*Credentials, error) {
	creds := &Credentials{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return creds, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if err := yaml.Unmarshal(data, creds); err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", path, err)
	}
	return creds, nil
}

func (c *Credentials) Path() string {
	return c.path
}

// Save writes the file with owner-only permissions.
func (c *Credentials) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return writeFileAtomic(c.path, data, 0o600)
}

// Clear forgets the session. The API URL is kept.
func (c *Credentials) Clear() error {
	c.Username = ""
	c.Access = ""
	c.Refresh = ""
	return c.Save()
}

func (c *Credentials) Authorized() bool {
	return c.Access != ""
}

// AccessExpired reads the exp claim of the access token without checking the
// signature. Tokens that cannot be decoded count as expired.
func (c *Credentials) AccessExpired(now time.Time) bool {
	if c.Access == "" {
		return true
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Access, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}

func (c *Credentials) AccessToken() string {
	return c.Access
}

func (c *Credentials) RefreshToken() string {
	return c.Refresh
}

func (c *Credentials) SetAccessToken(access string) error {
	c.Access = access
	return c.Save()
}

func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), credentialsTempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	return nil
}
