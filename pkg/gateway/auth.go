package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Scope is the delegated access this program asks for: read/write on the
// user's calendars.
const Scope = calendar.CalendarScope

// OAuthConfig builds the three-legged OAuth client config from the
// credentials JSON at path.
func OAuthConfig(path string) (*oauth2.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoCredentials
		}
		return nil, fmt.Errorf("gateway: read credentials: %w", err)
	}
	cfg, err := google.ConfigFromJSON(b, Scope)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse credentials: %w", err)
	}
	return cfg, nil
}

// LoadToken reads the cached OAuth token and verifies it carries the
// calendar scope. A token granted without calendar access is rejected
// here rather than surfacing later as an opaque provider 403.
func LoadToken(path string) (*oauth2.Token, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoToken
		}
		return nil, fmt.Errorf("gateway: read token: %w", err)
	}
	var payload struct {
		oauth2.Token
		Scope string `json:"scope,omitempty"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("gateway: parse token: %w", err)
	}
	if payload.AccessToken == "" && payload.RefreshToken == "" {
		return nil, ErrNoToken
	}
	if err := VerifyScope(payload.Scope); err != nil {
		return nil, err
	}
	return &payload.Token, nil
}

// SaveToken writes the token (plus its granted scope) next to the
// configured path, creating parent directories as needed.
func SaveToken(path string, tok *oauth2.Token, grantedScope string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("gateway: ensure token directory: %w", err)
	}
	payload := struct {
		*oauth2.Token
		Scope string `json:"scope,omitempty"`
	}{Token: tok, Scope: grantedScope}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gateway: encode token: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("gateway: write token: %w", err)
	}
	return nil
}

// VerifyScope checks a space-separated granted-scope list for calendar
// access. An empty list is accepted: older tokens did not record their
// scopes, and the provider still enforces the real grant server-side.
func VerifyScope(granted string) error {
	if strings.TrimSpace(granted) == "" {
		return nil
	}
	for _, s := range strings.Fields(granted) {
		if s == Scope {
			return nil
		}
	}
	return ErrInsufficientScope
}
