package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// Sentinel failures for the pre-request part of the auth lifecycle.
// Everything after a request is issued flows through describe.
var (
	// ErrNoCredentials means the OAuth client credentials file is absent.
	ErrNoCredentials = errors.New("gateway: no client credentials found, place your OAuth credentials JSON at the configured path")

	// ErrNoToken means the user has never signed in on this machine.
	ErrNoToken = errors.New("gateway: not signed in, run 'agenda login' first")

	// ErrInsufficientScope means the cached token lacks calendar access.
	ErrInsufficientScope = errors.New("gateway: the saved session is missing calendar access, run 'agenda login' again and grant calendar permission")
)

// describe flattens any provider or token error into a single
// descriptive error before it crosses the gateway boundary. No raw
// provider error objects reach the callers.
func describe(op string, err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized:
			return fmt.Errorf("gateway: %s: session is invalid or expired, run 'agenda login' to re-authenticate", op)
		case http.StatusForbidden:
			if scopeDenied(gerr) {
				return fmt.Errorf("gateway: %s: the granted permissions do not include calendar access, run 'agenda login' again and approve the calendar scope", op)
			}
			return fmt.Errorf("gateway: %s: the provider denied access to calendar data", op)
		}
		return fmt.Errorf("gateway: %s: provider request failed (%d %s)", op, gerr.Code, gerr.Message)
	}

	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return fmt.Errorf("gateway: %s: the saved token is invalid or expired, run 'agenda login' to re-authenticate", op)
	}

	return fmt.Errorf("gateway: %s: %v", op, err)
}

// scopeDenied distinguishes a missing-scope 403 from a plain denial.
func scopeDenied(gerr *googleapi.Error) bool {
	for _, item := range gerr.Errors {
		if item.Reason == "insufficientPermissions" {
			return true
		}
	}
	msg := strings.ToLower(gerr.Message)
	return strings.Contains(msg, "insufficient") && strings.Contains(msg, "scope")
}
