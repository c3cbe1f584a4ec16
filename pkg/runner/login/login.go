package login

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"tableflip.dev/agenda/pkg/gateway"
)

// Login runs the three-legged OAuth flow: print the authorization URL,
// read the code back, exchange it, verify the granted scope includes
// calendar access, and cache the token.
type Login struct {
	CredentialsPath string
	TokenPath       string

	In  io.Reader
	Out io.Writer
}

func (l *Login) Do(ctx context.Context) error {
	if l.In == nil || l.Out == nil {
		return errors.New("login: no terminal")
	}

	cfg, err := gateway.OAuthConfig(l.CredentialsPath)
	if err != nil {
		return err
	}

	state := uuid.NewString()
	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Fprintf(l.Out, "Open this URL in your browser and approve calendar access:\n\n%s\n\n", url)
	fmt.Fprint(l.Out, "Paste the authorization code here: ")

	code, err := bufio.NewReader(l.In).ReadString('\n')
	if err != nil && code == "" {
		return fmt.Errorf("login: read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("login: no authorization code entered")
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("login: exchange authorization code: %w", err)
	}

	granted, _ := tok.Extra("scope").(string)
	if err := gateway.VerifyScope(granted); err != nil {
		return err
	}

	if err := gateway.SaveToken(l.TokenPath, tok, granted); err != nil {
		return err
	}

	fmt.Fprintf(l.Out, "Signed in. Token saved to %s\n", l.TokenPath)
	return nil
}
