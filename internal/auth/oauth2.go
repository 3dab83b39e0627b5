package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/oauth2"
)

// OAuth2Config acquires a token from an AWX OAuth2 application using the
// resource owner password credentials grant against <base_url>/api/o/token/.
type OAuth2Config struct {
	BaseURL   string   `mapstructure:"base_url"`
	TokenURL  string   `mapstructure:"token_url"`
	ClientID  string   `mapstructure:"client_id"`
	ClientSec string   `mapstructure:"client_secret"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Scopes    []string `mapstructure:"scopes"`
}

// Acquire obtains a Bearer token via golang.org/x/oauth2. The token URL
// defaults to the AWX application token endpoint under BaseURL.
func (c OAuth2Config) Acquire(ctx context.Context) (string, error) {
	tokenURL := strings.TrimSpace(c.TokenURL)
	if tokenURL == "" {
		base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
		if base == "" {
			return "", errors.New("oauth2: token_url or base_url is required")
		}
		tokenURL = base + "/api/o/token/"
	}
	clientID := strings.TrimSpace(c.ClientID)
	username := strings.TrimSpace(c.Username)
	password := strings.TrimSpace(c.Password)
	if clientID == "" || username == "" || password == "" {
		return "", errors.New("oauth2: client_id, username and password are required")
	}

	ocfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: strings.TrimSpace(c.ClientSec),
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		Scopes:       c.Scopes,
	}
	tok, err := ocfg.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !tok.Valid() || strings.TrimSpace(tok.AccessToken) == "" {
		return "", errors.New("oauth2: received invalid token")
	}
	typ := strings.TrimSpace(tok.TokenType)
	if typ == "" {
		typ = "Bearer"
	}
	return typ + " " + tok.AccessToken, nil
}
