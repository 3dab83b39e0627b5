package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// SessionConfig mints a personal access token through the AWX token endpoint
// (POST /api/v2/tokens/) using basic credentials. This replaces a pre-issued
// token for installations where operators only hand out passwords.
type SessionConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	Description string `mapstructure:"description"`
	// Scope is "read" or "write"; defaults to "write".
	Scope string `mapstructure:"scope"`
}

// Acquire creates the token and returns a Bearer header value.
func (c *SessionConfig) Acquire(ctx context.Context) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	u := strings.TrimSpace(c.Username)
	p := strings.TrimSpace(c.Password)
	if base == "" || u == "" || p == "" {
		return "", errors.New("session: base_url, username and password are required")
	}
	scope := strings.TrimSpace(c.Scope)
	if scope == "" {
		scope = "write"
	}
	desc := strings.TrimSpace(c.Description)
	if desc == "" {
		desc = "awxtool session token"
	}

	cred := base64.StdEncoding.EncodeToString([]byte(u + ":" + p))
	resp, err := resty.New().R().
		SetContext(ctx).
		SetHeader("Authorization", "Basic "+cred).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"description": desc, "application": nil, "scope": scope}).
		Post(base + "/api/v2/tokens/")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 201 {
		return "", fmt.Errorf("session: token creation returned %d", resp.StatusCode())
	}
	tok := gjson.GetBytes(resp.Body(), "token").String()
	if strings.TrimSpace(tok) == "" {
		return "", errors.New("session: token not found in response")
	}
	return "Bearer " + tok, nil
}
