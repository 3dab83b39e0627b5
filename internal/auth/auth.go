// Package auth acquires the credential value attached to every outgoing AWX
// request. Providers are registered per type key; configuration is a
// loosely-typed map decoded with mapstructure so the config file shape stays
// flat. Acquired values are full header values (e.g. "Bearer ..." or
// "Basic ..."), stored by logical name so multiple AWX instances can coexist.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Method is the plugin interface for an authentication method. Acquire
// returns the header value to inject (e.g. "Basic ..." or "Bearer ...").
type Method interface {
	Acquire(ctx context.Context) (value string, err error)
}

// Factory builds a Method from a loosely-typed spec map.
type Factory func(spec map[string]any) (Method, error)

var providers = map[string]Factory{}

func normalizeKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Register registers an auth provider factory under a type key
// (e.g. "token", "basic", "oauth2", "session"). The key is normalized to lower-case.
func Register(typ string, f Factory) {
	key := normalizeKey(typ)
	if key == "" || f == nil {
		return
	}
	providers[key] = f
}

// Acquire builds a Method for the provider type, acquires the credential and,
// when name is non-empty, stores it in the named token store.
func Acquire(ctx context.Context, typ, name string, spec map[string]any) (string, error) {
	f, ok := providers[normalizeKey(typ)]
	if !ok {
		return "", errors.New("auth: unsupported provider type: " + typ)
	}
	m, err := f(spec)
	if err != nil {
		return "", err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	v, err := m.Acquire(ctx)
	if err == nil && strings.TrimSpace(name) != "" {
		SetToken(name, v)
	}
	return v, err
}

// Built-in provider registrations
func init() {
	Register("token", func(spec map[string]any) (Method, error) {
		var c TokenConfig
		if err := mapstructure.Decode(spec, &c); err != nil {
			return nil, err
		}
		return c, nil
	})

	Register("basic", func(spec map[string]any) (Method, error) {
		var c BasicConfig
		if err := mapstructure.Decode(spec, &c); err != nil {
			return nil, err
		}
		return c, nil
	})

	Register("oauth2", func(spec map[string]any) (Method, error) {
		var c OAuth2Config
		if err := mapstructure.Decode(spec, &c); err != nil {
			return nil, err
		}
		return c, nil
	})

	Register("session", func(spec map[string]any) (Method, error) {
		var c SessionConfig
		if err := mapstructure.Decode(spec, &c); err != nil {
			return nil, err
		}
		return &c, nil
	})
}
