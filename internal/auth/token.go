package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// TokenConfig holds a pre-issued AWX personal access token.
type TokenConfig struct {
	Token string `mapstructure:"token"`
}

// Acquire returns a Bearer header value for the configured token.
func (c TokenConfig) Acquire(_ context.Context) (string, error) {
	t := strings.TrimSpace(c.Token)
	if t == "" {
		return "", errors.New("token: token is required")
	}
	return "Bearer " + t, nil
}

// TokenStore keeps acquired credentials by logical name so several AWX
// instances can be addressed by one process.
type TokenStore struct {
	mu     sync.RWMutex
	byName map[string]string
}

func (s *TokenStore) set(name, value string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || value == "" {
		return
	}
	s.mu.Lock()
	s.byName[name] = value
	s.mu.Unlock()
}

func (s *TokenStore) get(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	s.mu.RLock()
	v, ok := s.byName[name]
	s.mu.RUnlock()
	return v, ok
}

func (s *TokenStore) clear() {
	s.mu.Lock()
	s.byName = make(map[string]string)
	s.mu.Unlock()
}

var store = &TokenStore{byName: make(map[string]string)}

// SetToken stores a credential value under a logical name.
func SetToken(name, value string) { store.set(name, value) }

// GetToken returns the credential stored under name.
func GetToken(name string) (string, bool) { return store.get(name) }

// ClearTokens removes every stored credential. Intended for tests.
func ClearTokens() { store.clear() }
