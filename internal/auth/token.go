package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrInvalidAccessToken = errors.New("invalid OAuth access token")
	ErrNoToken            = errors.New("no token available")
)

const expiryBuffer = 30 * time.Second

var (
	apiKeyPattern      = regexp.MustCompile(`^(live|test)_\w{30,}$`)
	accessTokenPattern = regexp.MustCompile(`^access_\w+$`)
)

// TokenManager supplies the bearer token for each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// Token represents a bearer credential.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

// Valid reports whether the token can still be used. Tokens without expiry
// never expire; others are treated as expired 30 seconds early.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(expiryBuffer).Before(t.ExpiresAt)
}

// TokenStore holds a token safely for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.Set(nil)
}

// StaticTokenManager returns the same credential for every request.
type StaticTokenManager struct {
	store *TokenStore
	kind  string
}

// NewAPIKeyManager validates key ("live_" or "test_" followed by at least 30
// word characters) and returns a manager for it.
func NewAPIKeyManager(key string) (*StaticTokenManager, error) {
	key = strings.TrimSpace(key)
	if !apiKeyPattern.MatchString(key) {
		return nil, fmt.Errorf("%w: '%s', an API key must start with 'test_' or 'live_' and must be at least 30 characters long", ErrInvalidAPIKey, mask(key))
	}

	return newStatic(key, "api_key"), nil
}

// NewAccessTokenManager validates an OAuth or organization access token
// ("access_" prefix) and returns a manager for it.
func NewAccessTokenManager(token string) (*StaticTokenManager, error) {
	token = strings.TrimSpace(token)
	if !accessTokenPattern.MatchString(token) {
		return nil, fmt.Errorf("%w: '%s', an access token must start with 'access_'", ErrInvalidAccessToken, mask(token))
	}

	return newStatic(token, "access_token"), nil
}

func newStatic(value, kind string) *StaticTokenManager {
	store := NewTokenStore()
	store.Set(&Token{AccessToken: value, TokenType: "bearer"})

	return &StaticTokenManager{store: store, kind: kind}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", ErrNoToken
	}

	return token.AccessToken, nil
}

// UsesOAuth reports whether the credential is an access token. Some
// endpoints require a profileId or testmode parameter only in that case.
func (m *StaticTokenManager) UsesOAuth() bool {
	return m.kind == "access_token"
}

// IsTestKey reports whether the credential is a test mode API key.
func (m *StaticTokenManager) IsTestKey() bool {
	token := m.store.Get()

	return token != nil && strings.HasPrefix(token.AccessToken, "test_")
}

func mask(value string) string {
	const visible = 5
	if len(value) <= visible {
		return strings.Repeat("*", len(value))
	}

	return value[:visible] + strings.Repeat("*", len(value)-visible)
}
