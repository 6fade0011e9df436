package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/mollie-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	tests := getTokenValidityTestCases()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.token.Valid())
		})
	}
}

func getTokenValidityTestCases() []struct {
	name     string
	token    *auth.Token
	expected bool
} {
	return []struct {
		name     string
		token    *auth.Token
		expected bool
	}{
		{
			name:     "nil token",
			token:    nil,
			expected: false,
		},
		{
			name: "empty access token",
			token: &auth.Token{
				AccessToken: "",
			},
			expected: false,
		},
		{
			name: "valid token without expiry",
			token: &auth.Token{
				AccessToken: "test-token",
			},
			expected: true,
		},
		{
			name: "expired token",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   time.Now().Add(-1 * time.Hour),
			},
			expected: false,
		},
		{
			name: "token expiring within buffer",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   time.Now().Add(15 * time.Second),
			},
			expected: false,
		},
		{
			name: "token expiring just outside buffer",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   time.Now().Add(35 * time.Second),
			},
			expected: true,
		},
	}
}

func TestTokenStore(t *testing.T) {
	t.Parallel()
	t.Run("new store is empty", testNewStoreEmpty)
	t.Run("set and get token", testSetAndGetToken)
	t.Run("clear token", testClearToken)
}

func testNewStoreEmpty(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	assert.Nil(t, store.Get())
}

func testSetAndGetToken(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	token := &auth.Token{
		AccessToken: "test-token",
		TokenType:   "bearer",
	}

	store.Set(token)
	retrieved := store.Get()
	require.NotNil(t, retrieved)
	assert.Equal(t, token.AccessToken, retrieved.AccessToken)
	assert.Equal(t, token.TokenType, retrieved.TokenType)
}

func testClearToken(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	store.Set(&auth.Token{AccessToken: "test-token"})
	assert.NotNil(t, store.Get())

	store.Clear()
	assert.Nil(t, store.Get())
}

func TestNewAPIKeyManager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		wantErr bool
		isTest  bool
	}{
		{name: "test key", key: "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM", isTest: true},
		{name: "live key", key: "live_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM"},
		{name: "surrounding whitespace", key: "  test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM\n", isTest: true},
		{name: "too short", key: "test_short", wantErr: true},
		{name: "wrong prefix", key: "prod_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			manager, err := auth.NewAPIKeyManager(tt.key)
			if tt.wantErr {
				require.ErrorIs(t, err, auth.ErrInvalidAPIKey)
				assert.NotContains(t, err.Error(), "XLSlXsM")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.isTest, manager.IsTestKey())
			assert.False(t, manager.UsesOAuth())

			token, err := manager.GetToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "dHar4XY7LxsDOtmnkVtjNVWXLSlXsM", token[5:])
		})
	}
}

func TestNewAccessTokenManager(t *testing.T) {
	t.Parallel()

	manager, err := auth.NewAccessTokenManager("access_Wwvu7egPcJLLJ9Kb7J632x8wJ2zMeJ")
	require.NoError(t, err)
	assert.True(t, manager.UsesOAuth())
	assert.False(t, manager.IsTestKey())

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access_Wwvu7egPcJLLJ9Kb7J632x8wJ2zMeJ", token)

	_, err = auth.NewAccessTokenManager("test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM")
	require.ErrorIs(t, err, auth.ErrInvalidAccessToken)
}
