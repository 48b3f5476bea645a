package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	m := NewTokenManager("test-secret", 30*time.Minute)

	token, err := m.Issue("alice@example.com")
	require.NoError(t, err)

	email, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestForeignSecretRejected(t *testing.T) {
	issuer := NewTokenManager("one-secret", 30*time.Minute)
	verifier := NewTokenManager("other-secret", 30*time.Minute)

	token, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", 30*time.Minute)

	_, err := m.Verify("not.a.token")
	assert.Error(t, err)

	_, err = m.Verify("")
	assert.Error(t, err)
}
