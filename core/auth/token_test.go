package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_IssueAndValidate(t *testing.T) {
	issuer := NewIssuer(Config{Secret: "test-secret", TokenTTLMinutes: 5})

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestIssuer_Validate_WrongSecret(t *testing.T) {
	issuer := NewIssuer(Config{Secret: "test-secret", TokenTTLMinutes: 5})
	other := NewIssuer(Config{Secret: "other-secret", TokenTTLMinutes: 5})

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Validate_Garbage(t *testing.T) {
	issuer := NewIssuer(Config{Secret: "test-secret", TokenTTLMinutes: 5})

	_, err := issuer.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Validate_Expired(t *testing.T) {
	// Zero TTL falls back to an hour, so build an already expired issuer
	// by issuing with a negative lifetime.
	issuer := &Issuer{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
