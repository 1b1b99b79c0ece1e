package auth

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, exp, err := m.Issue("user-1", "recruiter", "r@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "recruiter", claims.Role)
	assert.Equal(t, "r@example.com", claims.Email)
}

func TestTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	token, _, err := m.Issue("user-1", "candidate", "c@example.com")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).Parse(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		late := NewTokenManager("test-secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Parse(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no secret configured", func(t *testing.T) {
		empty := NewTokenManager("", time.Hour)
		_, _, err := empty.Issue("user-1", "candidate", "c@example.com")
		assert.Error(t, err)
		_, err = empty.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHasher(t *testing.T) {
	h := NewHasher(4)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, h.Compare(hash, "correct horse"))
	assert.False(t, h.Compare(hash, "wrong"))
	assert.False(t, h.Compare("not-a-hash", "correct horse"))
}

func TestNewHasherClampsCost(t *testing.T) {
	assert.Equal(t, 10, NewHasher(0).cost)
	assert.Equal(t, 10, NewHasher(99).cost)
	assert.Equal(t, 12, NewHasher(12).cost)
}

func TestNewResetCode(t *testing.T) {
	re := regexp.MustCompile(`^[1-9][0-9]{5}$`)
	for i := 0; i < 50; i++ {
		code, err := NewResetCode()
		require.NoError(t, err)
		assert.Regexp(t, re, code)
	}
}
