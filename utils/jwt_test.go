package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ExtractIDFromToken(tampered)
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	h3 := HashToken("abd")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
}
