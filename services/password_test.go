package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("c0rrect-horse!")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(hash, "$"))

	ok, err := VerifyPassword(hash, "c0rrect-horse!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong-horse1!")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("same-pass1!")
	require.NoError(t, err)
	b, err := HashPassword("same-pass1!")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, stored := range []string{"", "nodollar", "!!!$abc", "c2FsdA$", "$aGFzaA"} {
		ok, err := VerifyPassword(stored, "anything")
		assert.False(t, ok, stored)
		assert.ErrorIs(t, err, ErrInvalidHash, stored)
	}
}

func TestHashPasswordRequiresInput(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}
