package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomStringRejectsBadInput(t *testing.T) {
	_, err := RandomString(-1, "abc")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = RandomString(4, "")
	assert.ErrorIs(t, err, ErrInvalidAlphabet)

	_, err = RandomString(4, strings.Repeat("a", 257))
	assert.ErrorIs(t, err, ErrInvalidAlphabet)
}

func TestRandomStringUsesAlphabet(t *testing.T) {
	empty, err := RandomString(0, "abc")
	require.NoError(t, err)
	assert.Empty(t, empty)

	single, err := RandomString(6, "Z")
	require.NoError(t, err)
	assert.Equal(t, "ZZZZZZ", single)

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789x"
	value, err := RandomString(200, alphabet)
	require.NoError(t, err)
	require.Len(t, value, 200)
	for _, char := range value {
		assert.Truef(t, strings.ContainsRune(alphabet, char), "unexpected char %q", char)
	}
}
