package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.True(t, CheckPassword(hashed, "secret123"))
	assert.False(t, CheckPassword(hashed, "wrong-pass"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}

func TestNextAgentCode(t *testing.T) {
	assert.Equal(t, "AG0001", NextAgentCode(0))
	assert.Equal(t, "AG0042", NextAgentCode(41))
	assert.Equal(t, "AG10000", NextAgentCode(9999))
}

func TestNextOperatorCode(t *testing.T) {
	assert.Equal(t, "OP0001", NextOperatorCode(0))
	assert.Equal(t, "OP0100", NextOperatorCode(99))
}
