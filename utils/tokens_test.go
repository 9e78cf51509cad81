package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TOKENS_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOrDefault("TOKENS_TEST_KEY", "fallback"))

	t.Setenv("TOKENS_TEST_KEY", "   ")
	assert.Equal(t, "fallback", EnvOrDefault("TOKENS_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", EnvOrDefault("TOKENS_TEST_MISSING", "fallback"))
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, token, 32, "hex doubles the byte length")

	other, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a****a@e******.com", MaskEmail("amelia@example.com"))
	assert.Equal(t, "a*@e******.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "a@example.com", MaskEmail("a@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
