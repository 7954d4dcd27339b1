package pagebrief_test

import (
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate_MissingKey(t *testing.T) {
	t.Parallel()

	err := pagebrief.Config{}.Validate()

	require.Error(t, err)
	assert.Equal(t, pagebrief.ECONFIG, pagebrief.ErrorCode(err))
}

func TestConfig_Validate_WhitespaceKey(t *testing.T) {
	t.Parallel()

	err := pagebrief.Config{APIKey: " key-with-space "}.Validate()

	require.Error(t, err)
	assert.Equal(t, pagebrief.ECONFIG, pagebrief.ErrorCode(err))
}

func TestConfig_Validate_OK(t *testing.T) {
	t.Parallel()

	assert.NoError(t, pagebrief.Config{APIKey: "test-key"}.Validate())
}

func TestConfig_ModelOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagebrief.DefaultModel, pagebrief.Config{}.ModelOrDefault())
	assert.Equal(t, "gemini-2.5-pro", pagebrief.Config{Model: "gemini-2.5-pro"}.ModelOrDefault())
}
