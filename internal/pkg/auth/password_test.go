package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erdem/tamatch/internal/pkg/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("fdsa")
	require.NoError(t, err)
	assert.NotEqual(t, "fdsa", hash)

	assert.True(t, auth.CheckPassword(hash, "fdsa"))
	assert.False(t, auth.CheckPassword(hash, "fdsA"))
	assert.False(t, auth.CheckPassword(hash, ""))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := auth.HashPassword("fdsa")
	require.NoError(t, err)
	second, err := auth.HashPassword("fdsa")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
