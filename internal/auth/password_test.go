package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.NoError(t, ComparePassword(hash, "Sup3rSecret"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashPasswordUnique(t *testing.T) {
	first, err := HashPassword("Sup3rSecret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("Sup3rSecret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
