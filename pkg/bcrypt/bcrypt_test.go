package bcrypt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hasher := NewWithCost(bcrypt.MinCost)

	digest, err := hasher.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", digest)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte("s3cret")))
}

func TestHashPasswordLongInput(t *testing.T) {
	hasher := NewWithCost(bcrypt.MinCost)
	password := strings.Repeat("a", MaxPasswordBytes) + "tail"

	digest, err := hasher.HashPassword(password)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte(password[:MaxPasswordBytes])))
}

func TestHashPasswordIsSalted(t *testing.T) {
	hasher := NewWithCost(bcrypt.MinCost)

	first, err := hasher.HashPassword("same")
	require.NoError(t, err)
	second, err := hasher.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewWithCostOutOfRange(t *testing.T) {
	svc := NewWithCost(bcrypt.MaxCost + 1).(*bcryptService)
	assert.Equal(t, bcrypt.DefaultCost, svc.cost)
}

func TestNewReadsCostFromEnv(t *testing.T) {
	t.Setenv("BCRYPT_COST", "5")
	svc := New().(*bcryptService)
	assert.Equal(t, 5, svc.cost)

	t.Setenv("BCRYPT_COST", "not-a-number")
	svc = New().(*bcryptService)
	assert.Equal(t, bcrypt.DefaultCost, svc.cost)
}
