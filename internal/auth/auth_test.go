package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, h.VerifyPassword("correct horse", hash))
	assert.ErrorIs(t, h.VerifyPassword("wrong horse", hash), ErrPasswordMismatch)
}

func TestHasher_LengthLimits(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = h.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNewTokenManager_WeakSecret(t *testing.T) {
	_, err := NewTokenManager("short", time.Hour, "test")
	assert.ErrorIs(t, err, ErrWeakSecret)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour, "test")
	require.NoError(t, err)

	id := uuid.New()
	token, expiresAt, err := m.Generate(id, "a@example.com", "ADMIN")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestTokenManager_Expired(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour, "test")
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }
	token, _, err := m.Generate(uuid.New(), "a@example.com", "USER")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	signer, err := NewTokenManager(testSecret, time.Hour, "test")
	require.NoError(t, err)
	verifier, err := NewTokenManager(strings.Repeat("z", 32), time.Hour, "test")
	require.NoError(t, err)

	token, _, err := signer.Generate(uuid.New(), "a@example.com", "USER")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour, "test")
	require.NoError(t, err)

	claims := Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
