package devserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/posclient/internal/client/services"
	"github.com/dmitrijs2005/posclient/internal/common"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, expiresAt, err := tm.Generate(42, "ana@example.com")
	require.NoError(t, err)

	id, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	exp, ok := services.TokenExpiry(token)
	require.True(t, ok, "the client can read the expiry")
	assert.WithinDuration(t, expiresAt, exp, time.Second)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	token, _, err := tm.Generate(1, "a@b.c")
	require.NoError(t, err)

	other := NewTokenManager("other", time.Minute)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken, "wrong secret")

	tm.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken, "expired")

	_, err = tm.Parse("garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secreto123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.NoError(t, ComparePassword(hash, "secreto123"))
	assert.Error(t, ComparePassword(hash, "otra"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DEVSERVER_HOST", "0.0.0.0")
	t.Setenv("DEVSERVER_PORT", "9090")
	t.Setenv("DEVSERVER_JWT_SECRET", "")
	t.Setenv("DEVSERVER_TOKEN_TTL_MINUTES", "5")
	t.Setenv("DEVSERVER_SEED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.False(t, cfg.Seed)
	assert.Len(t, cfg.JWTSecret, 64, "random secret when none is configured")

	t.Setenv("DEVSERVER_TOKEN_TTL_MINUTES", "soon")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}
