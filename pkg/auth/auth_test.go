package auth_test

import (
	"os"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/biblioteca-service/pkg/auth"
)

func TestPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, auth.CheckPassword(string(hash), "s3cret"))
	require.ErrorIs(t, auth.CheckPassword(string(hash), "wrong"), auth.ErrInvalidPassword)
}

func TestToken(t *testing.T) {
	cfg := auth.Config{JWTSecret: "test", TokenTTL: time.Hour}
	token, err := auth.IssueToken(cfg, 3, "ana", time.Now())
	require.NoError(t, err)

	claims, err := auth.ParseToken(cfg, token)
	require.NoError(t, err)
	require.Equal(t, 3, claims.Profile.ID)
	require.Equal(t, "ana", claims.Profile.Username)

	_, err = auth.ParseToken(auth.Config{JWTSecret: "other"}, token)
	require.Error(t, err)

	expired, err := auth.IssueToken(cfg, 3, "ana", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = auth.ParseToken(cfg, expired)
	require.Error(t, err)
}

func TestConfig_Secret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	var cfg auth.Config
	require.Error(t, envconfig.Process("", &cfg))

	t.Setenv("JWT_SECRET", "  ")
	cfg = auth.Config{}
	require.NoError(t, envconfig.Process("", &cfg))
	require.ErrorIs(t, cfg.Validate(), auth.ErrEmptySecret)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg = auth.Config{}
	require.NoError(t, envconfig.Process("", &cfg))
	require.NoError(t, cfg.Validate())
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
}
