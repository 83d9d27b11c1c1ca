package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "nebengdinas-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	tests := []struct {
		name     string
		identity models.Identity
	}{
		{
			name:     "Employee",
			identity: models.Identity{UserID: uuid.New(), Email: "rina@corp.id", Name: "Rina", Role: models.RoleEmployee},
		},
		{
			name:     "Admin",
			identity: models.Identity{UserID: uuid.New(), Email: "ops@corp.id", Name: "Ops", Role: models.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()

			token, expiresAt, err := GenerateToken(tt.identity, cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

			got, err := ValidateToken(token, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.identity, got)
		})
	}
}

func TestValidateToken_Failures(t *testing.T) {
	cfg := getTestConfig()
	identity := models.Identity{UserID: uuid.New(), Role: models.RoleEmployee}

	valid, _, err := GenerateToken(identity, cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.Expiration = -1
	expired, _, err := GenerateToken(identity, expiredCfg)
	require.NoError(t, err)

	otherIssuer := cfg
	otherIssuer.Issuer = "someone-else"
	foreign, _, err := GenerateToken(identity, otherIssuer)
	require.NoError(t, err)

	noRole, _, err := GenerateToken(models.Identity{UserID: uuid.New()}, cfg)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: identity.UserID.String(), Role: "admin"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"Wrong secret", valid, "other-secret"},
		{"Expired", expired, cfg.Secret},
		{"Wrong issuer", foreign, cfg.Secret},
		{"Missing role", noRole, cfg.Secret},
		{"Unsigned", unsigned, cfg.Secret},
		{"Garbage", "not.a.token", cfg.Secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Secret = tt.secret
			_, err := ValidateToken(tt.token, c)
			assert.Error(t, err)
		})
	}
}
