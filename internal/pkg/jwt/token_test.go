package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresource/emresource/internal/pkg/models"
)

func testConfig(expirationMinutes int) *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Expiration: expirationMinutes,
			Issuer:     "emresource-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig(60)
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "alice@example.com", models.RoleDonor, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, string(models.RoleDonor), claims["role"])
	assert.Equal(t, "emresource-test", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig(60)

	token, _, err := GenerateToken(uuid.New(), "alice@example.com", models.RoleDonor, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig(-1)

	token, _, err := GenerateToken(uuid.New(), "alice@example.com", models.RoleDonor, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret-key")
	assert.Error(t, err)
}
