package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/infrastructure/auth"
	"github.com/tripline/tripline/internal/infrastructure/config"
	sharedConfig "github.com/tripline/tripline/internal/shared/config"
)

func testConfig() *config.Config {
	return &config.Config{Auth: sharedConfig.AuthConfig{JWT: sharedConfig.JWTConfig{
		Secret:           "cli-secret",
		Issuer:           "tripline",
		AccessExpMinutes: 30,
	}}}
}

func TestIssue(t *testing.T) {
	cfg := testConfig()
	var out bytes.Buffer

	require.NoError(t, issue(&out, cfg, 42, auth.RoleAdmin))

	claims, err := auth.NewJWTService("cli-secret", "tripline", 30).Verify(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.MemberID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestIssue_Rejects(t *testing.T) {
	cfg := testConfig()

	assert.Error(t, issue(&bytes.Buffer{}, cfg, 0, auth.RoleMember))
	assert.Error(t, issue(&bytes.Buffer{}, cfg, 1, auth.Role("root")))
}
