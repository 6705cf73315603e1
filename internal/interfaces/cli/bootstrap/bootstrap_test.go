package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/shared/biztime"
)

func TestGinMode(t *testing.T) {
	cases := map[string]string{
		"production":  "release",
		"prod":        "release",
		"release":     "release",
		"test":        "test",
		"testing":     "test",
		"development": "debug",
		"":            "debug",
	}
	for env, want := range cases {
		assert.Equal(t, want, GinMode(env), env)
	}
}

func TestLoad(t *testing.T) {
	t.Cleanup(func() { _ = biztime.Init("UTC") })

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
biztime:
  timezone: Asia/Seoul
logger:
  level: warn
  format: json
`), 0o644))

	cfg, log, err := Load("production", path)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "Asia/Seoul", biztime.Location().String())
}

func TestLoad_BadTimezone(t *testing.T) {
	t.Cleanup(func() { _ = biztime.Init("UTC") })

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("biztime:\n  timezone: Mars/Olympus\n"), 0o644))

	_, _, err := Load("test", path)
	assert.Error(t, err)
}
