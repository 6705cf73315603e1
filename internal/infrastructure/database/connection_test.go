package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/shared/config"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "tripline.db"),
	}

	conn, err := Open(cfg)
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestInitAndClose_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     "SQLite",
		SQLitePath: filepath.Join(t.TempDir(), "tripline.db"),
	}

	require.NoError(t, Init(cfg))
	assert.NotNil(t, Get())

	require.NoError(t, Close())
	assert.Nil(t, Get())
	assert.NoError(t, Close())
}

func TestOpen_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{name: "unknown driver", cfg: config.DatabaseConfig{Driver: "oracle"}},
		{name: "sqlite without path", cfg: config.DatabaseConfig{Driver: "sqlite"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(&tt.cfg)
			assert.Error(t, err)
		})
	}
}
