package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ConfigUnitSuite struct {
	suite.Suite
}

func (s *ConfigUnitSuite) TestLoadFromFile(t provider.T) {
	dir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "test.env")
	content := "HTTP_PORT=9191\nHTTP_MODE=RO\nSESSION_TTL=30m\nBOT_USERNAME=TestBot\nDB_NAME=catalog\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	for _, k := range []string{"HTTP_PORT", "HTTP_MODE", "SESSION_TTL", "BOT_USERNAME", "DB_NAME"} {
		k := k
		prev, had := os.LookupEnv(k)
		defer func() {
			if had {
				os.Setenv(k, prev)
			} else {
				os.Unsetenv(k)
			}
		}()
		os.Unsetenv(k)
	}

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.HTTP.Port)
	assert.Equal(t, "RO", cfg.HTTP.Mode)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "TestBot", cfg.TelegramBot.Username)
	assert.Equal(t, "catalog", cfg.Postgres.DBName)
	assert.Equal(t, "mock", cfg.S3.ClientType)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
}

func (s *ConfigUnitSuite) TestLoadMissingFile(t provider.T) {
	_, err := Load(filepath.Join(os.TempDir(), "cinevault-absent.env"))
	assert.Error(t, err)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ConfigUnitSuite))
}
