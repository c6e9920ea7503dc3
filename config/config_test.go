package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	// 指向一个不存在的配置文件，确保走默认值
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")

	cfg := InitConfig()
	assert.Equal(t, "8808", cfg.Server.Port)
	assert.Equal(t, "data/etsy", cfg.Data.EtsyDir)
	assert.Equal(t, "reports", cfg.Data.ReportsDir)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 2, cfg.Scraper.MaxPages)
	assert.Same(t, AppConfig, cfg)
}

func TestInitConfigYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `server:
  port: "9000"
data:
  etsy_dir: /srv/etsy
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "")
	t.Setenv("ETSY_DATA_DIR", "")

	cfg := InitConfig()
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/srv/etsy", cfg.Data.EtsyDir)
	// 文件里没写的字段保持默认
	assert.Equal(t, "data/amazon", cfg.Data.AmazonDir)
}

func TestInitConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9000\"\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9999")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("CACHE_TTL", "30s")

	cfg := InitConfig()
	assert.Equal(t, "9999", cfg.Server.Port, "环境变量优先于配置文件")
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Redis.Enabled, "配置了 REDIS_ADDR 就启用 redis")
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}
