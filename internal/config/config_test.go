package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "parking"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 100, cfg.Parking.SlotCount)
	assert.InDelta(t, 2.50, cfg.Parking.HourlyRate, 0.001)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
user = "parking"
password = "secret"
dbname = "parking"
sslmode = "disable"

[parking]
slot_count = 50
hourly_rate = 3.75

[vision_service]
url = "http://vision.internal"
timeout = 5
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 50, cfg.Parking.SlotCount)
	assert.InDelta(t, 3.75, cfg.Parking.HourlyRate, 0.001)
	assert.Equal(t, "http://vision.internal", cfg.VisionService.URL)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "port=5433")
}

func TestLoadRequiresDatabaseHost(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "parking"
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}
