/* config_test.go
 * Contains unit tests for config.go
 * Authors: Zachary Bower
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	config, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), *config)
	assert.Equal(t, 60*time.Second, config.Backend.Timeout)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
backend:
  url: https://example.com/exec
  timeout: 15s
mongo:
  database: previsioni_test
web:
  addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/exec", config.Backend.URL)
	assert.Equal(t, 15*time.Second, config.Backend.Timeout)
	assert.Equal(t, "previsioni_test", config.Mongo.Database)
	assert.Equal(t, ":9090", config.Web.Addr)
	// Values missing from the file keep their defaults
	assert.Equal(t, "mongodb://localhost:27017", config.Mongo.URI)
	assert.Equal(t, 5, config.Backend.Burst)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv_Overrides(t *testing.T) {
	config := Default()
	err := config.ApplyEnv(envMap(map[string]string{
		"BACKEND_URL":        "https://backend.test",
		"MONGO_URI":          "mongodb://db:27017",
		"MONGO_DB":           "other",
		"DISCORD_PROD_TOKEN": "prod",
		"DISCORD_BETA_TOKEN": "beta",
		"WEB_ADDR":           ":7000",
		"BACKEND_TIMEOUT":    "2m",
	}))

	require.NoError(t, err)
	assert.Equal(t, "https://backend.test", config.Backend.URL)
	assert.Equal(t, "mongodb://db:27017", config.Mongo.URI)
	assert.Equal(t, "other", config.Mongo.Database)
	assert.Equal(t, "prod", config.Discord.ProdToken)
	assert.Equal(t, "beta", config.Discord.BetaToken)
	assert.Equal(t, ":7000", config.Web.Addr)
	assert.Equal(t, 2*time.Minute, config.Backend.Timeout)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	config := Default()
	require.NoError(t, config.ApplyEnv(envMap(map[string]string{"MONGO_DB": ""})))

	assert.Equal(t, "previsioni", config.Mongo.Database)
}

func TestApplyEnv_TimeoutSeconds(t *testing.T) {
	config := Default()
	require.NoError(t, config.ApplyEnv(envMap(map[string]string{"BACKEND_TIMEOUT": "30"})))

	assert.Equal(t, 30*time.Second, config.Backend.Timeout)
}

func TestApplyEnv_InvalidTimeout(t *testing.T) {
	config := Default()
	err := config.ApplyEnv(envMap(map[string]string{"BACKEND_TIMEOUT": "soon"}))

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	config := Default()
	assert.Error(t, config.Validate(), "backend url missing")

	config.Backend.URL = "https://backend.test"
	assert.NoError(t, config.Validate())

	config.Backend.Timeout = 0
	assert.Error(t, config.Validate())

	config = Default()
	config.Backend.URL = "https://backend.test"
	config.Mongo.Database = ""
	assert.Error(t, config.Validate())
}

func TestDiscordToken(t *testing.T) {
	config := Default()
	config.Discord.ProdToken = "prod"

	token, err := config.DiscordToken(false)
	require.NoError(t, err)
	assert.Equal(t, "prod", token)

	_, err = config.DiscordToken(true)
	assert.ErrorContains(t, err, "DISCORD_BETA_TOKEN")
}
