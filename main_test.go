/* main_test.go
 * Contains unit tests for utils.go functions
 * Authors: Zachary Bower
 */

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region convertStrToBool tests

// TestConvertStrToBool_True tests converting "true" string
func TestConvertStrToBool_True(t *testing.T) {
	result, err := convertStrToBool("true")

	assert.NoError(t, err)
	assert.True(t, result)
}

// TestConvertStrToBool_False tests converting "false" string
func TestConvertStrToBool_False(t *testing.T) {
	result, err := convertStrToBool("false")

	assert.NoError(t, err)
	assert.False(t, result)
}

// TestConvertStrToBool_CaseInsensitiveTrue tests case-insensitive "TRUE"
func TestConvertStrToBool_CaseInsensitiveTrue(t *testing.T) {
	result, err := convertStrToBool("TRUE")

	assert.NoError(t, err)
	assert.True(t, result)
}

// TestConvertStrToBool_CaseInsensitiveFalse tests case-insensitive "FALSE"
func TestConvertStrToBool_CaseInsensitiveFalse(t *testing.T) {
	result, err := convertStrToBool("FALSE")

	assert.NoError(t, err)
	assert.False(t, result)
}

// TestConvertStrToBool_MixedCase tests mixed case "TrUe"
func TestConvertStrToBool_MixedCase(t *testing.T) {
	result, err := convertStrToBool("TrUe")

	assert.NoError(t, err)
	assert.True(t, result)
}

// TestConvertStrToBool_WithWhitespace tests string with leading/trailing whitespace
func TestConvertStrToBool_WithWhitespace(t *testing.T) {
	result, err := convertStrToBool("  true  ")

	assert.NoError(t, err)
	assert.True(t, result)
}

// TestConvertStrToBool_InvalidString tests invalid boolean string
func TestConvertStrToBool_InvalidString(t *testing.T) {
	_, err := convertStrToBool("yes")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid boolean string")
}

// TestConvertStrToBool_EmptyString tests empty string
func TestConvertStrToBool_EmptyString(t *testing.T) {
	_, err := convertStrToBool("")

	assert.Error(t, err)
}

// TestConvertStrToBool_NumberString tests numeric string
func TestConvertStrToBool_NumberString(t *testing.T) {
	_, err := convertStrToBool("1")

	assert.Error(t, err)
}

// TestConvertStrToBool_OnlyWhitespace tests string with only whitespace
func TestConvertStrToBool_OnlyWhitespace(t *testing.T) {
	_, err := convertStrToBool("   ")

	assert.Error(t, err)
}

// endregion

// region loadConfig tests

func envLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	cfg, err := loadConfig("", envLookup(map[string]string{
		"BACKEND_URL":        "https://scommessone.example.com/api/index.php",
		"DISCORD_PROD_TOKEN": "prod",
	}))

	require.NoError(t, err)
	assert.Equal(t, "https://scommessone.example.com/api/index.php", cfg.Backend.URL)
	assert.Equal(t, 60*time.Second, cfg.Backend.Timeout)

	token, err := cfg.DiscordToken(false)
	require.NoError(t, err)
	assert.Equal(t, "prod", token)
}

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "backend:\n  url: https://file.example.com\n  timeout: 10s\nweb:\n  addr: \":9090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := loadConfig(path, envLookup(map[string]string{"WEB_ADDR": ":7070"}))

	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.Backend.URL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, ":7070", cfg.Web.Addr)
}

func TestLoadConfig_MissingBackendURL(t *testing.T) {
	_, err := loadConfig("", envLookup(nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend url is required")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), envLookup(nil))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	_, err := loadConfig("", envLookup(map[string]string{
		"BACKEND_URL":     "https://scommessone.example.com",
		"BACKEND_TIMEOUT": "soon",
	}))
	assert.Error(t, err)
}

// endregion
