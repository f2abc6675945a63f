package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapConfigDefaults(t *testing.T) {
	c := NewMapConfig(map[string]string{
		"REALM_PORT":           "8080",
		"REALM_REQUIRE_APIKEY": "true",
		"REALM_CACHE_TTL":      "not-a-number",
	})

	assert.Equal(t, 8080, c.GetIntKeyWithDefault("REALM_PORT", 5000))
	assert.Equal(t, 300, c.GetIntKeyWithDefault("REALM_CACHE_TTL", 300))
	assert.Equal(t, "sqlite", c.GetKeyWithDefault("REALM_DB_DRIVER", "sqlite"))
	assert.True(t, c.GetBoolKeyWithDefault("REALM_REQUIRE_APIKEY", false))
	assert.False(t, c.GetBoolKeyWithDefault("MISSING", false))
}

func TestDotenvConfigLoadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "realm.env")
	require.NoError(t, os.WriteFile(path, []byte("REALM_TEST_DOTENV_KEY=worlds\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("REALM_TEST_DOTENV_KEY") })

	c := NewDotenvConfig("")
	require.NoError(t, c.Load(), "an empty path is not an error")
	require.NoError(t, c.LoadFromPath(path))

	assert.Equal(t, "worlds", c.GetKey("REALM_TEST_DOTENV_KEY"))
	assert.Equal(t, 12, c.GetIntKeyWithDefault("REALM_TEST_DOTENV_MISSING", 12))
}

func TestMapConfigOverridesFallback(t *testing.T) {
	base := NewMapConfig(map[string]string{
		"REALM_PORT":      "5000",
		"REALM_LOG_LEVEL": "debug",
	})

	c := NewMapConfig(map[string]string{"REALM_PORT": "9090"}).WithFallback(base)
	assert.Equal(t, 9090, c.GetIntKey("REALM_PORT"))
	assert.Equal(t, "debug", c.GetKey("REALM_LOG_LEVEL"))

	c.Set("REALM_LOG_LEVEL", "warn")
	assert.Equal(t, "warn", c.GetKeyWithDefault("REALM_LOG_LEVEL", "info"))
	assert.Equal(t, "debug", base.GetKey("REALM_LOG_LEVEL"))

	assert.Error(t, NewMapConfig(nil).LoadFromPath("/nowhere"))
}
