package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigValidation tests environment loading and validation
func TestConfigValidation(t *testing.T) {
	testCases := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name: "Valid minimal configuration",
			envVars: map[string]string{
				"JWT_SECRET": "test-jwt-secret",
			},
			expectError: false,
		},
		{
			name:        "Missing JWT secret",
			envVars:     map[string]string{},
			expectError: true,
			errorMsg:    "JWT_SECRET is required",
		},
		{
			name: "Invalid rate limit",
			envVars: map[string]string{
				"JWT_SECRET": "test-jwt-secret",
				"RATE_LIMIT": "fast",
			},
			expectError: true,
			errorMsg:    "invalid RATE_LIMIT",
		},
		{
			name: "Zero burst",
			envVars: map[string]string{
				"JWT_SECRET": "test-jwt-secret",
				"RATE_BURST": "0",
			},
			expectError: true,
			errorMsg:    "rate limit and burst must be positive",
		},
		{
			name: "Invalid cache TTL",
			envVars: map[string]string{
				"JWT_SECRET": "test-jwt-secret",
				"CACHE_TTL":  "soon",
			},
			expectError: true,
			errorMsg:    "invalid CACHE_TTL",
		},
		{
			name: "Unknown log level",
			envVars: map[string]string{
				"JWT_SECRET": "test-jwt-secret",
				"LOG_LEVEL":  "TRACE",
			},
			expectError: true,
			errorMsg:    "unknown log level",
		},
		{
			name: "Invalid dev mode",
			envVars: map[string]string{
				"JWT_SECRET": "test-jwt-secret",
				"DEV_MODE":   "maybe",
			},
			expectError: true,
			errorMsg:    "invalid DEV_MODE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ResetConfigForTest()
			t.Cleanup(ResetConfigForTest)

			t.Setenv("JWT_SECRET", "")
			for key, value := range tc.envVars {
				t.Setenv(key, value)
			}

			cfg, err := LoadConfig()

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				if tc.errorMsg != "" {
					assert.Contains(t, err.Error(), tc.errorMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.False(t, cfg.Server.DevMode)
	assert.Equal(t, "token", cfg.Security.TokenCookie)
	assert.Equal(t, 5*time.Minute, cfg.Site.CacheTTL)
	assert.Equal(t, "logs", cfg.Logging.Directory)
	assert.Same(t, cfg, GetConfig())
}

func TestEnvironmentOverrides(t *testing.T) {
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("RATE_BURST", "7")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("LOG_DIR", "/tmp/testmaster-logs")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.True(t, cfg.Server.DevMode)
	assert.Equal(t, 2.5, cfg.Security.RateLimit)
	assert.Equal(t, 7, cfg.Security.RateBurst)
	assert.Equal(t, 30*time.Second, cfg.Site.CacheTTL)
	assert.Equal(t, "/tmp/testmaster-logs", cfg.Logging.Directory)
}

func TestJSONConfigFile(t *testing.T) {
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"port": "7000"},
		"site": {"title": "TestMaster Staging", "cache_ttl": "90s"}
	}`), 0600))

	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "TestMaster Staging", cfg.Site.Title)
	assert.Equal(t, 90*time.Second, cfg.Site.CacheTTL)
	// Values absent from the file keep their defaults.
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestJSONConfigFileCacheTTL(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected time.Duration
		errorMsg string
	}{
		{"Duration string", `{"site": {"cache_ttl": "5m"}}`, 5 * time.Minute, ""},
		{"Disabled", `{"site": {"cache_ttl": "0s"}}`, 0, ""},
		{"Absent keeps default", `{"site": {"title": "Staging"}}`, 5 * time.Minute, ""},
		{"Bare number", `{"site": {"cache_ttl": 300}}`, 0, "duration string"},
		{"Unparseable", `{"site": {"cache_ttl": "soon"}}`, 0, "invalid site.cache_ttl"},
		{"Below minimum", `{"site": {"cache_ttl": "300ns"}}`, 0, "at least 1s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ResetConfigForTest()
			t.Cleanup(ResetConfigForTest)

			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0600))
			t.Setenv("JWT_SECRET", "test-jwt-secret")
			t.Setenv("CONFIG_FILE", path)

			cfg, err := LoadConfig()
			if tc.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.Site.CacheTTL)
		})
	}
}

func TestCacheTTLBelowMinimumFromEnv(t *testing.T) {
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("CACHE_TTL", "500ms")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1s")
}

func TestYAMLConfigFile(t *testing.T) {
	ResetConfigForTest()
	t.Cleanup(ResetConfigForTest)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  dev_mode: true
site:
  cache_ttl: 90s
security:
  rate_burst: 5
`), 0600))

	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Server.DevMode)
	assert.Equal(t, 90*time.Second, cfg.Site.CacheTTL)
	assert.Equal(t, 5, cfg.Security.RateBurst)
	assert.Equal(t, 20.0, cfg.Security.RateLimit)
}

func TestGetConfigPanicsBeforeLoad(t *testing.T) {
	ResetConfigForTest()
	assert.Panics(t, func() { GetConfig() })
}
