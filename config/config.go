package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	config     *Config
	configOnce sync.Once
)

// minCacheTTL is the shortest non-zero page cache lifetime accepted.
const minCacheTTL = time.Second

type Config struct {
	Server struct {
		Port     string `json:"port" yaml:"port"`
		Host     string `json:"host" yaml:"host"`
		BaseURL  string `json:"base_url" yaml:"base_url"`
		LogLevel string `json:"log_level" yaml:"log_level"`
		DevMode  bool   `json:"dev_mode" yaml:"dev_mode"`
	} `json:"server" yaml:"server"`

	Security struct {
		JWTSecret      string  `json:"jwt_secret" yaml:"jwt_secret"`
		JWTExpiryHours int     `json:"jwt_expiry_hours" yaml:"jwt_expiry_hours"`
		TokenCookie    string  `json:"token_cookie" yaml:"token_cookie"`
		RateLimit      float64 `json:"rate_limit" yaml:"rate_limit"`
		RateBurst      int     `json:"rate_burst" yaml:"rate_burst"`
	} `json:"security" yaml:"security"`

	Site struct {
		Title       string        `json:"title" yaml:"title"`
		Description string        `json:"description" yaml:"description"`
		CacheTTL    time.Duration `json:"-" yaml:"cache_ttl"`
	} `json:"site" yaml:"site"`

	Logging struct {
		Directory  string `json:"directory" yaml:"directory"`
		MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
		MaxBackups int    `json:"max_backups" yaml:"max_backups"`
		MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
	} `json:"logging" yaml:"logging"`
}

// LoadConfig loads the configuration from environment variables and optional JSON file
func LoadConfig() (*Config, error) {
	var err error
	configOnce.Do(func() {
		cfg := &Config{}

		// Load .env file if it exists
		_ = godotenv.Load()

		loadDefaultConfig(cfg)

		if err = loadEnvConfig(cfg); err != nil {
			return
		}

		if configPath := os.Getenv("CONFIG_FILE"); configPath != "" {
			if err = loadConfigFile(cfg, configPath); err != nil {
				return
			}
		}

		if err = validateConfig(cfg); err != nil {
			return
		}

		config = cfg
	})

	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, fmt.Errorf("configuration failed to load earlier in this process")
	}

	return config, nil
}

func loadDefaultConfig(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.Host = "localhost"
	cfg.Server.LogLevel = "info"
	cfg.Security.JWTExpiryHours = 24
	cfg.Security.TokenCookie = "token"
	cfg.Security.RateLimit = 20
	cfg.Security.RateBurst = 40
	cfg.Site.Title = "TestMaster - Smart Testing Platform"
	cfg.Site.Description = "Create, manage, and analyze tests with our intelligent testing platform."
	cfg.Site.CacheTTL = 5 * time.Minute
	cfg.Logging.Directory = "logs"
	cfg.Logging.MaxSizeMB = 10
	cfg.Logging.MaxBackups = 5
	cfg.Logging.MaxAgeDays = 28
}

func loadEnvConfig(cfg *Config) error {
	// Server configuration
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		cfg.Server.BaseURL = baseURL
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Server.LogLevel = strings.ToLower(level)
	}
	if dev := os.Getenv("DEV_MODE"); dev != "" {
		v, err := strconv.ParseBool(dev)
		if err != nil {
			return fmt.Errorf("invalid DEV_MODE %q: %w", dev, err)
		}
		cfg.Server.DevMode = v
	}

	// Security configuration
	cfg.Security.JWTSecret = os.Getenv("JWT_SECRET")
	if cookie := os.Getenv("TOKEN_COOKIE"); cookie != "" {
		cfg.Security.TokenCookie = cookie
	}
	if limit := os.Getenv("RATE_LIMIT"); limit != "" {
		v, err := strconv.ParseFloat(limit, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT %q: %w", limit, err)
		}
		cfg.Security.RateLimit = v
	}
	if burst := os.Getenv("RATE_BURST"); burst != "" {
		v, err := strconv.Atoi(burst)
		if err != nil {
			return fmt.Errorf("invalid RATE_BURST %q: %w", burst, err)
		}
		cfg.Security.RateBurst = v
	}

	// Site configuration
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		v, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", ttl, err)
		}
		cfg.Site.CacheTTL = v
	}

	// Logging configuration
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		cfg.Logging.Directory = dir
	}

	return nil
}

// loadConfigFile overlays a JSON or YAML file, chosen by extension
func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = loadJSONConfig(cfg, data)
	}
	if err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	return nil
}

// loadJSONConfig decodes a JSON config. Durations are strings such as "90s",
// matching CACHE_TTL and the YAML format.
func loadJSONConfig(cfg *Config, data []byte) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return err
	}

	var durations struct {
		Site struct {
			CacheTTL *string `json:"cache_ttl"`
		} `json:"site"`
	}
	if err := json.Unmarshal(data, &durations); err != nil {
		return fmt.Errorf("site.cache_ttl must be a duration string such as \"90s\": %w", err)
	}
	if ttl := durations.Site.CacheTTL; ttl != nil {
		v, err := time.ParseDuration(*ttl)
		if err != nil {
			return fmt.Errorf("invalid site.cache_ttl %q: %w", *ttl, err)
		}
		cfg.Site.CacheTTL = v
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if cfg.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.Security.RateLimit <= 0 || cfg.Security.RateBurst <= 0 {
		return fmt.Errorf("rate limit and burst must be positive")
	}

	if cfg.Site.CacheTTL < 0 {
		return fmt.Errorf("cache TTL must not be negative")
	}
	if cfg.Site.CacheTTL > 0 && cfg.Site.CacheTTL < minCacheTTL {
		return fmt.Errorf("cache TTL must be 0 (disabled) or at least %s", minCacheTTL)
	}

	switch cfg.Server.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Server.LogLevel)
	}

	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	if config == nil {
		panic("Configuration not loaded")
	}
	return config
}

// ResetConfigForTest clears the loaded configuration so tests can reload it
// with a different environment.
func ResetConfigForTest() {
	config = nil
	configOnce = sync.Once{}
}

// SetConfigForTest installs cfg as the loaded configuration.
func SetConfigForTest(cfg *Config) {
	ResetConfigForTest()
	configOnce.Do(func() {})
	config = cfg
}
