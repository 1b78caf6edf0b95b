package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the server settings. Values come from defaults, then the
// optional YAML file named by CONFIG_FILE, then the environment.
type Config struct {
	Port     string `yaml:"port"`
	DataURL  string `yaml:"data_url"`
	DataFile string `yaml:"data_file"`
	Locale   string `yaml:"locale"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	RateLimit struct {
		Max    int           `yaml:"max"`
		Window time.Duration `yaml:"window"`
	} `yaml:"rate_limit"`

	CORSAllowOrigins string `yaml:"cors_allow_origins"`
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Default returns the built-in settings.
func Default() Config {
	var cfg Config
	cfg.Port = "3000"
	cfg.DataFile = "public/data.json"
	cfg.Locale = "en-US"
	cfg.Redis.Enabled = true
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = "6379"
	cfg.RateLimit.Max = 60
	cfg.RateLimit.Window = time.Minute
	cfg.CORSAllowOrigins = "*"
	return cfg
}

// Load assembles the configuration. It does not read .env; call LoadEnv
// first when that is wanted.
func Load() (Config, error) {
	cfg := Default()

	if path := GetEnv("CONFIG_FILE", ""); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Port = GetEnv("PORT", cfg.Port)
	cfg.DataURL = GetEnv("DATA_URL", cfg.DataURL)
	cfg.DataFile = GetEnv("DATA_FILE", cfg.DataFile)
	cfg.Locale = GetEnv("LOCALE", cfg.Locale)
	cfg.Redis.Enabled = GetBoolEnv("REDIS_ENABLED", cfg.Redis.Enabled)
	cfg.Redis.Host = GetEnv("REDIS_HOST", cfg.Redis.Host)
	cfg.Redis.Port = GetEnv("REDIS_PORT", cfg.Redis.Port)
	cfg.Redis.Password = GetEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetIntEnv("REDIS_DB", cfg.Redis.DB)
	cfg.RateLimit.Max = GetIntEnv("RATE_LIMIT_MAX", cfg.RateLimit.Max)
	cfg.RateLimit.Window = GetDurationEnv("RATE_LIMIT_WINDOW", cfg.RateLimit.Window)
	cfg.CORSAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", cfg.CORSAllowOrigins)

	if cfg.DataURL == "" {
		cfg.DataURL = fmt.Sprintf("http://127.0.0.1:%s/data.json", cfg.Port)
	}
	return cfg, nil
}
