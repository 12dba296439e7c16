package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency  string
	NoticeTTL time.Duration `mapstructure:"notice_ttl"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// PHONEFLIP_, e.g. PHONEFLIP_API_BASE_URL.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("ui.currency", "USD")
	v.SetDefault("ui.notice_ttl", "5s")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PHONEFLIP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "phoneflip"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PHONEFLIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
