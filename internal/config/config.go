package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Forvo    ForvoConfig    `mapstructure:"forvo"`
	Files    FilesConfig    `mapstructure:"files"`
	Player   PlayerConfig   `mapstructure:"player"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ForvoConfig holds pronunciation lookup configuration
type ForvoConfig struct {
	Endpoint          string        `mapstructure:"endpoint"`
	APIKey            string        `mapstructure:"api_key"`
	APIKeyFile        string        `mapstructure:"api_key_file"`
	Language          string        `mapstructure:"language"`
	Mode              string        `mapstructure:"mode"` // all or best
	Order             string        `mapstructure:"order"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// FilesConfig holds the paths of the plain-text data files
type FilesConfig struct {
	Settings      string `mapstructure:"settings"`
	ExclusionList string `mapstructure:"exclusion_list"`
}

// PlayerConfig holds the external media player invocation
type PlayerConfig struct {
	Command       string        `mapstructure:"command"`
	Args          []string      `mapstructure:"args"`
	PostPlayDelay time.Duration `mapstructure:"post_play_delay"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "data/tone_and_user_info.db")
	v.SetDefault("forvo.endpoint", "https://apifree.forvo.com/")
	v.SetDefault("forvo.api_key_file", "apikey.txt")
	v.SetDefault("forvo.language", "zh")
	v.SetDefault("forvo.mode", "all")
	v.SetDefault("forvo.order", "rate-desc")
	v.SetDefault("forvo.timeout", 10*time.Second)
	v.SetDefault("forvo.requests_per_second", 2.0)
	v.SetDefault("forvo.burst", 1)
	v.SetDefault("files.settings", "data/settings.txt")
	v.SetDefault("files.exclusion_list", "data/pron_exclusion_list.txt")
	v.SetDefault("player.command", "cvlc")
	v.SetDefault("player.args", []string{"--play-and-exit", "--quiet"})
	v.SetDefault("player.post_play_delay", time.Duration(0))
}

func bindEnvVars(v *viper.Viper) {
	if path := os.Getenv("TONETRAINER_DB"); path != "" {
		v.Set("database.path", path)
	}
	if key := os.Getenv("FORVO_API_KEY"); key != "" {
		v.Set("forvo.api_key", key)
	}
	if endpoint := os.Getenv("FORVO_ENDPOINT"); endpoint != "" {
		v.Set("forvo.endpoint", endpoint)
	}
	// "mpv --no-video" style: command followed by its arguments
	if fields := strings.Fields(os.Getenv("TONETRAINER_PLAYER")); len(fields) > 0 {
		v.Set("player.command", fields[0])
		v.Set("player.args", fields[1:])
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	if c.Forvo.Endpoint == "" {
		return fmt.Errorf("forvo endpoint cannot be empty")
	}

	if c.Forvo.APIKey == "" && c.Forvo.APIKeyFile == "" {
		return fmt.Errorf("either forvo api_key or api_key_file must be set")
	}

	if c.Forvo.Mode != "all" && c.Forvo.Mode != "best" {
		return fmt.Errorf("invalid forvo mode: %s (must be 'all' or 'best')", c.Forvo.Mode)
	}

	if c.Forvo.Timeout <= 0 {
		return fmt.Errorf("forvo timeout must be positive")
	}

	if c.Forvo.RequestsPerSecond < 0 {
		return fmt.Errorf("forvo requests_per_second cannot be negative")
	}

	if c.Files.Settings == "" || c.Files.ExclusionList == "" {
		return fmt.Errorf("settings and exclusion list paths cannot be empty")
	}

	if c.Player.Command == "" {
		return fmt.Errorf("player command cannot be empty")
	}

	if c.Player.PostPlayDelay < 0 {
		return fmt.Errorf("player post_play_delay cannot be negative")
	}

	return nil
}

// APIKey returns the inline key or the first line of the key file.
func (c *Config) APIKey() (string, error) {
	if c.Forvo.APIKey != "" {
		return c.Forvo.APIKey, nil
	}

	data, err := os.ReadFile(c.Forvo.APIKeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read api key file: %w", err)
	}

	key, _, _ := strings.Cut(string(data), "\n")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("api key file %s is empty", c.Forvo.APIKeyFile)
	}
	return key, nil
}
