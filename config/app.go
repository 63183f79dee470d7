package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Legacy environment variables honored for the tabular data files.
const (
	EnvCombinedPath = "GEOGLI_COMBINED_PATH"
	EnvHitsPath     = "GEOGLI_COMBINED_HITS_PATH"
)

const (
	envPrefix      = "GEOQUERY"
	configFileName = "geoquery"
)

// Config is the application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Data       DataConfig       `mapstructure:"data"`
	Query      QueryConfig      `mapstructure:"query"`
	Tables     TablesConfig     `mapstructure:"tables"`
	Dashboards DashboardsConfig `mapstructure:"dashboards"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"`
}

// DataConfig locates the collection source files.
type DataConfig struct {
	Dir          string `mapstructure:"dir"`
	ProfileFile  string `mapstructure:"profile_file"`
	HitsFile     string `mapstructure:"hits_file"`
	CombinedFile string `mapstructure:"combined_file"`
	PublicPrefix string `mapstructure:"public_prefix"` // URL prefix replacing Dir in image and citation paths
}

type QueryConfig struct {
	MaxLength int `mapstructure:"max_length"`
}

// TablesConfig points at an optional YAML file overriding the built-in alias
// and keyword tables.
type TablesConfig struct {
	File string `mapstructure:"file"`
}

type DashboardsConfig struct {
	Host      string `mapstructure:"host"`
	Height    int    `mapstructure:"height"`
	DefaultID int    `mapstructure:"default_id"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// SetDefaults registers the default value of every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_body_bytes", int64(1<<20))

	v.SetDefault("data.dir", "backend/data")
	v.SetDefault("data.profile_file", "combined_tables.jsonl")
	v.SetDefault("data.hits_file", "combined_tables_hits.jsonl")
	v.SetDefault("data.combined_file", "combined_tables.jsonl")
	v.SetDefault("data.public_prefix", "/static-data")

	v.SetDefault("query.max_length", 4000)
	v.SetDefault("tables.file", "")

	v.SetDefault("dashboards.host", "dash-staging.g20gsp.unepgrid.ch")
	v.SetDefault("dashboards.height", 420)
	v.SetDefault("dashboards.default_id", 38)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads configuration from defaults, an optional config file, a .env file
// and GEOQUERY_* environment variables, in increasing order of precedence.
// An empty configFile searches for geoquery.yaml in the working directory and
// ~/.config/geoquery; not finding one is not an error.
func Load(v *viper.Viper, configFile string) (Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/geoquery")
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyLegacyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration with only defaults applied.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Query.MaxLength <= 0 {
		return fmt.Errorf("query.max_length must be positive, got %d", c.Query.MaxLength)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be 'json' or 'console', got '%s'", c.Log.Format)
	}
	return nil
}

// applyLegacyEnv lets the GEOGLI_* variables override the tabular file paths.
func (c *Config) applyLegacyEnv() {
	if path := os.Getenv(EnvCombinedPath); path != "" {
		c.Data.CombinedFile = path
	}
	if path := os.Getenv(EnvHitsPath); path != "" {
		c.Data.HitsFile = path
	}
}
