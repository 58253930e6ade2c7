package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/merakiaddr/pkg/constants"
	"github.com/agentstation/merakiaddr/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Dashboard configuration
	APIKey         string
	OrganizationID string
	NetworkID      string
	DeviceAddress  string
	BaseURL        string
	LegacyAuth     bool
	MaxRetries     int
	HTTPTimeout    time.Duration

	// Logging configuration. LogLevel is only set by --log-level;
	// EnvLogLevel comes from LOG_LEVEL.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// Config file keys and the environment variables bound to them.
var envBindings = map[string]string{
	"api_key":        constants.EnvAPIKey,
	"org_id":         "MERAKI_ORG_ID",
	"network_id":     "MERAKI_NETWORK_ID",
	"device_address": "MERAKI_DEVICE_ADDRESS",
	"base_url":       "MERAKI_BASE_URL",
	"legacy_auth":    "MERAKI_LEGACY_AUTH",
	"max_retries":    "MERAKI_MAX_RETRIES",
	"http_timeout":   "MERAKI_HTTP_TIMEOUT",
	"format":         "MERAKIADDR_FORMAT",
	"log_format":     "LOG_FORMAT",
	"log_output":     "LOG_OUTPUT",
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables
//  3. .env and .env.local files
//  4. Config file (configFile, or ~/.merakiaddr.yaml, or ./.merakiaddr.yaml)
//  5. Defaults
//
// A missing default config file is not an error; an explicit configFile
// that cannot be read is.
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.NewConfigError("env", "failed to bind "+env, err)
		}
	}

	v.SetDefault("base_url", constants.DefaultBaseURL)
	v.SetDefault("max_retries", constants.MaxRetries)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "failed to read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("." + constants.AppName)

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	config := &Config{
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),

		APIKey:         v.GetString("api_key"),
		OrganizationID: v.GetString("org_id"),
		NetworkID:      v.GetString("network_id"),
		DeviceAddress:  v.GetString("device_address"),
		BaseURL:        v.GetString("base_url"),
		LegacyAuth:     v.GetBool("legacy_auth"),
		MaxRetries:     v.GetInt("max_retries"),
		HTTPTimeout:    v.GetDuration("http_timeout"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   v.GetString("log_format"),
		LogOutput:   v.GetString("log_output"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects values no command could run with.
func (c *Config) Validate() error {
	if c.MaxRetries < 0 {
		return errors.NewValidationError("max_retries", c.MaxRetries, "must not be negative")
	}
	if c.HTTPTimeout < 0 {
		return errors.NewValidationError("http_timeout", c.HTTPTimeout, "must not be negative")
	}
	return nil
}

// Flags holds the values of the global flags after parsing. Empty strings
// mean the flag was not given.
type Flags struct {
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string

	APIKey         string
	OrganizationID string
	NetworkID      string
	DeviceAddress  string
	BaseURL        string
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(f Flags) {
	c.Verbose = f.Verbose
	c.Quiet = f.Quiet
	c.NoColor = f.NoColor
	c.LogLevel = f.LogLevel

	override(&c.Format, f.Format)
	override(&c.APIKey, f.APIKey)
	override(&c.OrganizationID, f.OrganizationID)
	override(&c.NetworkID, f.NetworkID)
	override(&c.DeviceAddress, f.DeviceAddress)
	override(&c.BaseURL, f.BaseURL)
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables already set, so .env wins over
// .env.local and the real environment wins over both.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
