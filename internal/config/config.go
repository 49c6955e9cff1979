package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/a8m/envsubst"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the environment variable that overrides the config file location.
const ConfigFileEnv = "GB_PORTAL_CONFIG"

// Config is the root configuration of the group backend portal.
type Config struct {
	Advanced struct {
		// LogLevel is one of trace, debug, info, warn or error.
		LogLevel string `yaml:"log_level"`
		// LogPretty enables the human-readable log handler.
		LogPretty bool `yaml:"log_pretty"`
		// LogJson enables JSON log output. It takes precedence over LogPretty.
		LogJson bool `yaml:"log_json"`
		// ProbeTimeout limits the time spent connecting to a directory server during a resource probe.
		ProbeTimeout time.Duration `yaml:"probe_timeout"`
		// AuditEnabled enables audit entries for configuration changes.
		AuditEnabled bool `yaml:"audit_enabled"`
	} `yaml:"advanced"`

	Metrics MetricsConfig `yaml:"metrics"`

	Directory DirectoryConfig `yaml:"directory"`

	Database DatabaseConfig `yaml:"database"`

	Web WebConfig `yaml:"web"`
}

// MetricsConfig contains the configuration of the Prometheus listener.
type MetricsConfig struct {
	// Enabled starts a separate metrics listener.
	Enabled bool `yaml:"enabled"`
	// ListeningAddress is the address of the metrics listener.
	ListeningAddress string `yaml:"listening_address"`
}

// LogStartupValues logs the most important configuration values.
func (c *Config) LogStartupValues() {
	slog.Debug("configuration loaded",
		"logLevel", c.Advanced.LogLevel,
		"listeningAddress", c.Web.ListeningAddress,
		"externalUrl", c.Web.ExternalUrl,
		"databaseType", c.Database.Type,
		"resources", len(c.Directory.Resources),
		"userBackends", len(c.Directory.UserBackends),
		"metricsEnabled", c.Metrics.Enabled)
}

func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Advanced.LogLevel = "info"
	cfg.Advanced.ProbeTimeout = 5 * time.Second
	cfg.Advanced.AuditEnabled = true

	cfg.Metrics = MetricsConfig{
		Enabled:          false,
		ListeningAddress: ":8787",
	}

	cfg.Database = DatabaseConfig{
		Type: DatabaseSQLite,
		DSN:  "data/sqlite.db",
	}

	cfg.Web = WebConfig{
		RequestLogging:    false,
		ListeningAddress:  ":8888",
		ExternalUrl:       "http://localhost:8888",
		SessionIdentifier: "gbPortalSession",
		DefaultLanguage:   "en",
	}

	return cfg
}

// GetConfig loads the configuration. The file name is taken from the GB_PORTAL_CONFIG environment variable,
// config.yml is used as fallback. A missing file is not an error, the defaults are used instead.
func GetConfig() (*Config, error) {
	cfgFileName := "config.yml"
	if envCfgFileName := os.Getenv(ConfigFileEnv); envCfgFileName != "" {
		cfgFileName = envCfgFileName
	}

	return LoadConfig(cfgFileName)
}

// LoadConfig loads the configuration from the given YAML file on top of the default values.
func LoadConfig(filename string) (*Config, error) {
	cfg := defaultConfig()

	if err := loadConfigFile(cfg, filename); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config from yaml: %w", err)
		}
		slog.Warn("config file not found, using default values", "file", filename)
	}

	cfg.Web.Sanitize()
	if err := cfg.Directory.Validate(); err != nil {
		return nil, fmt.Errorf("invalid directory configuration: %w", err)
	}

	return cfg, nil
}

// loadConfigFile decodes the given YAML file. Environment variables like ${LDAP_PASS} are expanded first.
func loadConfigFile(cfg any, filename string) error {
	data, err := envsubst.ReadFile(filename)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return err
	}

	return nil
}
