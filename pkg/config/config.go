package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/LegalGuard/pkg/domain/telemetry"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Patterns   PatternsConfig   `mapstructure:"patterns"`
	Compliance ComplianceConfig `mapstructure:"compliance"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type ServerConfig struct {
	AdminPort   int    `mapstructure:"admin_port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	SecretKey   string `mapstructure:"secret_key"`
	Host        string `mapstructure:"host"`
}

type MetricsConfig struct {
	Enabled               bool `mapstructure:"enabled"`
	EnableViolationDetail bool `mapstructure:"enable_violation_detail"`
	EnableValidation      bool `mapstructure:"enable_validation"`
}

type MonitoringConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	AlertCapacity int  `mapstructure:"alert_capacity"`
	ExcerptLimit  int  `mapstructure:"excerpt_limit"`
}

type PatternsConfig struct {
	CustomRules []map[string]interface{} `mapstructure:"custom_rules"`
}

type ComplianceConfig struct {
	Analyzer    string `mapstructure:"analyzer"`
	DefaultMode string `mapstructure:"default_mode"`
	AutoRewrite bool   `mapstructure:"auto_rewrite"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type TelemetryConfig struct {
	Exporters      []telemetry.ExporterConfig `mapstructure:"exporters"`
	Workers        int                        `mapstructure:"workers"`
	QueueSize      int                        `mapstructure:"queue_size"`
	ExportTimeout  time.Duration              `mapstructure:"export_timeout"`
	BreakerTimeout time.Duration              `mapstructure:"breaker_timeout"`
	MaxFailures    uint32                     `mapstructure:"max_failures"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

var globalConfig Config

// Load reads config.yaml from configPath, ./config or the working directory.
// A missing file is not fatal: defaults and environment variables still apply,
// but the returned error says so.
func Load(configPath string) error {
	cfg, err := Read(configPath)
	globalConfig = *cfg
	return err
}

// Read is Load without touching the global configuration.
func Read(configPath string) (*Config, error) {
	var cfg Config
	err := loadConfigFile(configPath, "config", &cfg)
	setDefaultValues(&cfg)
	return &cfg, err
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	registerDefaults(v)

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
		readErr = fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return readErr
}

// registerDefaults covers keys whose zero value is meaningful, so they can
// still be overridden from the environment without a config file.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("server.admin_port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.secret_key", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_violation_detail", true)
	v.SetDefault("metrics.enable_validation", true)
	v.SetDefault("monitoring.enabled", true)
	v.SetDefault("compliance.auto_rewrite", false)
	v.SetDefault("compliance.analyzer", "pattern")
	v.SetDefault("compliance.default_mode", "summary")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("logging.level", "info")
}

func setDefaultValues(cfg *Config) {
	if cfg.Monitoring.AlertCapacity <= 0 {
		cfg.Monitoring.AlertCapacity = 10000
	}
	if cfg.Monitoring.ExcerptLimit <= 0 {
		cfg.Monitoring.ExcerptLimit = 500
	}
	if cfg.Telemetry.Workers <= 0 {
		cfg.Telemetry.Workers = 4
	}
	if cfg.Telemetry.QueueSize <= 0 {
		cfg.Telemetry.QueueSize = 1000
	}
	if cfg.Telemetry.ExportTimeout <= 0 {
		cfg.Telemetry.ExportTimeout = 5 * time.Second
	}
	if cfg.Telemetry.BreakerTimeout <= 0 {
		cfg.Telemetry.BreakerTimeout = 30 * time.Second
	}
	if cfg.Telemetry.MaxFailures == 0 {
		cfg.Telemetry.MaxFailures = 5
	}
}

func GetConfig() *Config {
	return &globalConfig
}
