package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Mail       MailConfig       `mapstructure:"mail"`
	Discord    DiscordConfig    `mapstructure:"discord"`
	Superadmin SuperadminConfig `mapstructure:"superadmin"`
	Archival   ArchivalConfig   `mapstructure:"archival"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	CORS       CORSConfig       `mapstructure:"cors"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Hostname     string        `mapstructure:"hostname"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Type            string        `mapstructure:"type"`
	Hostname        string        `mapstructure:"hostname"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// MailConfig holds SMTP settings for the direct-message notification channel
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Sender   string `mapstructure:"sender"`
}

// IsConfigured reports whether the mail channel can send at all
func (m *MailConfig) IsConfigured() bool {
	return m.Host != "" && m.SenderAddress() != ""
}

// SenderAddress returns the from address, falling back to the SMTP username
func (m *MailConfig) SenderAddress() string {
	if m.Sender != "" {
		return m.Sender
	}
	return m.Username
}

// DiscordConfig holds team-channel webhook settings. Webhook URLs are looked
// up from the environment per lab using the <PREFIX>_<LABNAME>_<SUFFIX>
// naming convention.
type DiscordConfig struct {
	EnvPrefix string        `mapstructure:"env_prefix"`
	EnvSuffix string        `mapstructure:"env_suffix"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// WebhookEnvKey builds the primary environment key for a lab name:
// "CC Lab" -> "DISCORD_CC_LAB_WEBHOOK"
func (d *DiscordConfig) WebhookEnvKey(labName string) string {
	name := strings.ReplaceAll(strings.ToUpper(labName), " ", "_")
	return fmt.Sprintf("%s_%s_%s", d.EnvPrefix, name, d.EnvSuffix)
}

// WebhookEnvKeyFallback builds the fallback key with spaces stripped
// entirely: "CC Lab" -> "DISCORD_CCLAB_WEBHOOK"
func (d *DiscordConfig) WebhookEnvKeyFallback(labName string) string {
	name := strings.ReplaceAll(strings.ToUpper(labName), " ", "")
	return fmt.Sprintf("%s_%s_%s", d.EnvPrefix, name, d.EnvSuffix)
}

// SuperadminConfig holds the environment-provisioned superadmin credentials
type SuperadminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// ValidateCredentials checks a login attempt against the configured superadmin
func (s *SuperadminConfig) ValidateCredentials(email, password string) bool {
	if s.Email == "" || s.Password == "" {
		return false
	}
	return email == s.Email && password == s.Password
}

// ArchivalConfig holds stale-archival settings
type ArchivalConfig struct {
	StaleDays int `mapstructure:"stale_days"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

var globalConfig *Config

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
		v.AddConfigPath(".")
	}

	// Read from environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("TECHRESOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("discord.env_prefix", "DISCORD")
	v.SetDefault("discord.env_suffix", "WEBHOOK")
	v.SetDefault("discord.timeout", 10*time.Second)
	v.SetDefault("archival.stale_days", 30)
	v.SetDefault("mail.port", 587)
	v.SetDefault("logging.level", "info")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal config
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	globalConfig = &config
	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.Hostname == "" {
		return fmt.Errorf("database hostname is required")
	}

	if config.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Archival.StaleDays <= 0 {
		return fmt.Errorf("invalid archival stale_days: %d", config.Archival.StaleDays)
	}

	if config.Discord.EnvPrefix == "" || config.Discord.EnvSuffix == "" {
		return fmt.Errorf("discord env prefix and suffix are required")
	}

	if config.Discord.Timeout <= 0 {
		return fmt.Errorf("invalid discord timeout: %s", config.Discord.Timeout)
	}

	return nil
}

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// SetGlobal sets the global configuration (for testing purposes)
func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

// GetDSN returns the database connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true",
		d.User,
		d.Password,
		d.Hostname,
		d.Port,
		d.Database,
	)
}

// GetServerAddress returns the server address in host:port format
func (s *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", s.Hostname, s.Port)
}
