package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Admin      AdminConfig      `mapstructure:"admin"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Credential CredentialConfig `mapstructure:"credential"`
	AES        AESConfig        `mapstructure:"aes"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GatewayConfig configures the settlement gateway client.
type GatewayConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	SourceAccount    string        `mapstructure:"source_account"`
	DefaultNarration string        `mapstructure:"default_narration"`
}

// AdminConfig configures the administrative notification endpoint.
type AdminConfig struct {
	NotifyURL string        `mapstructure:"notify_url"`
	Secret    string        `mapstructure:"secret"` // HMAC key for outbound payload signatures
	Timeout   time.Duration `mapstructure:"timeout"`
	SiteName  string        `mapstructure:"site_name"`
	Disabled  bool          `mapstructure:"disabled"`
}

// AuthConfig configures operator token issuance.
type AuthConfig struct {
	AccessKey  string        `mapstructure:"access_key"`
	SecretHash string        `mapstructure:"secret_hash"` // argon2id hash of the operator secret
	Roles      []string      `mapstructure:"roles"`       // role grants embedded in issued tokens
	JWTSecret  string        `mapstructure:"jwt_secret"`
	JWTExpiry  time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer  string        `mapstructure:"jwt_issuer"`
}

// CredentialConfig names the layered sources for the gateway bearer token.
// Sources are consulted in order: env_var, fallback_env_var, token, then
// the persisted settings store under settings_key.
type CredentialConfig struct {
	EnvVar         string `mapstructure:"env_var"`
	FallbackEnvVar string `mapstructure:"fallback_env_var"`
	Token          string `mapstructure:"token"`
	SettingsKey    string `mapstructure:"settings_key"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VPG_ (Virtual Payment Gateway).
// Nested keys use underscore: VPG_DATABASE_HOST, VPG_AUTH_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "virtual_payment")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("gateway.base_url", "https://api.core.payable.africa/api/banking")
	v.SetDefault("gateway.timeout", "30s")
	v.SetDefault("gateway.source_account", "9000136910")
	v.SetDefault("gateway.default_narration", "Payment Transfer")
	v.SetDefault("admin.notify_url", "")
	v.SetDefault("admin.secret", "")
	v.SetDefault("admin.timeout", "30s")
	v.SetDefault("admin.site_name", "")
	v.SetDefault("admin.disabled", false)
	v.SetDefault("auth.access_key", "")
	v.SetDefault("auth.secret_hash", "")
	v.SetDefault("auth.roles", []string{})
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_expiry", "24h")
	v.SetDefault("auth.jwt_issuer", "virtual-payment-gateway")
	v.SetDefault("credential.env_var", "LIVE_TOKEN")
	v.SetDefault("credential.fallback_env_var", "PAYABLE_LIVE_TOKEN")
	v.SetDefault("credential.token", "")
	v.SetDefault("credential.settings_key", "live_token")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VPG_GATEWAY_BASE_URL -> gateway.base_url
	v.SetEnvPrefix("VPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
