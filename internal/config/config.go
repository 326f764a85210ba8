package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	ChangeControl ChangeControlConfig `yaml:"change_control"`
	Alerting      AlertingConfig      `yaml:"alerting"`
	Events        EventsConfig        `yaml:"events"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrationsDir   string        `yaml:"migrations_dir"     env:"DATABASE_MIGRATIONS_DIR"     env-default:"migrations"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access-token settings. Tokens are minted elsewhere; the
// server only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"netscheme"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits. When RedisAddr is set the
// limit is shared across server replicas.
type RateLimitConfig struct {
	Disabled          bool   `yaml:"disabled"            env:"RATE_LIMIT_DISABLED"`
	RequestsPerMinute int    `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	Burst             int    `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"20"`
	RedisAddr         string `yaml:"redis_addr"          env:"RATE_LIMIT_REDIS_ADDR"`
	RedisPassword     string `yaml:"redis_password"      env:"RATE_LIMIT_REDIS_PASSWORD"`
	RedisDB           int    `yaml:"redis_db"            env:"RATE_LIMIT_REDIS_DB"            env-default:"0"`
}

// UsesRedis reports whether the distributed limiter is configured.
func (c RateLimitConfig) UsesRedis() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

// ChangeControlConfig holds maker-checker policy and ledger settings. Every
// bool in this package defaults to false: cleanenv applies env-default to any
// zero value, so a true default could not be switched off from YAML.
type ChangeControlConfig struct {
	// AllowSelfReview lets a maker decide their own change.
	AllowSelfReview bool `yaml:"allow_self_review" env:"CHANGE_CONTROL_ALLOW_SELF_REVIEW"`

	// AllowAnyReviewer lets callers without the checker or admin role decide.
	AllowAnyReviewer bool          `yaml:"allow_any_reviewer" env:"CHANGE_CONTROL_ALLOW_ANY_REVIEWER"`
	OperationTimeout time.Duration `yaml:"operation_timeout"  env:"CHANGE_CONTROL_OPERATION_TIMEOUT"  env-default:"5s"`
	DefaultListLimit int           `yaml:"default_list_limit" env:"CHANGE_CONTROL_DEFAULT_LIST_LIMIT" env-default:"50"`
	MaxListLimit     int           `yaml:"max_list_limit"     env:"CHANGE_CONTROL_MAX_LIST_LIMIT"     env-default:"200"`
}

// AlertingConfig holds threshold evaluation settings.
type AlertingConfig struct {
	// EscalationFactor: a breach whose distance from the bound exceeds
	// factor*|bound| is raised as critical. Zero disables escalation.
	EscalationFactor float64 `yaml:"escalation_factor"  env:"ALERTING_ESCALATION_FACTOR"  env-default:"1"`
	StatusMetric     string  `yaml:"status_metric"      env:"ALERTING_STATUS_METRIC"      env-default:"status_active"`
	DownSeverity     string  `yaml:"down_severity"      env:"ALERTING_DOWN_SEVERITY"      env-default:"high"`

	OperationTimeout time.Duration `yaml:"operation_timeout"  env:"ALERTING_OPERATION_TIMEOUT"  env-default:"5s"`
	DefaultListLimit int           `yaml:"default_list_limit" env:"ALERTING_DEFAULT_LIST_LIMIT" env-default:"50"`
	MaxListLimit     int           `yaml:"max_list_limit"     env:"ALERTING_MAX_LIST_LIMIT"     env-default:"200"`
}

// EventsConfig holds websocket event stream settings.
type EventsConfig struct {
	Disabled       bool          `yaml:"disabled"        env:"EVENTS_DISABLED"`
	WriteTimeout   time.Duration `yaml:"write_timeout"   env:"EVENTS_WRITE_TIMEOUT"   env-default:"10s"`
	PingInterval   time.Duration `yaml:"ping_interval"   env:"EVENTS_PING_INTERVAL"   env-default:"30s"`
	ClientBuffer   int           `yaml:"client_buffer"   env:"EVENTS_CLIENT_BUFFER"   env-default:"64"`
	AllowedOrigins string        `yaml:"allowed_origins" env:"EVENTS_ALLOWED_ORIGINS" env-default:"*"`
}
