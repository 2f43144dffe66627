package config

import (
	"strings"
	"time"
)

// Config is the root application configuration. Booleans that default to
// true are set in defaults(); an env-default tag would override an explicit
// false from YAML.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
	Redis     RedisConfig     `yaml:"redis"`
	Email     EmailConfig     `yaml:"email"`
	LLM       LLMConfig       `yaml:"llm"`
	ModelAPI  ModelAPIConfig  `yaml:"model_api"`
	Upload    UploadConfig    `yaml:"upload"`
	Progress  ProgressConfig  `yaml:"progress"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-Ip.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"mudhakir"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	ResetTokenTTL    time.Duration `yaml:"reset_token_ttl"    env:"AUTH_RESET_TOKEN_TTL"    env-default:"30m"`
	ResetURL         string        `yaml:"reset_url"          env:"AUTH_RESET_URL"          env-default:"http://localhost:3000/reset-password"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RedisConfig holds the connection used for password-reset tokens.
// An empty Addr disables password reset.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// EmailConfig holds outgoing mail settings. Without a SendGrid key
// messages are written to the log.
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"EMAIL_SENDGRID_API_KEY"`
	SendGridHost   string `yaml:"sendgrid_host"    env:"EMAIL_SENDGRID_HOST"    env-default:"https://api.sendgrid.com"`
	FromAddress    string `yaml:"from_address"     env:"EMAIL_FROM_ADDRESS"     env-default:"no-reply@mudhakir.app"`
	FromName       string `yaml:"from_name"        env:"EMAIL_FROM_NAME"        env-default:"Mudhakir"`
}

// LLMConfig selects and configures the chat-completion provider.
type LLMConfig struct {
	Provider      string        `yaml:"provider"        env:"LLM_PROVIDER"        env-default:"openai"`
	APIKey        string        `yaml:"api_key"         env:"LLM_API_KEY"`
	BaseURL       string        `yaml:"base_url"        env:"LLM_BASE_URL"`
	Model         string        `yaml:"model"           env:"LLM_MODEL"           env-default:"gpt-4o-mini"`
	MaxTokens     int           `yaml:"max_tokens"      env:"LLM_MAX_TOKENS"      env-default:"4096"`
	Timeout       time.Duration `yaml:"timeout"         env:"LLM_TIMEOUT"         env-default:"90s"`
	MaxInputChars int           `yaml:"max_input_chars" env:"LLM_MAX_INPUT_CHARS" env-default:"12000"`
}

// Enabled reports whether an API key is configured.
func (c LLMConfig) Enabled() bool { return c.APIKey != "" }

// ModelAPIConfig holds the address of the sibling model microservice.
// An empty BaseURL disables forwarding and quiz generation falls back to the LLM.
type ModelAPIConfig struct {
	BaseURL string        `yaml:"base_url" env:"MODEL_API_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"MODEL_API_TIMEOUT" env-default:"60s"`
}

// Enabled reports whether the model service is configured.
func (c ModelAPIConfig) Enabled() bool { return c.BaseURL != "" }

// UploadConfig holds PDF pipeline settings. ReadTimeout bounds reading an
// upload body and replaces server.read_timeout on that route.
type UploadConfig struct {
	MaxSizeBytes      int64         `yaml:"max_size_bytes"      env:"UPLOAD_MAX_SIZE_BYTES"      env-default:"20971520"`
	ReadTimeout       time.Duration `yaml:"read_timeout"        env:"UPLOAD_READ_TIMEOUT"        env-default:"10m"`
	TempDir           string        `yaml:"temp_dir"            env:"UPLOAD_TEMP_DIR"`
	ScanEnabled       bool          `yaml:"scan_enabled"        env:"UPLOAD_SCAN_ENABLED"`
	ScanCommand       string        `yaml:"scan_command"        env:"UPLOAD_SCAN_COMMAND"        env-default:"clamscan"`
	SanitizeEnabled   bool          `yaml:"sanitize_enabled"    env:"UPLOAD_SANITIZE_ENABLED"`
	SanitizeCommand   string        `yaml:"sanitize_command"    env:"UPLOAD_SANITIZE_COMMAND"    env-default:"gs"`
	ProcessTimeout    time.Duration `yaml:"process_timeout"     env:"UPLOAD_PROCESS_TIMEOUT"     env-default:"120s"`
	MaxExtractedChars int           `yaml:"max_extracted_chars" env:"UPLOAD_MAX_EXTRACTED_CHARS" env-default:"500000"`
}

// ProgressConfig holds dashboard settings.
type ProgressConfig struct {
	Timezone           string `yaml:"timezone"             env:"PROGRESS_TIMEZONE"             env-default:"Asia/Riyadh"`
	DefaultHistoryDays int    `yaml:"default_history_days" env:"PROGRESS_DEFAULT_HISTORY_DAYS" env-default:"30"`
	MaxHistoryDays     int    `yaml:"max_history_days"     env:"PROGRESS_MAX_HISTORY_DAYS"     env-default:"365"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// RateLimitConfig limits requests per client IP on the auth endpoints.
type RateLimitConfig struct {
	Enabled       bool          `yaml:"enabled"         env:"RATE_LIMIT_ENABLED"`
	AuthPerMinute int           `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
	CleanupEvery  time.Duration `yaml:"cleanup_every"   env:"RATE_LIMIT_CLEANUP_EVERY"   env-default:"5m"`
}

// defaults returns a Config with the true-by-default booleans set. Load
// decodes YAML and environment on top of it.
func defaults() Config {
	return Config{
		CORS:      CORSConfig{AllowCredentials: true},
		Upload:    UploadConfig{ScanEnabled: true, SanitizeEnabled: true},
		RateLimit: RateLimitConfig{Enabled: true},
	}
}

// Origins splits AllowedOrigins into a trimmed list.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
