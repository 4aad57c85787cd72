package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DbDriver   string // pgx|gorm
	DbHost     string
	DbPort     string
	DbUser     string
	DbPass     string
	DbName     string
	DbSSLMode  string
	DbMaxConns int32
	Migrate    bool

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTSecret         string
	TokenTTL          time.Duration

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует, чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	ttl, err := time.ParseDuration(def(os.Getenv("TOKEN_TTL"), "720h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	maxConns, err := strconv.ParseInt(def(os.Getenv("DB_MAX_CONNS"), "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("DB_MAX_CONNS: %w", err)
	}
	rps, err := strconv.ParseFloat(def(os.Getenv("RATE_LIMIT_RPS"), "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(def(os.Getenv("RATE_LIMIT_BURST"), "5"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	migrate, err := strconv.ParseBool(def(os.Getenv("MIGRATE"), "true"))
	if err != nil {
		return nil, fmt.Errorf("MIGRATE: %w", err)
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		DbDriver:   strings.ToLower(def(os.Getenv("DB_DRIVER"), "pgx")),
		DbHost:     os.Getenv("DB_HOST"),
		DbPort:     def(os.Getenv("DB_PORT"), "5432"),
		DbUser:     os.Getenv("DB_USER"),
		DbPass:     os.Getenv("DB_PASSWORD"),
		DbName:     os.Getenv("DB_NAME"),
		DbSSLMode:  def(os.Getenv("DB_SSLMODE"), "disable"),
		DbMaxConns: int32(maxConns),
		Migrate:    migrate,

		JWTPrivateKeyPath: os.Getenv("JWT_PRIVATE_KEY_PATH"),
		JWTPublicKeyPath:  os.Getenv("JWT_PUBLIC_KEY_PATH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          ttl,

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		RateLimitRPS:   rps,
		RateLimitBurst: burst,
		CORSOrigins:    splitList(def(os.Getenv("CORS_ORIGINS"), "*")),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}
	if c.DbDriver != "pgx" && c.DbDriver != "gorm" {
		return nil, fmt.Errorf("unknown DB_DRIVER %q", c.DbDriver)
	}

	// Ключи подписи: пара RSA или общий секрет
	if !c.UseRSAKeys() {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return nil, fmt.Errorf("no signing key (JWT_PRIVATE_KEY_PATH/JWT_PUBLIC_KEY_PATH or JWT_SECRET)")
		}
		warnings = append(warnings, "RSA key pair is not set, falling back to HS256 with JWT_SECRET")
	}

	if c.RateLimitRPS <= 0 {
		warnings = append(warnings, "RATE_LIMIT_RPS <= 0, rate limiting disabled")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

func (c *Config) UseRSAKeys() bool {
	return c.JWTPrivateKeyPath != "" && c.JWTPublicKeyPath != ""
}

// GetDSN: полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe: DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
