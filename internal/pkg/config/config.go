package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, app secrets)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	App       AppConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Shopify   ShopifyConfig
	QR        QRConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// CIDRs or IPs allowed to set X-Forwarded-For; empty means the peer address is the client IP
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

// AppConfig holds the public origin the app is served from. Scan URLs encoded
// into QR images are resolved against it.
type AppConfig struct {
	URL string `envconfig:"SHOPIFY_APP_URL" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"https://admin.shopify.com"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Shopify-Retry-Invalid-Session-Request"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type ShopifyConfig struct {
	APIKey        string        `envconfig:"SHOPIFY_API_KEY" required:"true"`
	APISecret     string        `envconfig:"SHOPIFY_API_SECRET" required:"true"`
	APIVersion    string        `envconfig:"SHOPIFY_API_VERSION" default:"2024-10"`
	LookupTimeout time.Duration `envconfig:"SHOPIFY_LOOKUP_TIMEOUT" default:"5s"`
}

type QRConfig struct {
	ImageSize     int    `envconfig:"QR_IMAGE_SIZE" default:"256"`
	RecoveryLevel string `envconfig:"QR_RECOVERY_LEVEL" default:"medium"`
}

type RateLimitConfig struct {
	// limiter format, e.g. "120-M" = 120 requests per minute per client IP
	Scan     string `envconfig:"SCAN_RATE_LIMIT" default:"120-M"`
	RedisURL string `envconfig:"REDIS_URL"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		App: AppConfig{
			URL: "https://qrcodes.example.test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"https://admin.shopify.com"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length", "X-Shopify-Retry-Invalid-Session-Request"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Shopify: ShopifyConfig{
			APIKey:        "test-api-key",
			APISecret:     "test-api-secret",
			APIVersion:    "2024-10",
			LookupTimeout: 2 * time.Second,
		},
		QR: QRConfig{
			ImageSize:     128,
			RecoveryLevel: "medium",
		},
		RateLimit: RateLimitConfig{
			Scan: "1000-M",
		},
	}
}
