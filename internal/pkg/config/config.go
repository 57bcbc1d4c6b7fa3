package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   signing secret)
// - default: Values common across all environments (TTLs, intervals, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	GuestAccess GuestAccessConfig
	Mailer      MailerConfig
	Sweep       SweepConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// GuestAccessConfig drives the signed access-credential subsystem. TokenTTL
// sets both the embedded token expiry and the persisted expires_at.
type GuestAccessConfig struct {
	Secret     string        `envconfig:"GUEST_ACCESS_SECRET" required:"true"`
	TokenTTL   time.Duration `envconfig:"GUEST_ACCESS_TOKEN_TTL" default:"24h"`
	MaxRetries int           `envconfig:"GUEST_ACCESS_TX_MAX_RETRIES" default:"3"`
	LinkBase   string        `envconfig:"GUEST_ACCESS_LINK_BASE" default:"http://localhost:3000/guest/bookings"`
}

type MailerConfig struct {
	APIKey    string `envconfig:"MAILERSEND_API_KEY" default:""`
	FromName  string `envconfig:"MAILER_FROM_NAME" default:"Bookings"`
	FromEmail string `envconfig:"MAILER_FROM_EMAIL" default:""`
}

type SweepConfig struct {
	Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		GuestAccess: GuestAccessConfig{
			Secret:     "test-guest-access-secret",
			TokenTTL:   24 * time.Hour,
			MaxRetries: 3,
			LinkBase:   "http://localhost:3000/guest/bookings",
		},
		Sweep: SweepConfig{
			Interval: time.Hour,
		},
	}
}
