package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, store URL, secrets)
// - default: Values common across all environments (timeouts, standard settings)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Seed   SeedConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig points at the external generic resource store (json-server style
// REST API exposing the slots and bookings collections).
type StoreConfig struct {
	BaseURL string        `envconfig:"STORE_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"STORE_TIMEOUT" default:"10s"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// SeedConfig describes the two demo accounts backing the static credential
// directory. There is no user database; the directory is a fixed list.
type SeedConfig struct {
	ProviderUsername string `envconfig:"SEED_PROVIDER_USERNAME" default:"provider"`
	ProviderPassword string `envconfig:"SEED_PROVIDER_PASSWORD" default:"provider123"`
	ProviderName     string `envconfig:"SEED_PROVIDER_NAME" default:"Dr. John Smith"`
	ProviderEmail    string `envconfig:"SEED_PROVIDER_EMAIL" default:"provider@clinic.example"`
	ClientUsername   string `envconfig:"SEED_CLIENT_USERNAME" default:"client"`
	ClientPassword   string `envconfig:"SEED_CLIENT_PASSWORD" default:"client123"`
	ClientName       string `envconfig:"SEED_CLIENT_NAME" default:"Jane Doe"`
	ClientEmail      string `envconfig:"SEED_CLIENT_EMAIL" default:"client@mail.example"`
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
		Store: StoreConfig{
			BaseURL: "http://localhost:3999",
			Timeout: 2 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Seed: SeedConfig{
			ProviderUsername: "provider",
			ProviderPassword: "provider123",
			ProviderName:     "Dr. John Smith",
			ProviderEmail:    "provider@clinic.example",
			ClientUsername:   "client",
			ClientPassword:   "client123",
			ClientName:       "Jane Doe",
			ClientEmail:      "client@mail.example",
		},
	}
}
