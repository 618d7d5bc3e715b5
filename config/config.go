package config

import (
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config is the full process configuration. Required variables abort startup
// when missing; everything else has a workable default.
type Config struct {
	Port              string `env:"PORT,default=8083"`
	GinMode           string `env:"GIN_MODE,default=debug"`
	DatabaseDSN       string `env:"DATABASE_DSN,required"`
	SecretKey         string `env:"SECRET_KEY,required"`
	StripeSecretKey   string `env:"STRIPE_SECRET_KEY,default="`
	PublicBaseURL     string `env:"PUBLIC_BASE_URL,default=http://localhost:8083"`
	AllowedOrigins    string `env:"ALLOWED_ORIGINS,default="`
	SessionCookieName string `env:"SESSION_COOKIE_NAME,default=vilcos_session"`
	SessionMaxAge     int    `env:"SESSION_MAX_AGE,default=1209600"` // 14 days
	SessionSecure     bool   `env:"SESSION_COOKIE_SECURE,default=false"`
}

// Load reads .env if present, then decodes the environment. Missing required
// variables surface as an error so main can fail fast.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
