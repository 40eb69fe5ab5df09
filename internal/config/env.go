package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	defaultSessionSecret = "change-me-session-secret"
	defaultJWTSecret     = "change-me-jwt-secret"
)

type Env struct {
	AppAddr  string `envconfig:"APP_ADDR" default:":8080"`
	GinMode  string `envconfig:"GIN_MODE"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DBUser     string `envconfig:"DB_USER" default:"root"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1:3306"`
	DBName     string `envconfig:"DB_NAME" default:"wildlife_booking"`

	AutoMigrate      bool `envconfig:"AUTO_MIGRATE" default:"true"`
	SeedAvailability bool `envconfig:"SEED_AVAILABILITY" default:"false"`
	SeedDays         int  `envconfig:"SEED_DAYS" default:"30"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173"`
	SessionSecret      string   `envconfig:"SESSION_SECRET" default:"change-me-session-secret"`

	JWTSecret            string        `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	ConfirmationTokenTTL time.Duration `envconfig:"CONFIRMATION_TOKEN_TTL" default:"720h"`
	AdminUsername        string        `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPasswordHash    string        `envconfig:"ADMIN_PASSWORD_HASH"`

	FormURL         string `envconfig:"FORM_URL" default:"/#booking"`
	ConfirmationURL string `envconfig:"CONFIRMATION_URL" default:"/booking-confirmation"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	MailFrom     string `envconfig:"MAIL_FROM" default:"WildVentures <bookings@wildventures.com>"`
}

// LoadEnv reads an optional .env file, then the process environment.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, err
	}

	env.GinMode = strings.TrimSpace(env.GinMode)
	origins := make([]string, 0, len(env.CORSAllowedOrigins))
	for _, o := range env.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	env.CORSAllowedOrigins = origins
	return env, nil
}

// DebugMode reports whether gin runs in debug mode, which is also gin's
// default when GIN_MODE is unset.
func (e Env) DebugMode() bool {
	return e.GinMode == "" || e.GinMode == "debug"
}

// CheckSecrets rejects empty secrets, and the shipped placeholder secrets
// outside debug mode. In debug mode placeholders only produce a warning.
func (e Env) CheckSecrets() error {
	if strings.TrimSpace(e.SessionSecret) == "" || strings.TrimSpace(e.JWTSecret) == "" {
		return errors.New("SESSION_SECRET and JWT_SECRET must not be empty")
	}
	var placeholders []string
	if e.SessionSecret == defaultSessionSecret {
		placeholders = append(placeholders, "SESSION_SECRET")
	}
	if e.JWTSecret == defaultJWTSecret {
		placeholders = append(placeholders, "JWT_SECRET")
	}
	if len(placeholders) == 0 {
		return nil
	}
	if !e.DebugMode() {
		return errors.New(strings.Join(placeholders, ", ") + " still set to the placeholder default")
	}
	logrus.WithField("vars", placeholders).Warn("placeholder secrets in use, set them before deploying")
	return nil
}

