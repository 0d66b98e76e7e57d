package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Stripe   StripeConfig
	LeadLog  LeadLogConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	PublicBaseURL string
	AdminToken    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type StripeConfig struct {
	SecretKey string
}

type LeadLogConfig struct {
	EndpointURL    string
	Token          string
	TimeoutSeconds int
}

type BookingConfig struct {
	FlowTTLMinutes int
	DefaultLocale  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("LEADLOG_TIMEOUT_SECONDS", 5)
	viper.SetDefault("FLOW_TTL_MINUTES", 45)
	viper.SetDefault("DEFAULT_LOCALE", "en")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			Port:          viper.GetString("PORT"),
			Debug:         viper.GetBool("DEBUG"),
			LogPath:       viper.GetString("LOG_PATH"),
			PublicBaseURL: viper.GetString("PUBLIC_BASE_URL"),
			AdminToken:    viper.GetString("ADMIN_TOKEN"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
		},
		LeadLog: LeadLogConfig{
			EndpointURL:    viper.GetString("LEADLOG_ENDPOINT_URL"),
			Token:          viper.GetString("LEADLOG_TOKEN"),
			TimeoutSeconds: viper.GetInt("LEADLOG_TIMEOUT_SECONDS"),
		},
		Booking: BookingConfig{
			FlowTTLMinutes: viper.GetInt("FLOW_TTL_MINUTES"),
			DefaultLocale:  viper.GetString("DEFAULT_LOCALE"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate fails fast at bootstrap on missing required keys, so a half
// configured process never starts accepting bookings. Tests build Config
// values directly and skip this path.
func (c *Config) validate() error {
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if c.App.PublicBaseURL == "" {
		return fmt.Errorf("PUBLIC_BASE_URL is required")
	}
	return nil
}
