package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
	Docs     DocsConfig
	Search   SearchConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type BookingConfig struct {
	// FallbackFare is charged when no route matches the booking request.
	FallbackFare float64
	// RejectWhenFull rejects bookings against routes with no seats left
	// instead of accepting them without a seat decrement.
	RejectWhenFull bool
	// ReferenceAttempts bounds the regenerate-on-collision loop.
	ReferenceAttempts int
}

type DocsConfig struct {
	Dir      string
	DataFile string
}

type SearchConfig struct {
	DefaultTopK int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("FALLBACK_FARE", 400)
	viper.SetDefault("REJECT_WHEN_FULL", false)
	viper.SetDefault("REFERENCE_ATTEMPTS", 5)
	viper.SetDefault("DOCS_DIR", "attachment")
	viper.SetDefault("DATA_FILE", "data.json")
	viper.SetDefault("SEARCH_TOP_K", 3)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Booking: BookingConfig{
			FallbackFare:      viper.GetFloat64("FALLBACK_FARE"),
			RejectWhenFull:    viper.GetBool("REJECT_WHEN_FULL"),
			ReferenceAttempts: viper.GetInt("REFERENCE_ATTEMPTS"),
		},
		Docs: DocsConfig{
			Dir:      viper.GetString("DOCS_DIR"),
			DataFile: viper.GetString("DATA_FILE"),
		},
		Search: SearchConfig{
			DefaultTopK: viper.GetInt("SEARCH_TOP_K"),
		},
	}

	return config, nil
}
