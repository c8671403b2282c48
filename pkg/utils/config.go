package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// DevJWTSecret is the insecure fallback signing secret. Never use in production.
const DevJWTSecret = "dev-secret-change-me"

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Store    StoreConfig
	Delivery DeliveryConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type StoreConfig struct {
	UsersFile string
}

type DeliveryConfig struct {
	EstimateMinutes float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "kirana-connect")
	viper.SetDefault("PORT", "4000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("JWT_SECRET", DevJWTSecret)
	viper.SetDefault("JWT_EXPIRY_HOURS", 168) // 7 days
	viper.SetDefault("USERS_FILE", "data/users.json")
	viper.SetDefault("DELIVERY_ESTIMATE_MINUTES", 0.5)

	// .env is optional, defaults plus environment are enough
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
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
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Store: StoreConfig{
			UsersFile: viper.GetString("USERS_FILE"),
		},
		Delivery: DeliveryConfig{
			EstimateMinutes: viper.GetFloat64("DELIVERY_ESTIMATE_MINUTES"),
		},
	}

	return config, nil
}
