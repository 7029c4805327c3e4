package config

import (
	"log"

	"github.com/spf13/viper"
)

// Service identity reported by the health endpoint.
const (
	AppName    = "truck-load-planner"
	AppVersion = "1.0.0"
)

type Config struct {
	ServerPort          string `mapstructure:"SERVER_PORT"`
	ClientOrigin        string `mapstructure:"CLIENT_ORIGIN"`
	MaxOrdersPerRequest int    `mapstructure:"MAX_ORDERS_PER_REQUEST"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env") // Name of config file (without extension)
	viper.SetConfigType("env")

	// Defaults double as key registrations so AutomaticEnv can unmarshal
	// keys that only exist in the environment.
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CLIENT_ORIGIN", "*")
	viper.SetDefault("MAX_ORDERS_PER_REQUEST", 25)

	viper.AutomaticEnv() // Read in environment variables that match

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {
		// Allow a missing .env file; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No .env file found.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
