package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	RateLimit    RateLimit
	GeminiApiKey string
	JWTSecret    string
	Environment  string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RateLimit struct {
	RequestsPerMinute int
	Burst             int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("JWT_SECRET", "dev")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 100)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.RateLimit.RequestsPerMinute = viper.GetInt("RATE_LIMIT_PER_MINUTE")
	config.RateLimit.Burst = viper.GetInt("RATE_LIMIT_BURST")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.JWTSecret = viper.GetString("JWT_SECRET")
	config.Environment = viper.GetString("ENVIRONMENT")

	log.Info().Str("port", config.Server.Port).Str("environment", config.Environment).Msg("Config loaded")
	return &config, nil
}

// IsProduction reports whether diagnostic details should be hidden from API responses.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
