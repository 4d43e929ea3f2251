package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Geocoder GeocoderConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// GeocoderConfig configures the external geocoding provider.
// An empty APIKey disables coordinate resolution; the service still starts.
type GeocoderConfig struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Environment-only deployments have no .env file; that is not an error.
	_ = viper.ReadInConfig()

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	geocoderTimeout, err := time.ParseDuration(viper.GetString("GEOCODER_TIMEOUT"))
	if err != nil {
		geocoderTimeout = 5 * time.Second
	}

	geocoderCacheTTL, err := time.ParseDuration(viper.GetString("GEOCODER_CACHE_TTL"))
	if err != nil {
		geocoderCacheTTL = 24 * time.Hour
	}

	geocoderBaseURL := viper.GetString("GEOCODER_BASE_URL")
	if geocoderBaseURL == "" {
		geocoderBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Geocoder: GeocoderConfig{
			APIKey:   viper.GetString("GEOCODER_API_KEY"),
			BaseURL:  geocoderBaseURL,
			Timeout:  geocoderTimeout,
			CacheTTL: geocoderCacheTTL,
		},
	}

	return config, nil
}
