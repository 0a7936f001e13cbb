package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Redis   RedisConfig
	Booking BookingConfig
	JWT     JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// StoreConfig selects the key-value store backing booking persistence
type StoreConfig struct {
	Driver string // "redis" or "memory"
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// BookingConfig controls booking repository behavior.
// StrictMode turns the silent no-ops on unknown ids and invalid status
// transitions into explicit errors.
type BookingConfig struct {
	StoreKey   string
	StrictMode bool
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	OTPExpiry     time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	otpExpiry, err := time.ParseDuration(viper.GetString("OTP_EXPIRY"))
	if err != nil {
		otpExpiry = 5 * time.Minute
	}

	storeDriver := viper.GetString("STORE_DRIVER")
	if storeDriver == "" {
		storeDriver = "redis"
	}

	storeKey := viper.GetString("BOOKING_STORE_KEY")
	if storeKey == "" {
		storeKey = "eldercare:bookings"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Store: StoreConfig{
			Driver: storeDriver,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Booking: BookingConfig{
			StoreKey:   storeKey,
			StrictMode: viper.GetBool("BOOKING_STRICT_MODE"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
			OTPExpiry:     otpExpiry,
		},
	}

	return config, nil
}
