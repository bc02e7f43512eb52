package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	RedisAddr         string
	AppPort           string
	AppEnv            string
	JWTSecret         string
	GeocoderAPIKey    string
	GeocoderBaseURL   string
	RestaurantAddress string
}

const defaultRestaurantAddress = "Parirenyetwa Rd, Lusaka 10101, Zambia"

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		AppPort:           getEnv("APP_PORT", "8080"),
		AppEnv:            os.Getenv("APP_ENV"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GeocoderAPIKey:    os.Getenv("GEOCODER_API_KEY"),
		GeocoderBaseURL:   getEnv("GEOCODER_BASE_URL", "https://api.openrouteservice.org"),
		RestaurantAddress: getEnv("RESTAURANT_ADDRESS", defaultRestaurantAddress),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
