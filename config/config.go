package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Consul   ConsulConfig
	Registry RegistryConfig
	Upload   UploadConfig
	Cors     CorsConfig
}

type AppConfig struct {
	Mode string
	API  APIConfig
}

type APIConfig struct {
	Rest RestConfig
}

type RestConfig struct {
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret string
}

// AdminConfig holds the single administrator credential pair. The admin is
// never stored in the users collection.
type AdminConfig struct {
	Username string
	Password string
}

type ConsulConfig struct {
	Enabled bool
	Host    string
	Port    string
}

type RegistryConfig struct {
	Host string
}

type UploadConfig struct {
	Dir string
}

type CorsConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Mode: getEnv("APP_MODE", "debug"),
			API: APIConfig{
				Rest: RestConfig{
					Port: getEnv("PORT", "5000"),
				},
			},
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "online_voting"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "789456"),
			Password: getEnv("ADMIN_PASSWORD", "@dmin"),
		},
		Consul: ConsulConfig{
			Enabled: getEnv("CONSUL_ENABLED", "false") == "true",
			Host:    getEnv("CONSUL_HOST", "localhost"),
			Port:    getEnv("CONSUL_PORT", "8500"),
		},
		Registry: RegistryConfig{
			Host: getEnv("REGISTRY_HOST", "localhost"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Cors: CorsConfig{
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
