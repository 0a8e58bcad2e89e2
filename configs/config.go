package configs

import (
	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port                    string `env:"PORT" envDefault:"8080"`
	JWTSecret               string `env:"JWT_SECRET"`
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsJSON string `env:"FIREBASE_CREDENTIALS_JSON"`
	SuperAdminEmail         string `env:"SUPER_ADMIN_EMAIL"`
}

// Load reads a local .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
