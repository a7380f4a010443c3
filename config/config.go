package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string `envconfig:"PORT" default:"8083"`
	GinMode        string `envconfig:"GIN_MODE"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseDSN    string `envconfig:"DATABASE_DSN" default:"cafes.db"`
	APIKey         string `envconfig:"API_KEY" required:"true"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS"`
}

var (
	conf Config
	once sync.Once
)

// Init loads .env if present, then fills the config from the environment.
// API_KEY has no default: the delete secret must be supplied externally.
func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Debug().Err(loadErr).Msg("No .env file loaded, using existing environment")
		}

		err = envconfig.Process("", &conf)
	})

	return err
}

func Get() *Config {
	return &conf
}
