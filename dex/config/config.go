package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string        `yaml:"log_level" env:"DEX_LOG_LEVEL" env-default:"INFO"`
	LogFile        string        `yaml:"log_file" env:"DEX_LOG_FILE" env-default:""`
	PokeAPIAddress string        `yaml:"pokeapi_address" env:"POKEAPI_ADDRESS" env-default:"https://pokeapi.co/api/v2"`
	ClientTimeout  time.Duration `yaml:"client_timeout" env:"CLIENT_TIMEOUT" env-default:"10s"`
	ClientRate     float64       `yaml:"client_rate" env:"CLIENT_RATE" env-default:"5"`
	LookupTimeout  time.Duration `yaml:"lookup_timeout" env:"LOOKUP_TIMEOUT" env-default:"15s"`
}

// Load reads the optional config file, then lets environment variables
// override it. The widget must start without any file present.
func Load(configPath string) (Config, error) {
	var cfg Config
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
