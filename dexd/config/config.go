package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	Address           string        `yaml:"dexd_address" env:"DEXD_ADDRESS" env-default:":8080"`
	HTTPTimeout       time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT" env-default:"15s"`
	PokeAPIAddress    string        `yaml:"pokeapi_address" env:"POKEAPI_ADDRESS" env-default:"https://pokeapi.co/api/v2"`
	ClientTimeout     time.Duration `yaml:"client_timeout" env:"CLIENT_TIMEOUT" env-default:"10s"`
	ClientRate        float64       `yaml:"client_rate" env:"CLIENT_RATE" env-default:"5"`
	BatchConcurrency  int           `yaml:"batch_concurrency" env:"BATCH_CONCURRENCY" env-default:"4"`
	LookupConcurrency int           `yaml:"lookup_concurrency" env:"LOOKUP_CONCURRENCY" env-default:"8"`
}

func MustLoad(configPath string) Config {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config %s: %s", configPath, err)
	}
	return cfg
}
