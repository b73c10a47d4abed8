package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog/log"
)

type Config struct {
	PrimeMin      int64 `env:"PRIME_MIN"`
	PrimeMax      int64 `env:"PRIME_MAX"`
	MaxMessageLen int   `env:"MAX_MESSAGE_LEN"`
	MaxPrimeDraws int   `env:"MAX_PRIME_DRAWS"`
	Seed          int64 `env:"SEED"`
}

func GetConfig() Config {
	var config Config
	flag.Int64Var(&config.PrimeMin, "min", 100, "Prime range lower bound")
	flag.Int64Var(&config.PrimeMax, "max", 1000, "Prime range upper bound")
	flag.IntVar(&config.MaxMessageLen, "l", 100, "Max message length, bytes")
	flag.IntVar(&config.MaxPrimeDraws, "n", 10000, "Max random draws per prime")
	flag.Int64Var(&config.Seed, "s", 0, "Random seed, 0 for time-based")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse config")
	}

	return config
}
