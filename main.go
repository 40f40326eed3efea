package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"conquest/config"
	"conquest/experiments"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults apply when empty)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		cfg = loaded
	}

	if err := experiments.RunSelfPlay(cfg); err != nil {
		log.Error().Err(err).Msg("self-play run failed")
		os.Exit(1)
	}
}
