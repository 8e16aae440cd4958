// Command blockfall-serve hosts the WebAssembly build of blockfall.
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		log.Fatal().Err(err).Msg("build logger")
	}

	if _, err := os.Stat(cfg.Dir); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Dir).Msg("static dir")
	}

	logger.Info().Str("addr", cfg.Addr).Str("dir", cfg.Dir).Msg("listening")
	if err := NewServer(cfg.Dir, logger).Start(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
