// Command blockfall-term plays blockfall in a terminal. Logs go to a file so
// they do not tear the screen.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/term"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger, logFile, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("open log")
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal().Err(err).Msg("create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Fatal().Err(err).Msg("init screen")
	}
	screen.EnableMouse()
	screen.HideCursor()

	var player term.Player
	if cfg.Sound {
		spk := term.NewSpeaker(logger)
		if err := spk.Init(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer spk.Close()
			player = spk
		}
	}

	engine := tetris.New(cfg.EngineOptions(logger)...)
	logger.Info().
		Str("session", engine.Session().String()).
		Str("speed", tetris.SpeedName(engine.Speed())).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = term.NewFrontend(screen, engine, player, logger).Run(ctx)
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("frontend stopped")
		os.Exit(1)
	}
}
