// Command blockfall is the graphical frontend. It runs as a desktop window and
// builds to WebAssembly for browsers, where touch input drives the game.
package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/tetris"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 640
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

	engine := tetris.New(cfg.EngineOptions(logger)...)
	game := NewGame(engine, newOverlay(cfg.Debug), logger)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("blockfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info().
		Str("speed", tetris.SpeedName(engine.Speed())).
		Str("session", engine.Session().String()).
		Msg("starting")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
