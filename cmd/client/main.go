package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/tictactoe/client/game"
	"github.com/cbodonnell/tictactoe/pkg/config"
	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to environment variables)")
	logLevel := flag.String("log-level", "", "Log level, overrides the config")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)
	log.Info("Board %dx%d, slot size %v, legality enforced: %t", cfg.Board.GridSize, cfg.Board.GridSize, cfg.Board.SlotSize, cfg.Board.EnforceLegality)

	g, err := game.NewGame(game.NewGameOptions{
		Config: cfg,
		Debug:  *debug || cfg.Debug,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
