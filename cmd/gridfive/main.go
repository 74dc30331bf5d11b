package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"gridfive/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := initLogger(cfg)

	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	if err := ebiten.RunGame(game.NewApp(cfg, logger)); err != nil {
		log.Fatal(err)
	}
}

func initLogger(cfg *game.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
