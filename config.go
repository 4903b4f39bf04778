package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config game and server settings.
type Config struct {
	Opponent    string `env:"CHESS_OPPONENT"`
	Load        string `env:"CHESS_LOAD"`
	SaveFile    string `env:"CHESS_SAVE_FILE"    envDefault:"save.txt"`
	MaxTurns    int    `env:"CHESS_MAX_TURNS"    envDefault:"0"`
	ClearScreen bool   `env:"CHESS_CLEAR_SCREEN" envDefault:"true"`
	LogLevel    string `env:"CHESS_LOG_LEVEL"    envDefault:"info"`
	Database    string `env:"PGDATABASE"`
	Addr        string `env:"CHESS_ADDR"         envDefault:":8080"`
	Serve       bool
}

const (
	opponentIA     = "ia"
	opponentPlayer = "player"
	answerYes      = "yes"
	answerNo       = "no"
)

func loadConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "serve recorded games instead of playing")
	fs.StringVar(&cfg.Opponent, "opponent", cfg.Opponent, "ia or player; empty asks")
	fs.StringVar(&cfg.Load, "load", cfg.Load, "yes or no; empty asks")
	fs.StringVar(&cfg.SaveFile, "save-file", cfg.SaveFile, "save file path")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "end the game after this many turns, 0 for no limit")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "spectator API listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	switch cfg.Opponent {
	case "", opponentIA, opponentPlayer:
	default:
		return Config{}, fmt.Errorf("unknown opponent %q", cfg.Opponent)
	}
	switch cfg.Load {
	case "", answerYes, answerNo:
	default:
		return Config{}, fmt.Errorf("unknown load answer %q", cfg.Load)
	}
	if cfg.MaxTurns < 0 {
		return Config{}, fmt.Errorf("negative max turns %d", cfg.MaxTurns)
	}
	return cfg, nil
}
