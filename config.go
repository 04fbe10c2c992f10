package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

type config struct {
	Addr      string
	Database  string
	LogLevel  string
	FEN       string
	Play      bool
	Retention time.Duration
}

func lookupEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func loadConfig(args []string) (config, error) {
	var cfg config
	flags := flag.NewFlagSet("nknight", flag.ContinueOnError)
	flags.StringVar(&cfg.Addr, "addr", lookupEnv("NKNIGHT_ADDR", ":8080"), "HTTP listen address")
	flags.StringVar(&cfg.Database, "db", lookupEnv("PGDATABASE", "test"), "postgres database name")
	flags.StringVar(&cfg.LogLevel, "log-level", lookupEnv("NKNIGHT_LOG_LEVEL", "info"), "debug, info, warn, error or fatal")
	flags.StringVar(&cfg.FEN, "fen", "", "starting position for -play")
	flags.BoolVar(&cfg.Play, "play", false, "play in the terminal instead of serving HTTP")
	flags.DurationVar(&cfg.Retention, "retention", 24*time.Hour, "delete games untouched for this long")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return config{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.Retention <= 0 {
		return config{}, fmt.Errorf("retention must be positive: %s", cfg.Retention)
	}
	return cfg, nil
}

func setupLogging(cfg config) {
	log.SetHandler(cli.Default)
	log.SetLevelFromString(cfg.LogLevel)
}
