package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/nchess/rules"
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler()
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open open.
func Open(addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, idleConnsClosed)
	<-idleConnsClosed
}

func idle(retention time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		idleError("game idle complete:", gameIdle(retention))
	}
}

func startPosition(cfg config) (rules.Position, error) {
	if cfg.FEN == "" {
		return rules.NewGame(), nil
	}
	return rules.FromFEN(cfg.FEN)
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	setupLogging(cfg)

	if cfg.Play {
		start, err := startPosition(cfg)
		if err != nil {
			log.WithError(err).Fatal("invalid starting position")
		}
		if _, err := playTerminal(os.Stdin, os.Stdout, start); err != nil {
			log.WithError(err).Fatal("game aborted")
		}
		return
	}

	database, err := openDB(cfg.Database)
	if err != nil {
		log.WithError(err).WithField("db", cfg.Database).Fatal("failed to open database")
	}
	db = database
	defer func() {
		idleError("close server:", Close())
	}()
	go idle(cfg.Retention)
	log.WithField("addr", cfg.Addr).Info("serving")
	Open(cfg.Addr)
}
