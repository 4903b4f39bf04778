package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, games gameReader, idleConnsClosed chan<- interface{}) {
	e := apiHandler(games)
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open serves recorded games until interrupted.
func Open(addr string, games gameReader) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, games, idleConnsClosed)
	<-idleConnsClosed
}

func main() {
	log.SetHandler(cli.New(os.Stderr))

	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).WithField("level", cfg.LogLevel).Fatal("invalid log level")
	}
	log.SetLevel(level)

	var st *store
	if cfg.Database != "" {
		st, err = openStore(cfg.Database)
		if err != nil {
			log.WithError(err).WithField("dbname", cfg.Database).Fatal("failed to connect database")
		}
		defer func() {
			idleError("close database:", st.Close())
		}()
	}

	if cfg.Serve {
		if st == nil {
			log.Fatal("serving recorded games needs PGDATABASE")
		}
		Open(cfg.Addr, st)
		return
	}

	var recorder gameRecorder
	if st != nil {
		recorder = st
	}
	if err := play(cfg, os.Stdin, os.Stdout, recorder); err != nil {
		log.WithError(err).Error("game aborted")
		idleError("close database:", closeStore(st))
		os.Exit(1)
	}
}

func closeStore(st *store) error {
	if st == nil {
		return nil
	}
	return st.Close()
}
