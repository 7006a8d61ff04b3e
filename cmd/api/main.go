package main

import (
	"context"
	"os"
	"os/signal"
	"pawsitter/internal/app"
	"pawsitter/internal/logger"
	"pawsitter/internal/server"
	"syscall"
	"time"
)

// In-flight requests get this long to drain before the listener is torn down.
const shutdownGrace = 5 * time.Second

func awaitShutdown(
	app *app.App,
	appServer *server.AppServer,
	done chan bool,
	log logger.Logger,
) {
	log = log.Function("awaitShutdown")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("signal received, draining marketplace API")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := appServer.FiberApp.ShutdownWithContext(ctx); err != nil {
		log.Er("server forced to shutdown", err)
	}

	if err := app.Database.Close(); err != nil {
		log.Er("failed to close database", err)
	}

	log.Info("marketplace API stopped")
	done <- true
}

func main() {
	log := logger.New("main")

	app, err := app.New()
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Er("failed to close app", err)
		}
	}()

	apiServer, err := server.New(app)
	if err != nil {
		os.Exit(1)
	}

	done := make(chan bool, 1)

	go func() {
		if err := apiServer.Listen(app.Config.ServerPort); err != nil {
			os.Exit(1)
		}
	}()

	go awaitShutdown(app, apiServer, done, log)

	<-done
	log.Info("shutdown complete")
}
