package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lexiread/lexiread"
	"github.com/lexiread/lexiread/config"
	"github.com/lexiread/lexiread/dictionary"
	"github.com/lexiread/lexiread/logging"
	"github.com/lexiread/lexiread/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.NewLogger(nil).Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	log := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})

	svc := lexiread.New(func(o *lexiread.Options) {
		o.Logger = log.WithComponent("provider")
	})

	srv := server.New(cfg, log.WithComponent("server"), svc, dictionary.NewStore())

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Server.Addr())
		errCh <- srv.Listen()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown error", "error", err.Error())
			os.Exit(1)
		}
	}
}
