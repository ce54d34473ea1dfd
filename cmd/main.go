package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/soulnest/soulnest/internal/api/handlers"
	"github.com/soulnest/soulnest/internal/api/middleware"
	"github.com/soulnest/soulnest/internal/config"
	"github.com/soulnest/soulnest/internal/connections"
	"github.com/soulnest/soulnest/internal/services"
	"github.com/soulnest/soulnest/pkg/logger"
	"golang.org/x/sync/errgroup"
)

func main() {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		logger.SetConsoleOutput(os.Stdout)
	} else {
		logger.SetOutput(os.Stdout)
	}
	if err := config.LoadDotEnv(); err != nil {
		logger.Warn(logger.CONFIG, "Failed to load .env: %v", err)
	}

	svc, err := services.InitializeServices()
	if err != nil {
		logger.Fatal(logger.APP, "Failed to initialize services: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, svc); err != nil {
		logger.Fatal(logger.APP, "Server error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *services.Services) error {
	srv := &http.Server{
		Addr:    ":" + config.GetPort(),
		Handler: setupRouter(svc),
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(logger.APP, "Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.GetShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
			return err
		}
		if err := svc.Close(); err != nil {
			log.Error().Err(err).Msg("Store close error")
		}
		return nil
	})

	return eg.Wait()
}

func setupRouter(svc *services.Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	manager := connections.NewManager(connections.DefaultTimeouts)
	handlers.RegisterRoutes(r, svc, manager)
	return r
}
