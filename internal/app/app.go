package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-giftcredits/internal/catalog"
	"github.com/denmor86/ya-giftcredits/internal/config"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/network/router"
	"github.com/denmor86/ya-giftcredits/internal/services"
	"github.com/denmor86/ya-giftcredits/internal/storage"
	"github.com/denmor86/ya-giftcredits/internal/worker"
)

func Run(config config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	if err := db.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	store := storage.NewStorage(db)

	// загрузка каталога пакетов, если он указан
	if config.Server.CatalogPath != "" {
		packages, err := catalog.Load(config.Server.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		if err := store.Packages.UpsertPackages(ctx, packages); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		logger.Info("Catalog loaded, packages:", len(packages))
	}

	router := router.NewRouter(config, store, services.NewFXService(config.FX.FXAddr))

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск воркера
	worker := worker.NewPayoutWorker(router.Payouts, config.FX.BatchSize, config.FX.PollInterval)
	worker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server on", config.Server.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
	return nil
}
