package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"hotelier/internal/config"
	"hotelier/internal/hotel"
	"hotelier/internal/infrastructure/logger"
	"hotelier/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	module := hotel.NewModule(cfg, zapLogger)

	if cfg.Catalog.SeedFile != "" {
		added, err := module.Catalog.SeedFromFile(cfg.Catalog.SeedFile)
		if err != nil {
			// Starting with an empty catalog is fine; rooms can be added
			// from the admin menu.
			zapLogger.Warn("room seed not loaded", zap.String("file", cfg.Catalog.SeedFile), zap.Error(err))
		} else {
			zapLogger.Info("room seed loaded", zap.String("file", cfg.Catalog.SeedFile), zap.Int("rooms", added))
		}
	}

	menu := ui.NewMenu(module.Hotel, module.Admin, os.Stdin, os.Stdout)
	menu.Run()
}
