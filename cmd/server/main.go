package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/FireBellyToad/WorldsViscera-sub000/internal/config"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/engine"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/server"
	"github.com/FireBellyToad/WorldsViscera-sub000/internal/version"
	"github.com/FireBellyToad/WorldsViscera-sub000/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация: файл -> окружение -> флаги
	var seed int64
	var configPath string
	flag.Int64Var(&seed, "seed", 0, "Master seed for the run (0 for random)")
	flag.StringVar(&configPath, "config", "server.yaml", "Path to YAML config")
	flag.Parse()

	logger.Log.Info("Starting Worlds' Viscera server...")
	logger.Log.Info(version.String())

	fileCfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.Fatal("Config error:", err)
	}

	cfg := engine.NewConfig()
	cfg.Debug = fileCfg.Debug
	switch {
	case seed != 0:
		cfg.Seed = seed
		logger.Log.Infof("Using explicit master seed: %d", seed)
	case fileCfg.Seed != 0:
		cfg.Seed = fileCfg.Seed
		logger.Log.Infof("Using configured master seed: %d", fileCfg.Seed)
	default:
		logger.Log.Infof("Using random master seed: %d", cfg.Seed)
	}

	// 2. Ядро
	gameService := engine.NewService(cfg)
	gameService.Start()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. HTTP/WebSocket-оболочка
	srv := server.New(gameService, fileCfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	gameService.Stop()
	logger.Log.Info("Done.")
}
