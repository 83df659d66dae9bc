package main

import (
	"log"

	_ "contribhub/docs"
	"contribhub/internal/config"
	"contribhub/internal/server"

	"go.uber.org/zap"
)

// @title           Contribhub API
// @version         1.0
// @description     Task ownership and assignment for code-hosting projects.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatal("server initialization failed", zap.Error(err))
	}

	s.Run()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
