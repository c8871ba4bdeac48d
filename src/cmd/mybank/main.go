package main

import (
	"context"
	"os"

	"github.com/api-sage/mybank-console/src/internal/adapter/console"
	"github.com/api-sage/mybank-console/src/internal/adapter/repository/memory"
	"github.com/api-sage/mybank-console/src/internal/config"
	"github.com/api-sage/mybank-console/src/internal/logger"
	"github.com/api-sage/mybank-console/src/internal/usecase/services"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	dotenvErr := godotenv.Load()

	cfg, cfgErr := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		logger.Error("init logger", err, nil)
	}
	if cfgErr != nil {
		logger.Warn("using default configuration values", logger.Fields{"error": cfgErr.Error()})
	}
	if dotenvErr != nil {
		logger.Debug("no .env file loaded, relying on environment", nil)
	}

	accountRepo := memory.NewAccountRepository()
	defer accountRepo.Close()

	accountService := services.NewAccountService(accountRepo)
	driver := console.NewDriver(accountService, os.Stdin, os.Stdout, cfg.CurrencyLabel)

	if err := driver.Run(context.Background()); err != nil {
		logger.Error("console session aborted", err, logger.Fields{"sessionId": driver.SessionID()})
	}
}
