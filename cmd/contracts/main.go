package main

import (
	"flag"
	"os"

	"go-hrms/internal/app"
	"go-hrms/internal/contract"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	var (
		autoRenew = flag.Bool("auto-renew", false, "also create renewals for eligible contracts")
		days      = flag.Int("days", contract.DefaultExpiringSoonDays, "expiry window in days for the expiring-soon listing")
	)
	flag.Parse()

	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	opts := app.ContractCheckOptions{Days: *days, AutoRenew: *autoRenew}
	if err := app.RunContractCheck(cfg, opts, os.Stdout); err != nil {
		logger.Fatal("contract check failed", zap.Error(err))
	}
}
