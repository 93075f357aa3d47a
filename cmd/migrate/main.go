// Command migrate runs the schema migration and seeds the doctor
// account, then exits. Useful for deploys that keep AutoMigrate off.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"medsystem/internal/core/config"
	"medsystem/internal/core/database"
	"medsystem/internal/core/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	log.Info("migrate done")

	if err := database.Seed(db, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed done")
}
