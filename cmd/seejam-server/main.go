package main

import (
	"os"
	"time"

	"github.com/fizennn/Seejam-Server/internal/api"
	"github.com/fizennn/Seejam-Server/internal/catalog"
	"github.com/fizennn/Seejam-Server/internal/config"
	"github.com/fizennn/Seejam-Server/internal/constants"
	"github.com/fizennn/Seejam-Server/internal/logging"
	"github.com/fizennn/Seejam-Server/internal/service"
	"github.com/fizennn/Seejam-Server/internal/storage"
	"github.com/fizennn/Seejam-Server/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; explicit environment wins over file values.
	_ = godotenv.Load()

	// Catalog configuration file (required). Path may be provided via
	// SEEJAM_CONFIG or defaults to ./seejam_config.json in the current
	// working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./seejam_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid seejam configuration", err, logging.Fields{"config_path": configPath, "hint": "create a seejam_config.json with 'card_list', 'equipment_list' and 'npc_list' arrays and an optional server.address"})
	}

	// Allow the DB path to be configured via SEEJAM_DB. Default to a
	// data/ directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/seejam.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	if err := repo.SeedCatalog(cfg.Cards, cfg.Equipment, cfg.Npcs); err != nil {
		logging.Fatal("Failed to seed catalog", err, nil)
	}

	cards := catalog.NewCards(repo)
	shuffler := service.NewShuffler(time.Now().UnixNano())
	handler := api.NewHandler(repo, cards, shuffler)

	router := gin.Default()
	api.RegisterRoutes(router, handler)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, "version": version.Version})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
