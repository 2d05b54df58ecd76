package main

import (
	"log"

	"github.com/stashd/stashd/internal/auth"
	"github.com/stashd/stashd/internal/config"
	"github.com/stashd/stashd/internal/db"
	"github.com/stashd/stashd/internal/filestore/local"
	"github.com/stashd/stashd/internal/logging"
	"github.com/stashd/stashd/internal/service"
	"github.com/stashd/stashd/internal/store"
	"github.com/stashd/stashd/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	workspaces := store.NewWorkspaceStore(database)
	rooms := store.NewRoomStore(database)
	locations := store.NewLocationStore(database)
	items := store.NewItemStore(database)
	search := store.NewSearchStore(database)
	users := store.NewUserStore(database)
	images := store.NewImageStore(database)

	files, err := local.NewLocalFileStore(cfg.UploadPath)
	if err != nil {
		logger.Error("failed to initialize file store", "error", err)
		return
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	inventory := service.NewInventoryService(workspaces, rooms, locations, items, search, logger)
	accounts := service.NewAccountService(users, images, files, tokens, logger)

	server := web.NewServer(inventory, accounts, tokens, files, logger)
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
