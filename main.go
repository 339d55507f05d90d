package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskreminder/config"
	"taskreminder/connection"
	"taskreminder/logger"
	"taskreminder/reminder"
	"taskreminder/scheduler"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Sync()

	ctx := context.Background()
	clients, err := connection.FBConnection(ctx, cfg.CredentialsFile)
	if err != nil {
		log.Fatal("Failed to initialize Firebase clients", zap.Error(err))
	}

	store := reminder.NewFirestoreStore(clients.Firestore, log)
	svc := reminder.NewService(
		store,
		store,
		reminder.NewFCMSender(clients.Messaging),
		log,
		cfg.ScanLocation,
		cfg.SendTimeout,
	)

	lease := scheduler.NewLease(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ScanInterval)
	go scheduler.New(svc, lease, cfg.ScanInterval, log).Start(ctx)

	connection.StartServer(cfg.AppPort, clients, svc, log)
}
