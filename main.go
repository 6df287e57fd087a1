package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"stickynotes/config"
	"stickynotes/handler"
	"stickynotes/repository"
	"stickynotes/services"
	"stickynotes/usecase"
	"stickynotes/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "stickynotes-server:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := utils.InitValidator(); err != nil {
		return err
	}

	ctx := context.Background()

	mongoClient, err := utils.ConnectMongo(ctx, utils.MongoOptions{
		URI:             cfg.Database.URI,
		MaxPoolSize:     cfg.Database.MaxPoolSize,
		MinPoolSize:     cfg.Database.MinPoolSize,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		RetryWrites:     cfg.Database.RetryWrites,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()

	db := mongoClient.Database(cfg.Database.DatabaseName)
	if err := repository.SetupIndexes(ctx, db); err != nil {
		return err
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.Database.DatabaseName))

	deps := handler.Dependencies{
		Config: cfg,
		Logger: logger,
		Notes:  usecase.NewNotesService(repository.GetNotesRepo(db)),
		Users:  usecase.NewUserService(repository.GetUserRepo(db)),
		Tokens: services.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessLifetime, cfg.JWT.RefreshLifetime),
		Ping: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
		CPUSampleInterval: 200 * time.Millisecond,
	}

	if cfg.RedisURL != "" {
		blacklist, err := services.NewTokenBlacklist(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer blacklist.Close()
		deps.Blacklist = blacklist
		logger.Info("token blacklist enabled")
	} else {
		logger.Warn("REDIS_URL not set; logout will not revoke tokens")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(srv, cfg.ShutdownTimeout, logger)
}
