package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
	"github.com/jekoram/reelshorter/infrastructure/cache"
	"github.com/jekoram/reelshorter/infrastructure/clients/instagram"
	youtubeclient "github.com/jekoram/reelshorter/infrastructure/clients/youtube"
	"github.com/jekoram/reelshorter/infrastructure/configuration"
	"github.com/jekoram/reelshorter/infrastructure/crypto"
	"github.com/jekoram/reelshorter/infrastructure/logger"
	"github.com/jekoram/reelshorter/infrastructure/persistence"
	httpHandler "github.com/jekoram/reelshorter/interfaces/http"
	"github.com/jekoram/reelshorter/server"
	"github.com/jekoram/reelshorter/usecase"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Env files never override OS env.
	configuration.LoadEnvFromFile("config.env", ".env")

	cfg, err := configuration.Load()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Configuration load failed")
		os.Exit(1)
	}

	psqlDb, err := persistence.NewPostgreSQLDB(cfg.Database.Psql)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Database initialization failed")
		os.Exit(1)
	}
	defer psqlDb.Close()
	if err := persistence.EnsureSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Error("Schema migration failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("Database connected.")

	// Redis is optional; the connection cache degrades to a pass-through.
	redisClient, _ := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		cfg.Redis.Username,
		cfg.Redis.Password,
	)
	if redisClient != nil {
		logger.GetLogger().Info("Redis client initialized successfully.")
	}

	codec, err := crypto.NewCodec(cfg.Security.EncryptionKey)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Credential codec initialization failed")
		os.Exit(1)
	}

	userRepository := persistence.NewUserRepository(psqlDb)
	connectionRepository := persistence.NewConnectionRepository(psqlDb)
	publishLogRepository := persistence.NewPublishLogRepository(psqlDb)
	connectionCache := cache.NewConnectionCache(redisClient)

	oauthConfig := configuration.NewGoogleOAuth(cfg.Google)

	tokenBroker := usecase.NewTokenBroker(connectionRepository, codec, map[model.Platform]repository.ITokenRefresher{
		model.PlatformYouTube: youtubeclient.NewRefresher(oauthConfig),
	})

	uploaders := map[model.Platform]repository.IUploader{
		model.PlatformYouTube:   youtubeclient.NewUploader(tokenBroker),
		model.PlatformInstagram: instagram.NewUploader(),
	}

	userUsecase := usecase.NewUserUsecase(userRepository, cfg.App.SecretKey)
	publishUsecase := usecase.NewPublishUsecase(uploaders, publishLogRepository)
	connectionUsecase := usecase.NewConnectionUsecase(connectionRepository, connectionCache, codec)

	userHandler := httpHandler.NewUserHandler(userUsecase)
	publishHandler := httpHandler.NewPublishHandler(publishUsecase)
	connectionHandler := httpHandler.NewConnectionHandler(connectionUsecase)
	youtubeOAuthHandler := httpHandler.NewYouTubeOAuthHandler(oauthConfig, connectionUsecase, cfg.Frontend.BaseURL)

	router := server.InitiateRouter(
		userHandler,
		publishHandler,
		connectionHandler,
		youtubeOAuthHandler,
		userRepository,
		cfg.App.SecretKey,
		cfg.Frontend.BaseURL,
	)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.GetLogger().WithField("port", cfg.App.Port).Info("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-interrupt:
			logger.GetLogger().WithField("signal", sig.String()).Info("Shutdown signal received")
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server exited with error")
	}
}
