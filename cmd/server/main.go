package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fundbuddy/internal/config"
	apphttp "fundbuddy/internal/http"
	"fundbuddy/internal/repository/kv"
	"fundbuddy/internal/service"
	"fundbuddy/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.OpenSQLite(cfg.Database.Path, cfg.Storage.KeyPrefix)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer store.Close()

	userRepo := kv.NewUserRepository(store)
	sessionRepo := kv.NewSessionRepository(store)
	assetRepo := kv.NewAssetRepository(store)

	authService := service.NewAuthService(userRepo, sessionRepo)
	assetService := service.NewAssetService(assetRepo)
	notificationService := service.NewNotificationService()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		authService,
		assetService,
		notificationService,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
