package main

import (
	"CoPI_Backend/internal/copi-service/api/handler"
	"CoPI_Backend/internal/copi-service/api/middleware"
	"CoPI_Backend/internal/copi-service/api/routes"
	"CoPI_Backend/internal/copi-service/config"
	"CoPI_Backend/internal/copi-service/repository"
	"CoPI_Backend/internal/copi-service/service"
	"CoPI_Backend/internal/copi-service/session"
	"CoPI_Backend/pkg/infra"
	"CoPI_Backend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "copi-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	personRepo := repository.NewPersonRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient)

	sessionResolver := session.NewResolver(appConfig.Session.SecretKey, sessionRepo)

	healthService := service.NewHealthService(personRepo)
	directoryService := service.NewDirectoryService(personRepo)

	m := middleware.NewAuthMiddleware(sessionResolver)

	handlerLogger := handler.NewLogger(zapLogger)
	healthHandler := handler.NewHealthHandler(healthService, handlerLogger)
	institutionHandler := handler.NewInstitutionHandler(directoryService, handlerLogger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.RequestID())

	routes.SetUpHealthRoutes(r, healthHandler)
	routes.SetUpInstitutionRoutes(r, institutionHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
