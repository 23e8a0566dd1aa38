package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Super-Badmen-Viper/NineSongProject/api/route"
	"github.com/Super-Badmen-Viper/NineSongProject/bootstrap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configFile := flag.String("config", ".env", "path to the env config file")
	flag.Parse()

	env, err := bootstrap.NewEnv(*configFile)
	if err != nil {
		bootstrap.NewLogger("error").Fatal("failed to load config", zap.Error(err))
	}
	logger := bootstrap.NewLogger(env.LogLevel)
	defer func() { _ = logger.Sync() }()

	app, err := bootstrap.App(env, logger)
	if err != nil {
		logger.Fatal("failed to start application", zap.Error(err))
	}
	defer app.Close()

	if env.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	timeout := time.Duration(env.ContextTimeout) * time.Second
	engine := gin.New()
	route.Setup(app, timeout, engine)

	srv := &http.Server{
		Addr:    env.ServerAddress,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", env.ServerAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
