package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/yukikurage/project-tracker/internal/bootstrap"
	"github.com/yukikurage/project-tracker/internal/config"
	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/seed"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	inj := bootstrap.BuildContainer(nil)

	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := do.MustInvoke[*zap.Logger](inj)
	defer logger.Sync() //nolint:errcheck

	db, err := do.Invoke[*gorm.DB](inj)
	if err != nil {
		logger.Sugar().Fatalw("failed to connect to database", "err", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Sugar().Fatalw("failed to run migrations", "err", err)
	}

	// seed the fixed hierarchy before serving any request
	seeder, err := do.Invoke[*seed.Seeder](inj)
	if err != nil {
		logger.Sugar().Fatalw("failed to load seed catalog", "err", err)
	}
	if err := seeder.Run(context.Background()); err != nil {
		logger.Sugar().Fatalw("failed to seed database", "err", err)
	}

	engine, err := do.Invoke[*gin.Engine](inj)
	if err != nil {
		logger.Sugar().Fatalw("failed to build router", "err", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		logger.Sugar().Infow("starting http server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorw("server shutdown", "err", err)
	}
	logger.Sugar().Info("server exited")
}
