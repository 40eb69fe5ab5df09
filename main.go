package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "wildventures/internal/config"
	intdb "wildventures/internal/db"
	router "wildventures/internal/http"
	"wildventures/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	utils.SetupLogger(env.LogLevel)
	if err := env.CheckSecrets(); err != nil {
		logrus.WithError(err).Fatal("refusing to start")
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.OpenDB(env)
	if err != nil {
		logrus.WithError(err).Fatal("database unavailable")
	}
	defer db.Close()

	if env.AutoMigrate {
		if err := intdb.Migrate(env.MigrationDSN()); err != nil {
			logrus.WithError(err).Fatal("migration failed")
		}
	}
	if env.SeedAvailability {
		n, err := intdb.Seeder{DB: db}.SeedAvailability(context.Background(), env.SeedDays)
		if err != nil {
			logrus.WithError(err).Error("availability seed failed")
		} else {
			logrus.WithField("rows", n).Info("availability seeded")
		}
	}

	r := router.NewRouter(env, buildHandlers(env, db))

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("server shutdown failed")
	}

	logrus.Info("server stopped")
}
