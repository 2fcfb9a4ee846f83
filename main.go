package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"

	"git.thinkinpower.net/cardsrv/binlist"
	"git.thinkinpower.net/cardsrv/conf"
	"git.thinkinpower.net/cardsrv/middleware"
	"git.thinkinpower.net/cardsrv/route"
)

func setMode(mode string) {
	switch mode {
	case conf.RunModeDev:
		gin.SetMode(gin.DebugMode)
	case conf.RunModeTest:
		gin.SetMode(gin.TestMode)
	case conf.RunModeRelease:
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logger.InfoLevel)

	if err := godotenv.Load(); err == nil {
		logger.Info("loaded environment from .env")
	}

	cfg, err := conf.Load()
	if err != nil {
		logger.Fatalf("invalid configuration: %s", err.Error())
	}

	logger.Info("starting http server...")
	setMode(cfg.Mode)
	r := gin.New()
	r.Use(middleware.Log())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestId())
	r.Use(cors.Default())
	route.Register(r, cfg, binlist.NewHTTPClient(cfg.BinlistURL))

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %s", err.Error())
		}
	}()
	logger.Infof("http server listening on port %d", cfg.Port)

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failure. ", err)
	}
	logger.Info("server exit.")
}
