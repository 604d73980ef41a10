package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mk-manish1105/TruthMark/internal/analyzer"
	"github.com/mk-manish1105/TruthMark/internal/classifier"
)

// @title          TruthMark Analyzer API
// @version        1.0
// @description    Scores text passages for likelihood of AI authorship

// @license.name MIT
// @license.url  https://opensource.org/licenses/MIT

// @host     localhost:8090
// @BasePath /

func main() {
	cfg := LoadConfig()

	// Set Gin mode based on configuration
	gin.SetMode(cfg.GinMode)

	// The classifier handle is created once and shared across requests
	cls := classifier.NewRemote(cfg.ClassifierURL, cfg.ClassifierTimeout())
	router := newRouter(analyzer.New(cls))

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting Analyzer API server on %s", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down Analyzer API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Analyzer API server exited")
}
