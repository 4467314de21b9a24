// ABOUTME: Main entry point for the File Preview API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filepreview-app/api"
	"filepreview-app/api/handlers"
	"filepreview-app/api/middleware"
	"filepreview-app/api/web"
	"filepreview-app/core/interfaces"
	"filepreview-app/core/preview"
	"filepreview-app/core/reader"
	"filepreview-app/core/session"
	"filepreview-app/core/ui"
	"filepreview-app/infrastructure/cache/memory"
	"filepreview-app/infrastructure/logger/structured"
	"filepreview-app/pkg/config"
	"filepreview-app/pkg/featureflags"
	"golang.org/x/net/netutil"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	flags := featureflags.NewEnvManager("FEATURE_")

	ctx := context.Background()
	cancelSuperseded := flags.IsEnabled(ctx, featureflags.CancelSupersededReads)

	logger.Info("Starting File Preview API", map[string]interface{}{
		"port":                    cfg.Server.Port,
		"session_ttl":             cfg.Session.TTL.String(),
		"max_upload_bytes":        cfg.Server.MaxUploadBytes,
		"cancel_superseded_reads": cancelSuperseded,
	})

	// Sessions expire after their TTL; eviction closes the controller
	sessionCache := memory.NewMemoryCache(cfg.Session.TTL, cfg.Session.CleanupInterval)
	deps := interfaces.Dependencies{
		Sessions: sessionCache,
		Logger:   logger,
	}

	validator := preview.DefaultValidator()
	fileReader := reader.NewReader(logger, reader.WithMaxBytes(cfg.Server.MaxUploadBytes))
	sessions := session.NewManager(deps, cfg.Session.TTL, func() *ui.Controller {
		return ui.NewController(ui.Config{
			Validator:             validator,
			Reader:                fileReader,
			Extractor:             preview.NewExtractor(),
			Logger:                logger,
			CancelSupersededReads: cancelSuperseded,
		})
	})

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         logger,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     cfg.RateLimit.Window,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Flags:          flags,
		MaxBodyBytes:   cfg.Server.MaxUploadBytes + middleware.MultipartOverhead,
	})

	web.RegisterRoutes(router, preview.AcceptedTypes(), logger)

	previewHandler := handlers.NewPreviewHandler(sessions, logger, cfg.Server.SettleTimeout, cfg.Server.MaxUploadBytes)
	previewHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.SettleTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", srv.Addr, err)
	}
	listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address":         srv.Addr,
			"max_connections": cfg.Server.MaxConnections,
		})
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", map[string]interface{}{
		"open_sessions": sessions.Count(),
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", map[string]interface{}{
		"sessions_closed": sessions.CloseAll(),
	})
}

func init() {
	// Print banner
	fmt.Println(`
    _______ __        ____                  _
   / ____(_) /__     / __ \________ _   __(_)__ _      __
  / /_  / / / _ \   / /_/ / ___/ _ \ | / / / _ \ | /| / /
 / __/ / / /  __/  / ____/ /  /  __/ |/ / /  __/ |/ |/ /
/_/   /_/_/\___/  /_/   /_/   \___/|___/_/\___/|__/|__/
	`)
}
