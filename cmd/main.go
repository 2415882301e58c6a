package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"mandir_server/api"
	"mandir_server/config"
	"mandir_server/internal/assistant"
	"mandir_server/internal/calendar"
	"mandir_server/internal/catalog"
	"mandir_server/internal/chat"
	"mandir_server/internal/slides"
	"mandir_server/internal/store"
)

func main() {
	// Load .env before viper reads the environment. Missing file is the
	// normal case in production.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Cannot load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d festivals, %d services, %d slides",
		len(cat.Festivals), len(cat.Services), len(cat.Slides))

	var rsvps *store.RSVPStore
	if cfg.RSVPDatabasePath != "" {
		rsvps, err = store.Open(cfg.RSVPDatabasePath)
		if err != nil {
			log.Fatalf("Cannot open RSVP database: %v", err)
		}
		defer rsvps.Close()
		log.Printf("RSVP persistence enabled at %s", cfg.RSVPDatabasePath)
	}

	panditProxy := assistant.New(cfg.OpenAIKey, cfg.ChatBaseURL, cfg.ChatModelID)
	chatStore := chat.NewStore(panditProxy, nil)
	calendarStore := calendar.NewSessionStore(cat, nil)

	rotator := slides.NewRotator(len(cat.Slides), time.Duration(cfg.SlideIntervalSeconds)*time.Second)
	if err := rotator.Start(); err != nil {
		log.Fatalf("Cannot start slide rotation: %v", err)
	}
	defer rotator.Stop()

	apiHandler := api.NewAPIHandler(cat, calendarStore, chatStore, rotator, rsvps, nil)

	// --- HTTP Server ---

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	api.RegisterRoutes(router, apiHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: splitOrigins(cfg.AllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: corsHandler,
		// Set timeouts to prevent slow client attacks.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}

func splitOrigins(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
