package main

import (
	"MediClinica/config"
	"MediClinica/database"
	"MediClinica/routes"
	"MediClinica/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"
)

func main() {
	// Load configuration from config package
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Hash the seed admin password before touching the database
	adminHash, err := utils.HashPassword(config.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), config.DBURL, adminHash)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	redisConfig, err := database.LoadRedisConfig(config.RedisAddress)
	if err != nil {
		log.Fatalf("failed to load Redis configuration: %v", err)
	}
	redisClient, err := database.NewRedisClient(redisConfig)
	if err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Pass the config to SetupRoutes
	handler, err := routes.SetupRoutes(config, db, redisClient)
	if err != nil {
		log.Fatalf("failed to set up routes: %v", err)
	}

	// Configure and start the server
	srv := &http.Server{
		Addr:           ":" + config.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on :%s", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	// Get the database URL
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	// Get the Redis URL
	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	// Get the session sealing key, which must be exactly 32 bytes
	symmetricKey := os.Getenv("SYMMETRIC_KEY")
	if len(symmetricKey) != 32 {
		return nil, errors.New("SYMMETRIC_KEY environment variable must be 32 bytes")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	allowedOrigins := []string{"http://localhost:" + port}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	smtpPort := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid SMTP_PORT environment variable")
		}
		smtpPort = parsed
	}

	return &config.AppConfig{
		DBURL:          dbURL,
		RedisAddress:   redisAddress,
		SymmetricKey:   symmetricKey,
		Port:           port,
		AdminPassword:  adminPassword,
		AllowedOrigins: allowedOrigins,
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		NotifyEmail:    os.Getenv("NOTIFY_EMAIL"),
	}, nil
}
