package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/realtyaudit/capital-service/internal/config"
	"github.com/realtyaudit/capital-service/internal/handler"
	"github.com/realtyaudit/capital-service/internal/integrations/cbr"
	"github.com/realtyaudit/capital-service/internal/middleware"
	"github.com/realtyaudit/capital-service/internal/repository"
	"github.com/realtyaudit/capital-service/internal/service"
	"github.com/realtyaudit/capital-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Calculation cache is optional
	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		logger.Infof("Calculation cache enabled at %s", cfg.RedisAddr)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	cbrClient := cbr.NewClient(cfg, logger)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, cache, cbrClient, sender, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Refresh the CBR key rate now and then hourly
	go svc.RefreshKeyRate()
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", svc.RefreshKeyRate); err != nil {
		logger.Fatalf("Failed to schedule key rate refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/calculate", h.Calculate).Methods("POST")
	r.HandleFunc("/leads", h.SubmitLead).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/key-rate", h.KeyRate).Methods("GET")
	r.HandleFunc("/showcase", h.Showcase).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/admin").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/leads", h.ListLeads).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
