package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/momotrack/backend/docs"
	"github.com/momotrack/backend/internal/config"
	"github.com/momotrack/backend/internal/database"
	"github.com/momotrack/backend/internal/logger"
	mW "github.com/momotrack/backend/internal/middleware"
	"github.com/momotrack/backend/internal/parser"
	"github.com/momotrack/backend/internal/services"
	"github.com/momotrack/backend/internal/store"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title MoMoTrack API
// @version 1.0
// @description API over parsed mobile-money SMS transactions
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")
	viper.BindEnv("auth.username", "AUTH_USERNAME")
	viper.BindEnv("auth.password", "AUTH_PASSWORD")
	viper.BindEnv("auth.password_hash", "AUTH_PASSWORD_HASH")
	viper.BindEnv("argon2.time", "ARGON2_TIME")
	viper.BindEnv("argon2.memory", "ARGON2_MEMORY")
	viper.BindEnv("argon2.threads", "ARGON2_THREADS")
	viper.BindEnv("argon2.key_length", "ARGON2_KEY_LENGTH")
	viper.BindEnv("argon2.salt_length", "ARGON2_SALT_LENGTH")

	viper.SetDefault("jwt.secret_key", "dev-secret-change-me")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("auth.username", "admin")
	viper.SetDefault("auth.password", "password123")
	viper.SetDefault("argon2.time", 1)
	viper.SetDefault("argon2.memory", 64*1024)
	viper.SetDefault("argon2.threads", 4)
	viper.SetDefault("argon2.key_length", 32)
	viper.SetDefault("argon2.salt_length", 16)

	log := logger.New()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("config file not found, using defaults")
	}

	cfg := config.LoadServerConfig()

	redisClient := database.InitRedis(log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Seed the store from the SMS backup. A missing backup is not fatal:
	// the API starts empty and records can still be created through it.
	recordStore := store.NewMemoryStore()
	ingestor := parser.NewIngestor(log)
	if batch, err := ingestor.IngestFile(cfg.BackupPath); err != nil {
		log.Warn().Err(err).Str("path", cfg.BackupPath).Msg("starting with an empty collection")
	} else {
		recordStore.Seed(batch.Records)
	}

	transactionService := services.NewTransactionService(recordStore, log)
	benchmarkService := services.NewBenchmarkService(recordStore, config.LoadBenchConfig(), log)
	authService := services.NewAuthService(redisClient, log)

	mW.InitAuthMiddleware(redisClient)

	r := chi.NewRouter()

	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:"+cfg.Port+"/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authService.Login)
		r.Post("/auth/logout", authService.Logout)

		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Get("/transactions", transactionService.ListTransactions)
			r.Get("/transactions/stats", transactionService.GetStats)
			r.Get("/transactions/{id}", transactionService.GetTransaction)
			r.Post("/transactions", transactionService.CreateTransaction)
			r.Put("/transactions/{id}", transactionService.UpdateTransaction)
			r.Delete("/transactions/{id}", transactionService.DeleteTransaction)

			r.Post("/benchmarks/run", benchmarkService.RunBenchmark)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
