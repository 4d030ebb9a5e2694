package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/handlers"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/jwt"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/logger"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/repositories"
	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/services"

	"github.com/pr-poehali-dev/kedoo-music-distribution-2/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title kedoo-music-distribution API
// @version 1.0.0
// @description Backend for music distribution: releases, moderation and support tickets
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp, moderationCacheExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp, moderationCacheExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int, moderationCacheExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	kafkaAddr = getEnv("KAFKA_ADDR", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "release-moderation")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Moderation queue cache config
	if moderationCacheExpSecond, err = strconv.Atoi(getEnv("MODERATION_CACHE_EXP_SECOND", "60")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka producer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int, moderationCacheExpSecond int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka producer for moderation decisions
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaAddr),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	releaseReadRepo := repositories.NewReleaseReadRepository(db)
	releaseWriteRepo := repositories.NewReleaseWriteRepository(db, middlewares.GetTxFromContext)
	trackReadRepo := repositories.NewTrackReadRepository(db)
	trackWriteRepo := repositories.NewTrackWriteRepository(db, middlewares.GetTxFromContext)
	ticketReadRepo := repositories.NewTicketReadRepository(db)
	ticketWriteRepo := repositories.NewTicketWriteRepository(db)
	moderationCacheRepo := repositories.NewModerationCacheRepository(rdb, time.Duration(moderationCacheExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	releaseService := services.NewReleaseService(releaseReadRepo, trackReadRepo, releaseWriteRepo, trackWriteRepo)
	moderationService := services.NewModerationService(releaseReadRepo, trackReadRepo, releaseWriteRepo, moderationCacheRepo, kafkaWriter)
	ticketService := services.NewTicketService(ticketReadRepo, ticketWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	resetPasswordHandler := handlers.NewResetPasswordHandler(authService)
	releaseListHandler := handlers.NewReleaseListHandler(releaseService)
	releaseCreateHandler := handlers.NewReleaseCreateHandler(releaseService)
	releaseUpdateHandler := handlers.NewReleaseUpdateHandler(releaseService)
	releaseDeleteHandler := handlers.NewReleaseDeleteHandler(releaseService)
	releaseRestoreHandler := handlers.NewReleaseRestoreHandler(releaseService)
	moderationListHandler := handlers.NewModerationListHandler(moderationService)
	moderationApproveHandler := handlers.NewModerationApproveHandler(moderationService)
	moderationRejectHandler := handlers.NewModerationRejectHandler(moderationService)
	ticketListHandler := handlers.NewTicketListHandler(ticketService)
	ticketCreateHandler := handlers.NewTicketCreateHandler(ticketService)
	ticketUpdateHandler := handlers.NewTicketUpdateHandler(ticketService)

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	txMiddleware := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middlewares.CORSMiddleware("POST, OPTIONS"))
			r.Post("/register", registerHandler)
			r.Post("/login", loginHandler)
			r.Post("/reset_password", resetPasswordHandler)
		})

		r.Route("/releases", func(r chi.Router) {
			r.Use(middlewares.CORSMiddleware("GET, POST, PUT, DELETE, OPTIONS"))
			r.Use(authMiddleware)
			r.Get("/", releaseListHandler)
			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)
				r.Post("/", releaseCreateHandler)
				r.Put("/{id}", releaseUpdateHandler)
				r.Delete("/{id}", releaseDeleteHandler)
				r.Post("/{id}/restore", releaseRestoreHandler)
			})
		})

		r.Route("/moderation", func(r chi.Router) {
			r.Use(middlewares.CORSMiddleware("GET, POST, OPTIONS"))
			r.Use(authMiddleware)
			r.Use(middlewares.RequireRole("admin"))
			r.Get("/releases", moderationListHandler)
			r.Post("/releases/{id}/approve", moderationApproveHandler)
			r.Post("/releases/{id}/reject", moderationRejectHandler)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Use(middlewares.CORSMiddleware("GET, POST, PUT, OPTIONS"))
			r.Use(authMiddleware)
			r.Get("/", ticketListHandler)
			r.Post("/", ticketCreateHandler)
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireRole("admin"))
				r.Put("/{id}", ticketUpdateHandler)
			})
		})
	})

	// Registered after the route tree so chi propagates it into the
	// mounted subrouters.
	r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
