package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-expense-note/internal/facades"
	"github.com/sbilibin2017/gw-expense-note/internal/handlers"
	"github.com/sbilibin2017/gw-expense-note/internal/jwt"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-note/internal/migrations"
	"github.com/sbilibin2017/gw-expense-note/internal/payload"
	"github.com/sbilibin2017/gw-expense-note/internal/reporter"
	"github.com/sbilibin2017/gw-expense-note/internal/repositories"
	"github.com/sbilibin2017/gw-expense-note/internal/services"
	"github.com/sbilibin2017/gw-expense-note/internal/vault"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "gw-expense-note"

// config is everything the service reads from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers       []string
	kafkaErrorTopic    string
	kafkaReceiptTopic  string
	receiptServiceURL  string
	receiptTimeout     time.Duration
	frontendURL        string
	oauthClientID      string
	oauthClientSecret  string
	oauthRefreshToken  string
	emailUser          string
	privateKeyPath     string
	frontendPublicKey  string
	defaultReceiptPath string
	defaultProfilePath string

	jwtSecretKey       string
	jwtExp             time.Duration
	encryptionPassword string

	rateLimitMax    int64
	rateLimitWindow time.Duration
}

// @title gw-expense-note API
// @version 1.0.0
// @description Expense tracking backend: receipt parsing, storage and review
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name jwt
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns the service configuration.
// The signing secret and the API key encryption password have no defaults.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string, dst *int) {
		if err != nil {
			return
		}
		if *dst, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
	}
	getDuration := func(key, defaultValue string, dst *time.Duration) {
		if err != nil {
			return
		}
		if *dst, err = time.ParseDuration(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.frontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	getInt("POSTGRES_PORT", "5432", &cfg.pgPort)
	getInt("POSTGRES_MAX_OPEN_CONNS", "16", &cfg.pgMaxOpenConns)
	getInt("POSTGRES_MAX_IDLE_CONNS", "8", &cfg.pgMaxIdleConns)

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	getInt("REDIS_PORT", "6379", &cfg.redisPort)
	getInt("REDIS_DB", "0", &cfg.redisDB)
	getInt("REDIS_POOL_SIZE", "10", &cfg.redisPoolSize)
	getInt("REDIS_MIN_IDLE_CONNS", "2", &cfg.redisMinIdleConns)

	// Kafka config; no brokers disables publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.kafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.kafkaErrorTopic = getEnv("KAFKA_ERROR_TOPIC", "function-errors")
	cfg.kafkaReceiptTopic = getEnv("KAFKA_RECEIPT_TOPIC", "receipt-events")

	// Receipt OCR and analysis service
	cfg.receiptServiceURL = getEnv("RECEIPT_SERVICE_URL", "http://localhost:5000")
	getDuration("RECEIPT_SERVICE_TIMEOUT", "60s", &cfg.receiptTimeout)

	// Gmail delivery; no client id disables mail
	cfg.oauthClientID = getEnv("OAUTH_CLIENT_ID", "")
	cfg.oauthClientSecret = getEnv("OAUTH_CLIENT_SECRET", "")
	cfg.oauthRefreshToken = getEnv("OAUTH_REFRESH_TOKEN", "")
	cfg.emailUser = getEnv("EMAIL_USER", "")

	// Key material and default images
	cfg.privateKeyPath = getEnv("SERVER_PRIVATE_KEY_PATH", "keys/server_private.pem")
	cfg.frontendPublicKey = getEnv("FRONTEND_PUBLIC_KEY_PATH", "keys/frontend_public.pem")
	cfg.defaultReceiptPath = getEnv("DEFAULT_RECEIPT_IMAGE_PATH", "assets/default_receipt.png")
	cfg.defaultProfilePath = getEnv("DEFAULT_PROFILE_IMAGE_PATH", "assets/default_profile.png")

	// Secrets
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	cfg.encryptionPassword = getEnv("ENCRYPTION_PASSWORD", "")
	getDuration("JWT_EXPIRATION", "1h", &cfg.jwtExp)

	// Rate limiting of public recovery and login routes
	var limit int
	getInt("RATE_LIMIT_MAX", "5", &limit)
	cfg.rateLimitMax = int64(limit)
	getDuration("RATE_LIMIT_WINDOW", "15m", &cfg.rateLimitWindow)

	if err != nil {
		return cfg, err
	}
	if cfg.jwtSecretKey == "" {
		return cfg, errors.New("JWT_SECRET_KEY is required")
	}
	if cfg.encryptionPassword == "" {
		return cfg, errors.New("ENCRYPTION_PASSWORD is required")
	}
	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, collaborators and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writers and the failure reporter
	rep := reporter.Multi{reporter.NewLogReporter()}
	var receiptEvents services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		errorWriter := newKafkaWriter(cfg.kafkaBrokers, cfg.kafkaErrorTopic)
		defer errorWriter.Close()
		rep = append(rep, reporter.NewKafkaReporter(errorWriter))

		receiptWriter := newKafkaWriter(cfg.kafkaBrokers, cfg.kafkaReceiptTopic)
		defer receiptWriter.Close()
		receiptEvents = receiptWriter
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, events are not published")
	}

	// Key material
	apiKeys, err := vault.New(cfg.encryptionPassword)
	if err != nil {
		return err
	}
	cipher, err := payload.Load(cfg.privateKeyPath, cfg.frontendPublicKey)
	if err != nil {
		return err
	}
	tokens, err := jwt.New(jwt.WithSecretKey(cfg.jwtSecretKey), jwt.WithExpiration(cfg.jwtExp))
	if err != nil {
		return err
	}

	defaultReceipt, err := os.ReadFile(cfg.defaultReceiptPath)
	if err != nil {
		return fmt.Errorf("read default receipt image: %w", err)
	}
	defaultProfile, err := os.ReadFile(cfg.defaultProfilePath)
	if err != nil {
		return fmt.Errorf("read default profile image: %w", err)
	}

	// Remote collaborators
	httpClient := &http.Client{Timeout: cfg.receiptTimeout}
	parser, err := facades.NewReceiptParserHTTPFacade(cfg.receiptServiceURL, httpClient)
	if err != nil {
		return err
	}
	reviewer := facades.NewReceiptReviewHTTPFacade(cfg.receiptServiceURL, httpClient)

	var mailer services.Mailer
	if cfg.oauthClientID != "" {
		gmailer, err := facades.NewGmailMailer(ctx, facades.GmailConfig{
			ClientID:     cfg.oauthClientID,
			ClientSecret: cfg.oauthClientSecret,
			RefreshToken: cfg.oauthRefreshToken,
			From:         cfg.emailUser,
		})
		if err != nil {
			return err
		}
		mailer = gmailer
	} else {
		logger.Log.Warn("OAUTH_CLIENT_ID is empty, emails are not sent")
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	receiptReadRepo := repositories.NewReceiptReadRepository(db, middlewares.GetTxFromContext)
	receiptWriteRepo := repositories.NewReceiptWriteRepository(db, middlewares.GetTxFromContext)
	attempts := repositories.NewAttemptCacheRepository(rdb, cfg.rateLimitWindow)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, defaultProfile, rep)
	credentialService := services.NewCredentialService(userReadRepo, userWriteRepo, apiKeys, rep)
	recoveryService := services.NewPasswordRecoveryService(userReadRepo, userWriteRepo, mailer, cfg.frontendURL, rep)
	receiptService := services.NewReceiptService(
		userReadRepo, receiptReadRepo, receiptWriteRepo,
		parser, reviewer, apiKeys,
		receiptEvents, defaultReceipt, rep,
	)

	// Middlewares
	auth := middlewares.AuthMiddleware(tokens)
	tx := middlewares.TxMiddleware(db)
	limited := middlewares.RateLimitMiddleware(attempts, cfg.rateLimitMax)
	loginLimited := middlewares.RateLimitMiddleware(attempts, cfg.rateLimitMax, middlewares.WithResetOnSuccess())

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", handlers.NewHealthHandler(db))
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/api/swagger/doc.json")))

		r.Route("/users", func(r chi.Router) {
			// Public routes
			r.With(tx).Post("/register", handlers.NewRegisterHandler(authService, tokens))
			r.With(loginLimited, tx).Post("/login", handlers.NewLoginHandler(authService, tokens))
			r.Post("/logout", handlers.NewLogoutHandler(tokens))
			r.Get("/security-questions", handlers.NewSecurityQuestionsHandler(authService))
			r.With(limited).Get("/get-security-question", handlers.NewGetSecurityQuestionHandler(recoveryService))
			r.With(limited, tx).Post("/request-password-reset", handlers.NewRequestPasswordResetHandler(recoveryService))
			r.With(limited).Post("/verify-security-question", handlers.NewVerifySecurityQuestionHandler(recoveryService))
			r.With(limited, tx).Post("/reset-password", handlers.NewResetPasswordHandler(recoveryService))

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Get("/", handlers.NewGetUserHandler(authService, tokens))
				r.With(tx).Put("/", handlers.NewUpdateUserHandler(authService, tokens))
				r.Get("/api-token", handlers.NewGetAPITokenHandler(credentialService, tokens))
				r.With(tx).Put("/api-token", handlers.NewUpdateAPITokenHandler(credentialService, tokens))

				r.Route("/v2", func(r chi.Router) {
					r.Use(middlewares.EncryptMiddleware(cipher))
					r.Get("/api-token", handlers.NewGetAPITokenHandler(credentialService, tokens))
					r.With(middlewares.DecryptMiddleware(cipher), tx).Put("/api-token", handlers.NewUpdateAPITokenHandler(credentialService, tokens))
				})
			})
		})

		r.Route("/receipts", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", handlers.NewListReceiptsHandler(receiptService, tokens))
			r.Post("/process", handlers.NewProcessReceiptHandler(receiptService, tokens))
			r.Post("/review", handlers.NewReviewReceiptsHandler(receiptService, tokens))
			r.With(tx).Post("/create", handlers.NewCreateReceiptHandler(receiptService, tokens))
			r.With(tx).Put("/{id}", handlers.NewUpdateReceiptHandler(receiptService, tokens))
			r.With(tx).Delete("/{id}", handlers.NewDeleteReceiptHandler(receiptService, tokens))
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter creates a synchronous writer for one topic.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
