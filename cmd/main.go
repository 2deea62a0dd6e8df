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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-webshop-client/docs"
	"github.com/sbilibin2017/gw-webshop-client/internal/facades"
	"github.com/sbilibin2017/gw-webshop-client/internal/handlers"
	"github.com/sbilibin2017/gw-webshop-client/internal/jwt"
	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/metrics"
	"github.com/sbilibin2017/gw-webshop-client/internal/middlewares"
	"github.com/sbilibin2017/gw-webshop-client/internal/registration"
	"github.com/sbilibin2017/gw-webshop-client/internal/repositories"
	"github.com/sbilibin2017/gw-webshop-client/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogEncoding string

	APIBaseURL string
	APITimeout time.Duration

	RedisHost         string // empty keeps tokens in memory and disables the product cache
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisTokenExp     time.Duration
	RedisProductExp   time.Duration

	KafkaBrokers []string // empty disables registration events
	KafkaTopic   string

	JWTSecretKey    string
	JWTExp          time.Duration
	JWTSecureCookie bool

	FormIdleTTL           time.Duration
	FormSweepInterval     time.Duration
	FormRevalidateConfirm bool
}

// @title gw-webshop-client API
// @version 1.0.0
// @description Backend-for-frontend of the webshop: registration form engine, login, profile and product pages
// @host localhost:8080
// @BasePath /
// @schemes http
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, storefront API, Redis, Kafka, JWT and form configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * time.Second, err
	}
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")

	// Storefront API config
	cfg.APIBaseURL = getEnv("API_BASE_URL", "http://localhost:3000")
	if cfg.APITimeout, err = getSeconds("API_TIMEOUT_SECOND", "10"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisTokenExp, err = getSeconds("REDIS_TOKEN_EXP_SECOND", "86400"); err != nil {
		return
	}
	if cfg.RedisProductExp, err = getSeconds("REDIS_PRODUCT_EXP_SECOND", "60"); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "webshop.registrations")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}
	if cfg.JWTSecureCookie, err = getBool("JWT_SECURE_COOKIE", "false"); err != nil {
		return
	}

	// Registration form config
	if cfg.FormIdleTTL, err = getSeconds("FORM_IDLE_TTL_SECOND", "1800"); err != nil {
		return
	}
	if cfg.FormSweepInterval, err = getSeconds("FORM_SWEEP_INTERVAL_SECOND", "60"); err != nil {
		return
	}
	if cfg.FormRevalidateConfirm, err = getBool("FORM_REVALIDATE_CONFIRM", "false"); err != nil {
		return
	}
	if cfg.FormSweepInterval <= 0 {
		err = fmt.Errorf("FORM_SWEEP_INTERVAL_SECOND must be positive")
		return
	}

	return
}

// run initializes the logger, Redis, Kafka, the storefront API client and
// the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Token store and product cache
	var (
		tokenStore   services.TokenStore = repositories.NewTokenMemoryRepository()
		productCache services.ProductCache
	)
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()

		tokenStore = repositories.NewTokenRedisRepository(rdb, cfg.RedisTokenExp)
		productCache = repositories.NewProductCacheRepository(rdb, cfg.RedisProductExp)
		log.Infow("Redis connected", "addr", rdb.Options().Addr)
	} else {
		log.Warn("Redis not configured, keeping access tokens in memory")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Storefront API
	api := facades.NewStorefrontAPIFacade(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout})

	// Initialize JWT service
	tokener := jwt.New(cfg.JWTSecretKey, cfg.JWTExp, cfg.JWTSecureCookie)

	// Initialize services
	sessionService := services.NewSessionService(tokenStore)
	authService := services.NewAuthService(api, sessionService)
	productService := services.NewProductService(api, productCache)
	events := services.NewRegistrationEvents(kafkaWriter)

	unsubscribe := sessionService.Subscribe(func(ev services.SessionEvent) {
		log.Infow("session state changed", "session_id", ev.SessionID, "logged_in", ev.LoggedIn)
	})
	defer unsubscribe()

	// Registration forms
	registry := registration.NewRegistry(func(sessionID string) *registration.Controller {
		return registration.NewController(sessionID, api,
			registration.WithPublisher(events),
			registration.WithRecorder(m),
			registration.WithConfirmRevalidation(cfg.FormRevalidateConfirm),
		)
	}, cfg.FormIdleTTL)

	forms := func(sessionID string) handlers.RegistrationForm { return registry.Get(sessionID) }
	sessions := handlers.SessionGetter(middlewares.SessionIDFromContext)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(m.Middleware)

	r.Handle("/metrics", m.Handler())

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Get("/products/{id}", handlers.NewGetProductHandler(productService))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(tokener))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RedirectIfAuthenticated(authService, "/profile"))

			r.Get("/registration", handlers.NewRegistrationStateHandler(forms, sessions))
			r.Post("/registration/fields", handlers.NewFieldChangeHandler(forms, sessions))
			r.Post("/registration/same-address", handlers.NewSameAddressHandler(forms, sessions))
			r.Post("/registration/submit", handlers.NewRegisterHandler(forms, sessions))
			r.Post("/registration/reset", handlers.NewResetHandler(forms, sessions))
			r.Post("/registration/dismiss", handlers.NewDismissHandler(forms, sessions))
			r.Post("/login", handlers.NewLoginHandler(authService, sessions))
		})

		r.Delete("/registration", handlers.NewCloseFormHandler(registry.Remove, sessions))
		r.Post("/logout", handlers.NewLogoutHandler(authService, sessions))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuthenticated(authService, "/login"))
			r.Get("/profile", handlers.NewProfileHandler(authService, sessions))
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		registry.Run(ctxShutdown, cfg.FormSweepInterval)
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	stop()
	<-sweepDone

	if serveErr != nil {
		return serveErr
	}
	log.Info("HTTP server stopped gracefully")
	return nil
}
