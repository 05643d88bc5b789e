package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"support/cmd"
	"support/internal/adapters/out/postgres"
	"support/internal/adapters/out/postgres/orderstore"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const dbWaitTimeout = 30 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	waitCtx, cancelWait := context.WithTimeout(context.Background(), dbWaitTimeout)
	defer cancelWait()
	if err := postgres.WaitForDatabase(waitCtx, configs.DSN()); err != nil {
		log.Fatalf("Database is not reachable: %v", err)
	}

	gormDB, err := postgres.Connect(configs.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = orderstore.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if configs.SeedDemo {
		if err = orderstore.Seed(context.Background(), gormDB); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		logger.Info("demo dataset seeded")
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer root.Close()

	runApp(root, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DBHost:         envOrDefault("DB_HOST", "localhost"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         envOrDefault("DB_USER", "postgres"),
		DBPassword:     envOrDefault("DB_PASSWORD", "postgres"),
		DBName:         envOrDefault("DB_NAME", "support"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		SeedDemo:       envOrDefault("SEED_DEMO_DATA", "true") == "true",
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaHost:      os.Getenv("KAFKA_HOST"),
		KafkaTurnTopic: envOrDefault("KAFKA_TURN_TOPIC", "support.turns"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:    os.Getenv("OPENAI_MODEL"),
		VocabularyPath: os.Getenv("VOCABULARY_PATH"),
		SessionMaxIdle: envDuration("SESSION_MAX_IDLE", 30*time.Minute),
		ReplyTimeout:   envDuration("REPLY_TIMEOUT", 10*time.Second),
		OrderCacheTTL:  envDuration("ORDER_CACHE_TTL", 5*time.Minute),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return value
}

func runApp(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	root.CreateHTTPServer().RegisterRoutes(e)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("http server starting", "port", configs.HTTPPort)
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
	logger.Info("server stopped")
}
