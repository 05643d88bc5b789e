package cmd

import (
	"io"
	"log/slog"

	httpadapter "support/internal/adapters/in/http"
	"support/internal/adapters/out/kafka/turnlog"
	"support/internal/adapters/out/openai"
	"support/internal/adapters/out/postgres/orderstore"
	"support/internal/adapters/out/redis/ordercache"
	"support/internal/core/application/usecases/commands"
	"support/internal/core/application/usecases/queries"
	"support/internal/core/domain/model/conversation"
	"support/internal/core/domain/services"
	"support/internal/core/ports"
	"support/internal/jobs"
	"support/internal/pkg/metrics"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. The Redis cache, the Kafka
// turn log, and the generative responder are optional: each is wired only
// when its configuration is present, and the pipeline degrades to static
// fallbacks without them.
type CompositionRoot struct {
	config   Config
	gormDB   *gorm.DB
	logger   *slog.Logger
	metrics  *metrics.Metrics
	sessions *conversation.Registry

	matcher    services.ProductMatcher
	classifier services.IntentClassifier

	orderStore ports.OrderStore
	responder  ports.GenerativeResponder
	publisher  ports.TurnEventPublisher

	closers []io.Closer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:   config,
		gormDB:   gormDB,
		logger:   logger,
		metrics:  metrics.New(),
		sessions: conversation.NewRegistry(),
	}

	vocabulary := services.DefaultVocabulary()
	if config.VocabularyPath != "" {
		loaded, err := services.LoadVocabulary(config.VocabularyPath)
		if err != nil {
			return nil, err
		}
		vocabulary = loaded
	}
	root.matcher = services.NewProductMatcher(vocabulary)
	root.classifier = services.NewIntentClassifier(root.matcher)

	root.orderStore = orderstore.NewGormOrderStore(gormDB)
	if config.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})
		root.orderStore = ordercache.NewCachingOrderStore(
			root.orderStore, client, config.OrderCacheTTL, root.metrics, logger,
		)
		root.closers = append(root.closers, client)
		logger.Info("order cache enabled", "addr", config.RedisAddr)
	}

	if config.OpenAIAPIKey != "" {
		opts := make([]openai.Option, 0, 2)
		if config.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(config.OpenAIBaseURL))
		}
		if config.OpenAIModel != "" {
			opts = append(opts, openai.WithModel(config.OpenAIModel))
		}
		responder, err := openai.NewClient(config.OpenAIAPIKey, opts...)
		if err != nil {
			return nil, err
		}
		root.responder = responder
	} else {
		logger.Warn("generative responder disabled, general queries get the static fallback")
	}

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		publisher := turnlog.NewPublisher(brokers, config.KafkaTurnTopic, logger)
		root.publisher = publisher
		root.closers = append(root.closers, publisher)
		logger.Info("turn event log enabled", "topic", config.KafkaTurnTopic)
	}

	return root, nil
}

func (c *CompositionRoot) CreateResolveLogisticsQueryHandler() queries.ResolveLogisticsQueryHandler {
	return queries.NewResolveLogisticsQueryHandler(c.orderStore, c.matcher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateHandleTurnCommandHandler() commands.HandleTurnCommandHandler {
	resolver := c.CreateResolveLogisticsQueryHandler()
	return commands.NewHandleTurnCommandHandler(
		c.sessions,
		c.classifier,
		resolver,
		c.responder,
		c.publisher,
		c.metrics,
		c.logger,
		c.config.ReplyTimeout,
	)
}

func (c *CompositionRoot) CreateClearHistoryCommandHandler() commands.ClearHistoryCommandHandler {
	return commands.NewClearHistoryCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetHistoryQueryHandler() queries.GetHistoryQueryHandler {
	return queries.NewGetHistoryQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateHandleTurnCommandHandler(),
		c.CreateClearHistoryCommandHandler(),
		c.CreateGetHistoryQueryHandler(),
		c.metrics,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.config.SessionMaxIdle, c.metrics, c.logger)
}

// Close releases the optional adapters' connections.
func (c *CompositionRoot) Close() {
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			c.logger.Warn("closing adapter failed", "error", err)
		}
	}
}
