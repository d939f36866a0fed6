package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"jirant/internal/application/common/access"
	relationshipServices "jirant/internal/application/relationship/services"
	relationshipUsecases "jirant/internal/application/relationship/usecases"
	ticketServices "jirant/internal/application/ticket/services"
	ticketUsecases "jirant/internal/application/ticket/usecases"
	templateServices "jirant/internal/application/tickettemplate/services"
	templateUsecases "jirant/internal/application/tickettemplate/usecases"
	"jirant/internal/domain/relationship"
	"jirant/internal/domain/ticket"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/infrastructure/auth"
	"jirant/internal/infrastructure/config"
	"jirant/internal/infrastructure/llm"
	"jirant/internal/infrastructure/metrics"
	"jirant/internal/infrastructure/permission"
	"jirant/internal/infrastructure/ratelimit"
	"jirant/internal/infrastructure/repository"
	"jirant/internal/infrastructure/template"
	healthHandlers "jirant/internal/interfaces/http/handlers/health"
	relationshipHandlers "jirant/internal/interfaces/http/handlers/relationship"
	ticketHandlers "jirant/internal/interfaces/http/handlers/ticket"
	tickettypeHandlers "jirant/internal/interfaces/http/handlers/tickettype"
	"jirant/internal/interfaces/http/middleware"
	sharedDB "jirant/internal/shared/db"
	"jirant/internal/shared/goroutine"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/services/markdown"
)

const poolStatsInterval = 15 * time.Second

// Container holds the infrastructure, use cases and handlers of the API and
// wires them together. Shutdown releases what it started.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	metrics *metrics.Metrics

	// Repositories
	ticketRepo   ticket.TicketRepository
	templateRepo tickettemplate.TicketTemplateRepository
	relRepo      relationship.RelationshipRepository
	txManager    *sharedDB.TransactionManager

	// Shared services
	policy     *access.Policy
	graph      *relationshipServices.GraphService
	guard      *templateServices.UsageGuard
	generator  ticket.TextGenerator
	defaults   *template.DefaultTemplateLoader
	jwtService *auth.JWTService

	// Middlewares
	authMiddleware    *middleware.AuthMiddleware
	generationLimiter *middleware.RateLimitMiddleware

	// Handlers
	ticketTypeHandler   *tickettypeHandlers.Handler
	ticketHandler       *ticketHandlers.Handler
	relationshipHandler *relationshipHandlers.Handler
	healthHandler       *healthHandlers.Handler

	statsDone    chan struct{}
	shutdownOnce sync.Once
}

// NewContainer wires every component on top of an open database.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:    gin.New(),
		db:        db,
		cfg:       cfg,
		log:       log,
		statsDone: make(chan struct{}),
	}

	// Section 1: Infrastructure - Redis, repositories, permissions, metrics
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Services - graph, usage guard, text generation, defaults
	c.initServices()

	// Section 3: Middlewares
	c.initMiddlewares()

	// Section 4: Use cases and handlers
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if c.cfg.Generation.RateLimit.Enabled {
		c.redis = initRedis(c.cfg, c.log)
	}

	c.ticketRepo = repository.NewTicketRepository(c.db, c.log)
	c.templateRepo = repository.NewTicketTemplateRepository(c.db, c.log)
	c.relRepo = repository.NewRelationshipRepository(c.db, c.log)
	c.txManager = sharedDB.NewTransactionManager(c.db)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitDefaultPermissions(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to initialize default permissions: %w", err)
	}
	c.policy = access.NewPolicy(enforcer, c.log)

	if c.cfg.Metrics.Enabled {
		c.metrics = metrics.New()
		goroutine.SafeGo(c.log, "db-pool-stats", c.reportPoolStats)
	}

	return nil
}

// initRedis connects lazily: an unreachable Redis only disables throttling,
// since the limiter lets requests through when it cannot count them.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis is unreachable, generation rate limiting will fail open", "error", err, "addr", cfg.Redis.GetAddr())
	} else {
		log.Infow("Redis connection established successfully")
	}

	return redisClient
}

func (c *Container) initServices() {
	c.graph = relationshipServices.NewGraphService(c.relRepo, c.ticketRepo, logger.NewComponentLogger("graph"))
	c.guard = templateServices.NewUsageGuard(c.ticketRepo, c.log)
	c.defaults = template.NewDefaultTemplateLoader(c.cfg.Templates.DefaultsPath, c.log)
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	chatModel, err := llm.NewOpenAIChatModel(context.Background(), &c.cfg.LLM)
	if err != nil {
		c.log.Warnw("text generation disabled", "error", err)
		c.generator = llm.Unconfigured{}
		return
	}
	c.generator = llm.NewGenerator(chatModel, logger.NewComponentLogger("llm"))
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log)

	if c.redis != nil {
		rl := c.cfg.Generation.RateLimit
		limiter := ratelimit.NewRedisRateLimiter(c.redis, "generate", rl.Limit, rl.Window())
		c.generationLimiter = middleware.NewRateLimitMiddleware(limiter, c.log)
	}
}

func (c *Container) initHandlers() {
	md := markdown.NewMarkdownService()

	var recorder ticketUsecases.GenerationRecorder
	if c.metrics != nil {
		recorder = c.metrics
	}

	c.ticketTypeHandler = tickettypeHandlers.NewHandler(
		templateUsecases.NewCreateTicketTypeUseCase(c.templateRepo, c.policy, c.log),
		templateUsecases.NewUpdateTicketTypeUseCase(c.templateRepo, c.txManager, c.guard, c.policy, c.log),
		templateUsecases.NewDeleteTicketTypeUseCase(c.templateRepo, c.txManager, c.guard, c.policy, c.log),
		templateUsecases.NewCheckTicketTypeUsageUseCase(c.templateRepo, c.guard, c.policy, c.log),
		templateUsecases.NewRestoreTicketTypeUseCase(c.templateRepo, c.policy, c.log),
		templateUsecases.NewGetTicketTypeUseCase(c.templateRepo, c.policy, c.log),
		templateUsecases.NewListTicketTypesUseCase(c.templateRepo, c.log),
		templateUsecases.NewSeedDefaultTicketTypesUseCase(c.templateRepo, c.defaults, c.log),
		c.log,
	)

	resolver := ticketServices.NewContextResolver(c.graph, c.ticketRepo, c.log)
	c.ticketHandler = ticketHandlers.NewHandler(
		ticketUsecases.NewGenerateTicketUseCase(
			c.ticketRepo, c.templateRepo, c.graph, c.generator, c.policy,
			ticketUsecases.SettingsFromConfig(&c.cfg.LLM), recorder, logger.NewComponentLogger("generate"),
		),
		ticketUsecases.NewGetTicketContextUseCase(c.ticketRepo, resolver, c.policy, c.log),
		ticketUsecases.NewSoftDeleteTicketUseCase(c.ticketRepo, c.policy, c.log),
		ticketUsecases.NewRestoreTicketUseCase(c.ticketRepo, c.policy, c.log),
		ticketUsecases.NewGetTicketUseCase(c.ticketRepo, md, c.policy, c.log),
		ticketUsecases.NewListTicketsUseCase(c.ticketRepo, c.policy, c.log),
		c.log,
	)

	c.relationshipHandler = relationshipHandlers.NewHandler(
		relationshipUsecases.NewCreateRelationshipUseCase(c.graph, c.ticketRepo, c.policy, c.log),
		relationshipUsecases.NewDeleteRelationshipUseCase(c.graph, c.ticketRepo, c.policy, c.log),
		relationshipUsecases.NewListRelationshipsUseCase(c.graph, c.ticketRepo, c.policy, c.log),
		c.log,
	)

	checkers := map[string]healthHandlers.Checker{
		"database": healthHandlers.CheckerFunc(c.pingDatabase),
		"redis":    nil,
	}
	if c.redis != nil {
		checkers["redis"] = healthHandlers.CheckerFunc(func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		})
	}
	c.healthHandler = healthHandlers.NewHandler("jirant", checkers, c.log)
}

func (c *Container) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *Container) reportPoolStats() {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()
	for {
		if err := c.metrics.UpdateDatabaseConnections(c.db); err != nil {
			c.log.Debugw("failed to read database pool stats", "error", err)
		}
		select {
		case <-c.statsDone:
			return
		case <-ticker.C:
		}
	}
}

// Shutdown stops background work and closes the Redis client. The database
// is owned by the caller.
func (c *Container) Shutdown() {
	c.shutdownOnce.Do(func() {
		close(c.statsDone)
		if c.redis != nil {
			if err := c.redis.Close(); err != nil {
				c.log.Warnw("failed to close Redis client", "error", err)
			}
		}
	})
}
