package bootstrap

import (
	"context"

	"elibrary-be/internal/config"
	"elibrary-be/internal/controller"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/pkg/serverutils"
	"elibrary-be/internal/repository/memory"
	"elibrary-be/internal/repository/rediscache"
	"elibrary-be/internal/repository/unitofwork"
	"elibrary-be/internal/service"
	"elibrary-be/pkg/eventbus"
	"elibrary-be/pkg/events"
	pktNats "elibrary-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	BookController           controller.IController
	AuthorController         controller.IController
	CategoryController       controller.IController
	SystemMessageController  controller.IController
	RolePermissionController controller.IRolePermissionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db, sysLogger)

	// 2. Message catalog: redis when configured, in-process otherwise
	var cache message.Cache = memory.NewMessageCache(cfg.Message.CacheTTL)
	if rdb := connectRedis(cfg.App.RedisURL, sysLogger); rdb != nil {
		cache = rediscache.NewMessageCache(rdb, sysLogger)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}
	messages := message.NewCatalogProvider(uowFactory, cache, cfg.Message.CacheTTL, sysLogger)

	// 3. Event Bus
	bus := eventbus.New()
	c.closers = append(c.closers, func() { _ = bus.Close() })
	targets := []events.Publisher{bus}
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "NATS unavailable, events stay in process", map[string]interface{}{
				"error": err,
			})
		} else {
			targets = append(targets, natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	deps := service.Dependencies{
		UowFactory: uowFactory,
		Messages:   messages,
		Publisher:  eventbus.NewFanout(targets...),
		Logger:     sysLogger,
		Paging: service.PagingOptions{
			DefaultPageSize: cfg.Paging.DefaultPageSize,
			MaxPageSize:     cfg.Paging.MaxPageSize,
		},
	}

	// 4. Services
	authorizationService := service.NewAuthorizationService(uowFactory, messages, sysLogger)
	c.ConsumerService = service.NewConsumerService(bus, cache, sysLogger)

	// 5. Controllers
	guard := controller.NewGuard(serverutils.NewJwtMiddleware(cfg.App.JwtSecret), authorizationService, messages)
	c.BookController = controller.NewBookController(service.NewBookService(deps), guard)
	c.AuthorController = controller.NewAuthorController(service.NewAuthorService(deps), guard)
	c.CategoryController = controller.NewCategoryController(service.NewCategoryService(deps), guard)
	c.SystemMessageController = controller.NewSystemMessageController(service.NewSystemMessageService(deps), guard)
	c.RolePermissionController = controller.NewRolePermissionController(service.NewRolePermissionService(deps), guard)

	return c
}

// Controllers lists every controller to mount under /api.
func (c *Container) Controllers() []controller.IController {
	return []controller.IController{
		c.BookController,
		c.AuthorController,
		c.CategoryController,
		c.SystemMessageController,
		c.RolePermissionController,
	}
}

// Close releases broker and cache connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func connectRedis(url string, log logger.ILogger) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{
			"error": err,
		})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("BOOTSTRAP", "Redis unreachable, using in-process message cache", map[string]interface{}{
			"error": err,
		})
		_ = rdb.Close()
		return nil
	}
	return rdb
}
