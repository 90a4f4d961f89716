package cmd

import (
	"context"
	"errors"

	httpin "kitchenpos/internal/adapters/in/http"
	kafkaout "kitchenpos/internal/adapters/out/kafka"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/postgres/outboxrepo"
	"kitchenpos/internal/adapters/out/purgomalum"
	"kitchenpos/internal/adapters/out/qrcode"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	redis      *redis.Client
	kafka      *kafka.Writer
	profanity  ports.ProfanityClient
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	purgomalumClient, err := purgomalum.NewClient(cfg.PurgomalumURL, cfg.PurgomalumTimeout)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	profanity, err := purgomalum.NewCachedClient(purgomalumClient, redisClient, cfg.ProfanityCacheTTL, logger)
	if err != nil {
		_ = redisClient.Close()
		return nil, err
	}

	writer := kafkaout.NewWriter(cfg.KafkaBrokers)
	publisher, err := kafkaout.NewPublisher(writer, kafkaout.Topics{
		Product: cfg.KafkaProductTopic,
		Order:   cfg.KafkaOrderTopic,
	})
	if err != nil {
		_ = redisClient.Close()
		_ = writer.Close()
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		redis:      redisClient,
		kafka:      writer,
		profanity:  profanity,
		publisher:  publisher,
		logger:     logger,
	}, nil
}

// NewRouter wires every use case into the echo router.
func (c *CompositionRoot) NewRouter(ctx context.Context) (*echo.Echo, error) {
	contract, err := httpin.LoadContract(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(
		c.handlers(),
		qrcode.NewGenerator(0),
		c.cfg.PublicBaseURL,
		c.logger.With(zap.String("component", "http")),
	)
	return httpin.NewRouter(server, contract, c.cfg.EchoLogLevel())
}

// NewJobManager wires the scheduled jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	relay := jobs.NewOutboxRelayJob(
		c.CreatePublishOutboxCommandHandler(),
		c.cfg.OutboxRelaySchedule,
		c.cfg.OutboxBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(relay)
}

// Close releases the broker and cache connections.
func (c *CompositionRoot) Close() error {
	return errors.Join(c.kafka.Close(), c.redis.Close())
}

func (c *CompositionRoot) handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		ChangeProductPrice: c.CreateChangeProductPriceCommandHandler(),
		GetProducts:        queries.NewGetProductsQueryHandler(c.gormDB),

		CreateMenuGroup: c.CreateCreateMenuGroupCommandHandler(),
		GetMenuGroups:   queries.NewGetMenuGroupsQueryHandler(c.gormDB),

		CreateMenu:        c.CreateCreateMenuCommandHandler(),
		ChangeMenuPrice:   commands.NewChangeMenuPriceCommandHandler(c.commandUoWFactory()),
		ChangeMenuDisplay: commands.NewChangeMenuDisplayCommandHandler(c.commandUoWFactory()),
		GetMenus:          queries.NewGetMenusQueryHandler(c.gormDB),

		CreateOrderTable: commands.NewCreateOrderTableCommandHandler(c.commandUoWFactory()),
		ChangeOrderTable: commands.NewChangeOrderTableCommandHandler(c.commandUoWFactory()),
		GetOrderTables:   queries.NewGetOrderTablesQueryHandler(c.gormDB),

		CreateEatInOrder:          c.CreateCreateEatInOrderCommandHandler(),
		ChangeEatInOrderStatus:    c.CreateChangeEatInOrderStatusCommandHandler(),
		GetUncompletedEatInOrders: queries.NewGetUncompletedEatInOrdersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.commandUoWFactory(), c.profanity)
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() commands.ChangeProductPriceCommandHandler {
	return commands.NewChangeProductPriceCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	return commands.NewCreateMenuGroupCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.commandUoWFactory(), c.profanity)
}

func (c *CompositionRoot) CreateCreateEatInOrderCommandHandler() commands.CreateEatInOrderCommandHandler {
	return commands.NewCreateEatInOrderCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateChangeEatInOrderStatusCommandHandler() commands.ChangeEatInOrderStatusCommandHandler {
	return commands.NewChangeEatInOrderStatusCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler() commands.PublishOutboxCommandHandler {
	return commands.NewPublishOutboxCommandHandler(outboxrepo.NewGormOutboxRepository(c.gormDB), c.publisher)
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
