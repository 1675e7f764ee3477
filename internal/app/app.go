package app

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/saharshred/renu-biome/internal/catalog"
	"github.com/saharshred/renu-biome/internal/config"
	"github.com/saharshred/renu-biome/internal/document"
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/internal/repository"
	"github.com/saharshred/renu-biome/internal/service"
	httpt "github.com/saharshred/renu-biome/internal/transport/http"
	kafkat "github.com/saharshred/renu-biome/internal/transport/kafka"
	"github.com/saharshred/renu-biome/pkg/cache"
	"github.com/saharshred/renu-biome/pkg/kafka"
	"github.com/saharshred/renu-biome/pkg/logger"
	"github.com/saharshred/renu-biome/pkg/metric"
	"github.com/saharshred/renu-biome/pkg/storage/postgres"
	"github.com/saharshred/renu-biome/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	db, dbErr := initDatabase(&cfg.Postgres, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeDB(db)

	txManager, txErr := initTransactionManager(db, log, metrics)
	if txErr != nil {
		return txErr
	}

	cat, catErr := catalog.Load(cfg.Catalog.Path)
	if catErr != nil {
		return fmt.Errorf("app.Run: load catalog: %w", catErr)
	}

	draftCache, orderCache, cacheErr := initCaches(cfg, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer stopCaches(draftCache, orderCache)

	publisher, publisherErr := initPublisher(cfg, log, metrics)
	if publisherErr != nil {
		return publisherErr
	}
	defer closePublisher(publisher, log)

	orderService := initOrderService(
		cfg,
		cat,
		db,
		txManager,
		publisher,
		draftCache,
		orderCache,
		log,
		metrics,
	)

	if err := orderService.RestoreCache(ctx); err != nil {
		log.Errorw("failed to restore order cache from database", "error", err)
	}

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, orderService, log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

func initDatabase(cfg *config.Postgres, log logger.Logger) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		cfg,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initTransactionManager(
	db *postgres.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) (transaction.Manager, error) {
	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initTransactionManager: %w", err)
	}
	return txManager, nil
}

func initCaches(
	cfg *config.Config,
	log logger.Logger,
	metrics metric.Factory,
) (
	cache.Cache[uuid.UUID, *entity.OrderDraft],
	cache.Cache[uuid.UUID, *entity.PurchaseOrder],
	error,
) {
	draftCache, err := cache.NewLRUCache[uuid.UUID, *entity.OrderDraft](
		"draft",
		cfg.Drafts.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("app.initCaches: draft cache: %w", err)
	}
	draftCache.StartCleanup(cfg.Drafts.CleanupInterval)

	orderCache, err := cache.NewLRUCache[uuid.UUID, *entity.PurchaseOrder](
		"order",
		cfg.Cache.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		draftCache.StopCleanup()
		return nil, nil, fmt.Errorf("app.initCaches: order cache: %w", err)
	}
	orderCache.StartCleanup(cfg.Cache.CleanupInterval)

	return draftCache, orderCache, nil
}

func stopCaches(
	draftCache cache.Cache[uuid.UUID, *entity.OrderDraft],
	orderCache cache.Cache[uuid.UUID, *entity.PurchaseOrder],
) {
	if draftCache != nil {
		draftCache.StopCleanup()
	}
	if orderCache != nil {
		orderCache.StopCleanup()
	}
}

func initPublisher(
	cfg *config.Config,
	log logger.Logger,
	metrics metric.Factory,
) (*kafkat.OrderPublisher, error) {
	if !cfg.Kafka.Enabled {
		log.Infow("kafka publishing disabled, submitted orders will not be published")
		return nil, nil
	}

	writer, err := kafka.NewKafkaWriter(cfg.Kafka, log.With("component", "kafka writer"))
	if err != nil {
		return nil, fmt.Errorf("app.initPublisher: %w", err)
	}

	return kafkat.NewOrderPublisher(writer, metrics.Publisher(), log.With("component", "order publisher")), nil
}

func closePublisher(publisher *kafkat.OrderPublisher, log logger.Logger) {
	if publisher == nil {
		return
	}
	if err := publisher.Close(); err != nil {
		log.Errorw("failed to close order publisher", "error", err)
	}
}

func initOrderService(
	cfg *config.Config,
	cat *catalog.Catalog,
	db *postgres.Postgres,
	txManager transaction.Manager,
	publisher *kafkat.OrderPublisher,
	draftCache cache.Cache[uuid.UUID, *entity.OrderDraft],
	orderCache cache.Cache[uuid.UUID, *entity.PurchaseOrder],
	log logger.Logger,
	metrics metric.Factory,
) *service.OrderService {
	orderRepo := repository.NewPurchaseOrderRepository(db)
	lineRepo := repository.NewOrderLineRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	assembler := document.NewAssembler(
		log.With("component", "document assembler"),
		metrics.Document(),
		document.WithLogo(cfg.Document.LogoRef),
		document.WithLogoFetchTimeout(cfg.Document.LogoFetchTimeout),
	)

	// A nil *OrderPublisher must stay a nil interface inside the service.
	var svcPublisher service.Publisher
	if publisher != nil {
		svcPublisher = publisher
	}

	return service.NewOrderService(
		cat,
		orderRepo,
		lineRepo,
		addressRepo,
		txManager,
		svcPublisher,
		assembler,
		log.With("component", "order service"),
		draftCache,
		orderCache,
		cfg.Drafts.SessionTTL,
		cfg.Cache.TTL,
	)
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	orderService *service.OrderService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewOrderHandler(orderService, log, metrics.HTTP()),
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !isShutdownSignal(err) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}

func isShutdownSignal(err error) bool {
	return err != nil && err.Error() == "shutdown signal"
}
