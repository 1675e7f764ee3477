package service

import (
	"context"
	"fmt"
	"time"

	"github.com/saharshred/renu-biome/internal/catalog"
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/pkg/cache"
	"github.com/saharshred/renu-biome/pkg/logger"
	"github.com/saharshred/renu-biome/pkg/storage/postgres"
	"github.com/saharshred/renu-biome/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
	_slowOperation         = 200 * time.Millisecond
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock_service -typed

type (
	OrderRepository interface {
		Create(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			order *entity.PurchaseOrder,
		) (*entity.PurchaseOrder, error)
		GetByOrderUID(ctx context.Context, orderUID uuid.UUID) (*entity.PurchaseOrder, error)
		GetAllOrderUIDs(ctx context.Context) ([]uuid.UUID, error)
	}

	LineRepository interface {
		Create(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			orderUID uuid.UUID,
			lines []*entity.PurchaseOrderLine,
		) error
		GetListByOrderUID(ctx context.Context, orderUID uuid.UUID) ([]*entity.PurchaseOrderLine, error)
	}

	AddressRepository interface {
		Create(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			orderUID uuid.UUID,
			address *entity.Address,
		) (*entity.Address, error)
		GetByOrderUID(ctx context.Context, orderUID uuid.UUID) (*entity.Address, error)
	}

	Publisher interface {
		PublishSubmitted(ctx context.Context, order *entity.PurchaseOrder) error
	}

	Assembler interface {
		Assemble(ctx context.Context, order *entity.PurchaseOrder) ([]byte, error)
	}

	OrderService struct {
		catalog     *catalog.Catalog
		orderRepo   OrderRepository
		lineRepo    LineRepository
		addressRepo AddressRepository
		txManager   transaction.Manager
		publisher   Publisher
		assembler   Assembler
		logger      logger.Logger
		drafts      cache.Cache[uuid.UUID, *entity.OrderDraft]
		orders      cache.Cache[uuid.UUID, *entity.PurchaseOrder]
		draftTTL    time.Duration
		orderTTL    time.Duration
	}
)

// NewOrderService wires the draft session store and the persistence layer
// together. publisher may be nil, in which case submitted orders are not
// announced to the broker.
func NewOrderService(
	cat *catalog.Catalog,
	orderRepo OrderRepository,
	lineRepo LineRepository,
	addressRepo AddressRepository,
	txManager transaction.Manager,
	publisher Publisher,
	assembler Assembler,
	log logger.Logger,
	drafts cache.Cache[uuid.UUID, *entity.OrderDraft],
	orders cache.Cache[uuid.UUID, *entity.PurchaseOrder],
	draftTTL time.Duration,
	orderTTL time.Duration,
) *OrderService {
	drafts.SetOnEvicted(func(key uuid.UUID, value *entity.OrderDraft) {
		log.Infow("draft session expired",
			"draft_id", key.String(),
			"status", string(value.Status()),
		)
	})
	orders.SetOnEvicted(func(key uuid.UUID, value *entity.PurchaseOrder) {
		log.Infow("cache eviction",
			"key", key.String(),
			"type", fmt.Sprintf("%T", value),
		)
	})

	return &OrderService{
		catalog:     cat,
		orderRepo:   orderRepo,
		lineRepo:    lineRepo,
		addressRepo: addressRepo,
		txManager:   txManager,
		publisher:   publisher,
		assembler:   assembler,
		logger:      log,
		drafts:      drafts,
		orders:      orders,
		draftTTL:    draftTTL,
		orderTTL:    orderTTL,
	}
}

func (os *OrderService) CatalogItems() []*entity.CatalogItem {
	return os.catalog.Items()
}

func (os *OrderService) DeliveryOptions() []*entity.DeliveryOption {
	return os.catalog.DeliveryOptions()
}

func (os *OrderService) RestoreCache(ctx context.Context) error {
	const op = "service.RestoreCache"
	log := os.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "starting cache restoration from database")

	uids, err := os.orderRepo.GetAllOrderUIDs(ctx)
	if err != nil {
		return fmt.Errorf("%s: get all order uids: %w", op, err)
	}

	if len(uids) == 0 {
		log.LogAttrs(ctx, logger.InfoLevel, "no orders in database to restore cache")
		return nil
	}

	var restoredCount int
	for _, uid := range uids {
		order, orderErr := os.fetchOrderFromDB(ctx, uid)
		if orderErr != nil {
			log.LogAttrs(ctx, logger.WarnLevel, "failed to fetch order for cache restoration",
				logger.String("op", op),
				logger.String("order_uid", uid.String()),
				logger.Any("error", orderErr),
			)
			continue
		}
		os.orders.Put(order.OrderUID, order, os.orderTTL)
		restoredCount++
	}

	log.LogAttrs(ctx, logger.InfoLevel, "cache restoration finished",
		logger.Int("total_orders_in_db", len(uids)),
		logger.Int("restored_to_cache", restoredCount),
	)

	return nil
}
