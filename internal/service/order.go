package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saharshred/renu-biome/internal/document"
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/internal/pricing"
	"github.com/saharshred/renu-biome/pkg/logger"
	"github.com/saharshred/renu-biome/pkg/storage/postgres"
	"github.com/saharshred/renu-biome/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Submit freezes a ready draft into an immutable purchase order: it resolves
// every line against the catalog, prices the order, persists the snapshot in
// one transaction and announces it to the broker. Publishing is best effort;
// a broker outage never rolls back a persisted order.
func (os *OrderService) Submit(
	ctx context.Context,
	draftID uuid.UUID,
) (*entity.PurchaseOrder, error) {
	const op = "service.Submit"
	log := os.logger.Ctx(ctx)

	draft, err := os.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if draft.Submitted {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrDraftSubmitted)
	}
	if !draft.Ready() {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrIncompleteDraft)
	}

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > _slowOperation {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.String("draft_id", draftID.String()),
				logger.String("duration", duration.String()),
			)
		}
	}()

	order, err := os.snapshot(draft)
	if err != nil {
		return nil, fmt.Errorf("%s: snapshot: %w", op, err)
	}

	createdOrder, err := os.persistOrder(ctx, order)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "order persistence failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("order_uid", order.OrderUID.String()),
		)
		return nil, err
	}

	createdOrder.Lines = order.Lines
	createdOrder.Address = order.Address

	if os.publisher != nil {
		if pubErr := os.publisher.PublishSubmitted(ctx, createdOrder); pubErr != nil {
			log.LogAttrs(ctx, logger.WarnLevel, "order submitted but not published",
				logger.String("op", op),
				logger.String("order_uid", createdOrder.OrderUID.String()),
				logger.Any("error", pubErr),
			)
		}
	}

	os.orders.Put(createdOrder.OrderUID, createdOrder, os.orderTTL)

	draft.Submitted = true
	draft.SubmittedAt = createdOrder.SubmittedAt
	os.drafts.Put(draft.DraftID, draft, os.draftTTL)

	log.LogAttrs(ctx, logger.InfoLevel, "order submitted",
		logger.String("op", op),
		logger.String("order_uid", createdOrder.OrderUID.String()),
		logger.String("po_number", createdOrder.PONumber),
		logger.Int("lines", len(createdOrder.Lines)),
		logger.String("total", createdOrder.Total.StringFixed(2)),
	)

	return createdOrder, nil
}

func (os *OrderService) snapshot(draft *entity.OrderDraft) (*entity.PurchaseOrder, error) {
	option, err := os.catalog.FindDeliveryOption(draft.DeliveryID)
	if err != nil {
		return nil, err
	}

	lines := make([]*entity.PurchaseOrderLine, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		item, itemErr := os.catalog.FindItem(line.ItemID)
		if itemErr != nil {
			return nil, itemErr
		}
		lines = append(lines, &entity.PurchaseOrderLine{
			ItemID:    line.ItemID,
			Name:      item.Name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: pricing.LineTotal(item, line),
		})
	}

	totals, err := pricing.Compute(os.catalog, draft.Lines, option)
	if err != nil {
		return nil, err
	}

	address := draft.Address

	return &entity.PurchaseOrder{
		OrderUID:    uuid.New(),
		PONumber:    draft.PONumber,
		SiteNumber:  draft.SiteNumber,
		Address:     &address,
		Lines:       lines,
		Delivery:    option,
		Notes:       draft.Notes,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.Total,
		SubmittedAt: time.Now().UTC(),
	}, nil
}

func (os *OrderService) persistOrder(
	ctx context.Context,
	order *entity.PurchaseOrder,
) (*entity.PurchaseOrder, error) {
	var createdOrder *entity.PurchaseOrder

	err := os.txManager.ExecuteInTransaction(
		ctx,
		"SubmitOrder",
		func(tx postgres.QueryExecuter) error {
			var err error
			createdOrder, err = os.orderRepo.Create(ctx, tx, order)
			if err != nil {
				return transaction.HandleError("SubmitOrder", "create order", err)
			}

			if err = os.lineRepo.Create(ctx, tx, createdOrder.OrderUID, order.Lines); err != nil {
				return transaction.HandleError("SubmitOrder", "create lines", err)
			}

			if _, err = os.addressRepo.Create(ctx, tx, createdOrder.OrderUID, order.Address); err != nil {
				return transaction.HandleError("SubmitOrder", "create address", err)
			}

			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return createdOrder, nil
}

func (os *OrderService) GetOrder(
	ctx context.Context,
	orderUID uuid.UUID,
) (*entity.PurchaseOrder, error) {
	const op = "service.GetOrder"
	log := os.logger.Ctx(ctx)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > _slowOperation {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.String("order_uid", orderUID.String()),
				logger.String("duration", duration.String()),
			)
		}
	}()

	if cached, found := os.orders.Get(orderUID); found {
		log.LogAttrs(ctx, logger.DebugLevel, "order served from cache",
			logger.String("op", op),
			logger.String("order_uid", orderUID.String()),
		)
		return cached, nil
	}

	order, err := os.fetchOrderFromDB(ctx, orderUID)
	if err != nil {
		if !errors.Is(err, entity.ErrDataNotFound) {
			log.LogAttrs(ctx, logger.ErrorLevel, "failed to get order from database",
				logger.String("op", op),
				logger.Any("error", err),
				logger.String("order_uid", orderUID.String()),
			)
		}
		return nil, err
	}

	os.orders.Put(orderUID, order, os.orderTTL)

	log.LogAttrs(ctx, logger.InfoLevel, "order served from database",
		logger.String("op", op),
		logger.String("order_uid", orderUID.String()),
		logger.Int("lines", len(order.Lines)),
	)

	return order, nil
}

// Document renders the purchase order PDF and returns it with its download
// filename.
func (os *OrderService) Document(
	ctx context.Context,
	orderUID uuid.UUID,
) ([]byte, string, error) {
	const op = "service.Document"

	order, err := os.GetOrder(ctx, orderUID)
	if err != nil {
		return nil, "", err
	}

	data, err := os.assembler.Assemble(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return data, document.Filename(order.PONumber), nil
}

func (os *OrderService) fetchOrderFromDB(
	ctx context.Context,
	orderUID uuid.UUID,
) (*entity.PurchaseOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	order, err := os.orderRepo.GetByOrderUID(ctx, orderUID)
	if err != nil {
		return nil, err
	}

	lines, address, err := os.fetchOrderComponents(ctx, orderUID)
	if err != nil {
		return nil, err
	}

	order.Lines = lines
	order.Address = address

	return order, nil
}

func (os *OrderService) fetchOrderComponents(
	ctx context.Context,
	orderUID uuid.UUID,
) ([]*entity.PurchaseOrderLine, *entity.Address, error) {
	var lines []*entity.PurchaseOrderLine
	var address *entity.Address
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		lines, err = os.lineRepo.GetListByOrderUID(gCtx, orderUID)
		if err != nil && !errors.Is(err, entity.ErrDataNotFound) {
			return fmt.Errorf("service.fetchOrderComponents: lines: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		address, err = os.addressRepo.GetByOrderUID(gCtx, orderUID)
		if err != nil && !errors.Is(err, entity.ErrDataNotFound) {
			return fmt.Errorf("service.fetchOrderComponents: address: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if len(lines) == 0 || address == nil {
		return nil, nil, entity.ErrDataNotFound
	}

	return lines, address, nil
}
