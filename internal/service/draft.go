package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/saharshred/renu-biome/internal/cart"
	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/internal/pricing"
	"github.com/saharshred/renu-biome/pkg/logger"

	"github.com/google/uuid"
)

// CreateDraft opens a new draft session seeded with the cheapest delivery
// option, mirroring what a fresh order form preselects.
func (os *OrderService) CreateDraft(ctx context.Context) (*entity.OrderDraft, error) {
	const op = "service.CreateDraft"
	log := os.logger.Ctx(ctx)

	draft := &entity.OrderDraft{
		DraftID:    uuid.New(),
		DeliveryID: os.catalog.DefaultDeliveryOption().ID,
		CreatedAt:  time.Now().UTC(),
	}

	os.drafts.Put(draft.DraftID, draft, os.draftTTL)

	log.LogAttrs(ctx, logger.InfoLevel, "draft created",
		logger.String("op", op),
		logger.String("draft_id", draft.DraftID.String()),
	)

	return draft, nil
}

func (os *OrderService) GetDraft(_ context.Context, draftID uuid.UUID) (*entity.OrderDraft, error) {
	const op = "service.GetDraft"

	draft, found := os.drafts.Get(draftID)
	if !found {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrDraftNotFound)
	}

	return draft, nil
}

// AddItem puts quantity units of an item into the draft's cart. Quantities
// below the item's minimum are rejected outright; re-adding an item merges
// into its existing line.
func (os *OrderService) AddItem(
	ctx context.Context,
	draftID uuid.UUID,
	itemID int,
	quantity int,
) (*entity.OrderDraft, error) {
	const op = "service.AddItem"

	return os.mutateDraft(ctx, op, draftID, func(draft *entity.OrderDraft) error {
		c := cart.New(os.catalog, draft.Lines)
		if err := c.AddItem(itemID, quantity); err != nil {
			return err
		}
		draft.Lines = c.Lines()
		return nil
	})
}

func (os *OrderService) RemoveItem(
	ctx context.Context,
	draftID uuid.UUID,
	itemID int,
) (*entity.OrderDraft, error) {
	const op = "service.RemoveItem"

	return os.mutateDraft(ctx, op, draftID, func(draft *entity.OrderDraft) error {
		c := cart.New(os.catalog, draft.Lines)
		c.RemoveItem(itemID)
		draft.Lines = c.Lines()
		return nil
	})
}

// SetQuantity overwrites a line's quantity. Values below the item's minimum are
// clamped up to it rather than rejected.
func (os *OrderService) SetQuantity(
	ctx context.Context,
	draftID uuid.UUID,
	itemID int,
	quantity int,
) (*entity.OrderDraft, error) {
	const op = "service.SetQuantity"

	return os.mutateDraft(ctx, op, draftID, func(draft *entity.OrderDraft) error {
		c := cart.New(os.catalog, draft.Lines)
		if err := c.SetQuantity(itemID, quantity); err != nil {
			return err
		}
		draft.Lines = c.Lines()
		return nil
	})
}

func (os *OrderService) SetContainerSize(
	ctx context.Context,
	draftID uuid.UUID,
	itemID int,
	size string,
) (*entity.OrderDraft, error) {
	const op = "service.SetContainerSize"

	return os.mutateDraft(ctx, op, draftID, func(draft *entity.OrderDraft) error {
		c := cart.New(os.catalog, draft.Lines)
		if err := c.SetContainerSize(itemID, size); err != nil {
			return err
		}
		draft.Lines = c.Lines()
		return nil
	})
}

func (os *OrderService) SetDelivery(
	ctx context.Context,
	draftID uuid.UUID,
	deliveryID string,
) (*entity.OrderDraft, error) {
	const op = "service.SetDelivery"

	return os.mutateDraft(ctx, op, draftID, func(draft *entity.OrderDraft) error {
		if _, err := os.catalog.FindDeliveryOption(deliveryID); err != nil {
			return err
		}
		draft.DeliveryID = deliveryID
		return nil
	})
}

func (os *OrderService) SetAddress(
	ctx context.Context,
	draftID uuid.UUID,
	address entity.Address,
) (*entity.OrderDraft, error) {
	const op = "service.SetAddress"

	return os.mutateDraft(ctx, op, draftID, func(draft *entity.OrderDraft) error {
		draft.Address = address
		return nil
	})
}

// SetDetails updates the order header fields. An empty PO number asks the
// service to generate one.
func (os *OrderService) SetDetails(
	ctx context.Context,
	draftID uuid.UUID,
	poNumber, siteNumber, notes string,
) (*entity.OrderDraft, error) {
	const op = "service.SetDetails"

	return os.mutateDraft(ctx, op, draftID, func(draft *entity.OrderDraft) error {
		if poNumber == "" {
			poNumber = GeneratePONumber()
		}
		draft.PONumber = poNumber
		draft.SiteNumber = siteNumber
		draft.Notes = notes
		return nil
	})
}

// GeneratePONumber produces a human-readable order reference: the last six
// digits of the current unix-millisecond clock plus three random digits.
func GeneratePONumber() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("PO-%s-%d", millis, rand.IntN(900)+100)
}

// DraftTotals prices the draft's cart against the catalog and its selected
// delivery option.
func (os *OrderService) DraftTotals(
	ctx context.Context,
	draftID uuid.UUID,
) (pricing.Totals, error) {
	const op = "service.DraftTotals"

	draft, err := os.GetDraft(ctx, draftID)
	if err != nil {
		return pricing.Totals{}, err
	}

	option, err := os.catalog.FindDeliveryOption(draft.DeliveryID)
	if err != nil {
		return pricing.Totals{}, fmt.Errorf("%s: %w", op, err)
	}

	totals, err := pricing.Compute(os.catalog, draft.Lines, option)
	if err != nil {
		return pricing.Totals{}, fmt.Errorf("%s: %w", op, err)
	}

	return totals, nil
}

func (os *OrderService) mutateDraft(
	ctx context.Context,
	op string,
	draftID uuid.UUID,
	mutate func(draft *entity.OrderDraft) error,
) (*entity.OrderDraft, error) {
	log := os.logger.Ctx(ctx)

	draft, err := os.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if draft.Submitted {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrDraftSubmitted)
	}

	if err = mutate(draft); err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "draft mutation rejected",
			logger.String("op", op),
			logger.String("draft_id", draftID.String()),
			logger.Any("error", err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	os.drafts.Put(draft.DraftID, draft, os.draftTTL)

	return draft, nil
}
