package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const _uniqueViolation = "23505"

var _orderColumns = []string{
	"order_uid", "po_number", "site_number", "delivery_id", "delivery_name",
	"delivery_fee", "delivery_lead_time", "notes", "subtotal", "total", "submitted_at",
}

type PurchaseOrderRepository struct {
	db *postgres.Postgres
}

func NewPurchaseOrderRepository(db *postgres.Postgres) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db}
}

func (r *PurchaseOrderRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	order *entity.PurchaseOrder,
) (*entity.PurchaseOrder, error) {
	const op = "repository.order.Create"

	query := r.db.Builder.Insert("purchase_orders").
		Columns(_orderColumns...).
		Values(
			order.OrderUID,
			order.PONumber,
			order.SiteNumber,
			order.Delivery.ID,
			order.Delivery.Name,
			order.DeliveryFee,
			order.Delivery.LeadTime,
			order.Notes,
			order.Subtotal,
			order.Total,
			order.SubmittedAt,
		).
		Suffix("RETURNING order_uid, po_number, site_number, delivery_id, delivery_name, delivery_fee, delivery_lead_time, notes, subtotal, total, submitted_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.PurchaseOrder{Delivery: &entity.DeliveryOption{}}
	err = queryExecuter.QueryRow(ctx, sql, args...).Scan(
		&result.OrderUID,
		&result.PONumber,
		&result.SiteNumber,
		&result.Delivery.ID,
		&result.Delivery.Name,
		&result.DeliveryFee,
		&result.Delivery.LeadTime,
		&result.Notes,
		&result.Subtotal,
		&result.Total,
		&result.SubmittedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == _uniqueViolation {
			return nil, entity.ErrConflictingData
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	result.Delivery.Price = result.DeliveryFee

	return result, nil
}

func (r *PurchaseOrderRepository) GetByOrderUID(
	ctx context.Context,
	orderUID uuid.UUID,
) (*entity.PurchaseOrder, error) {
	const op = "repository.order.Get"

	query := r.db.Builder.Select(_orderColumns...).
		From("purchase_orders").
		Where(squirrel.Eq{"order_uid": orderUID}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.PurchaseOrder{Delivery: &entity.DeliveryOption{}}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.OrderUID,
		&result.PONumber,
		&result.SiteNumber,
		&result.Delivery.ID,
		&result.Delivery.Name,
		&result.DeliveryFee,
		&result.Delivery.LeadTime,
		&result.Notes,
		&result.Subtotal,
		&result.Total,
		&result.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	result.Delivery.Price = result.DeliveryFee

	return result, nil
}

func (r *PurchaseOrderRepository) GetAllOrderUIDs(ctx context.Context) ([]uuid.UUID, error) {
	const op = "repository.order.GetAllOrderUIDs"

	query := r.db.Builder.Select("order_uid").From("purchase_orders")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	var uids []uuid.UUID
	for rows.Next() {
		var uid uuid.UUID
		if err = rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		uids = append(uids, uid)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return uids, nil
}
