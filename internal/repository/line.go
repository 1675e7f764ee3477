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

type OrderLineRepository struct {
	db *postgres.Postgres
}

func NewOrderLineRepository(db *postgres.Postgres) *OrderLineRepository {
	return &OrderLineRepository{db}
}

func (r *OrderLineRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	orderUID uuid.UUID,
	lines []*entity.PurchaseOrderLine,
) error {
	const op = "repository.line.Create"

	if len(lines) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(lines))
	for i, line := range lines {
		rows = append(rows, []interface{}{
			uuid.New(),
			orderUID,
			i,
			line.ItemID,
			line.Name,
			line.Size,
			line.Quantity,
			line.UnitPrice,
			line.LineTotal,
		})
	}

	columnNames := []string{
		"line_uid", "order_uid", "line_no", "item_id", "name",
		"size", "quantity", "unit_price", "line_total",
	}

	_, err := queryExecuter.CopyFrom(
		ctx,
		pgx.Identifier{"order_lines"},
		columnNames,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == _uniqueViolation {
			return entity.ErrConflictingData
		}
		return fmt.Errorf("%s: copy from: %w", op, err)
	}

	return nil
}

func (r *OrderLineRepository) GetListByOrderUID(
	ctx context.Context,
	orderUID uuid.UUID,
) ([]*entity.PurchaseOrderLine, error) {
	const op = "repository.line.GetListByOrderUID"

	query := r.db.Builder.Select("item_id", "name", "size", "quantity", "unit_price", "line_total").
		From("order_lines").
		Where(squirrel.Eq{"order_uid": orderUID}).
		OrderBy("line_no")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.PurchaseOrderLine, 0)
	for rows.Next() {
		line := &entity.PurchaseOrderLine{}
		err = rows.Scan(
			&line.ItemID,
			&line.Name,
			&line.Size,
			&line.Quantity,
			&line.UnitPrice,
			&line.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, err)
		}

		result = append(result, line)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}
