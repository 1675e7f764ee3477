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

type AddressRepository struct {
	db *postgres.Postgres
}

func NewAddressRepository(db *postgres.Postgres) *AddressRepository {
	return &AddressRepository{db}
}

func (r *AddressRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	orderUID uuid.UUID,
	address *entity.Address,
) (*entity.Address, error) {
	const op = "repository.address.Create"

	query := r.db.Builder.Insert("order_addresses").
		Columns("order_uid", "street", "city", "state", "zip", "phone", "special_instructions").
		Values(
			orderUID,
			address.Street,
			address.City,
			address.State,
			address.Zip,
			address.Phone,
			address.SpecialInstructions,
		).
		Suffix("RETURNING street, city, state, zip, phone, special_instructions")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Address{}
	err = queryExecuter.QueryRow(ctx, sql, args...).Scan(
		&result.Street,
		&result.City,
		&result.State,
		&result.Zip,
		&result.Phone,
		&result.SpecialInstructions,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == _uniqueViolation {
			return nil, entity.ErrConflictingData
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (r *AddressRepository) GetByOrderUID(
	ctx context.Context,
	orderUID uuid.UUID,
) (*entity.Address, error) {
	const op = "repository.address.Get"

	query := r.db.Builder.Select("street", "city", "state", "zip", "phone", "special_instructions").
		From("order_addresses").
		Where(squirrel.Eq{"order_uid": orderUID}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Address{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.Street,
		&result.City,
		&result.State,
		&result.Zip,
		&result.Phone,
		&result.SpecialInstructions,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}
