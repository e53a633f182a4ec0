package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, id string) (*Asset, error)
	List(ctx context.Context, filter Filter) ([]*Asset, int, error)
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id string) error

	// HasActiveReservations reports whether any non-cancelled reservation
	// references the asset. Used to refuse deletion of booked assets.
	HasActiveReservations(ctx context.Context, id string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, a *Asset) error {
	const query = `
		INSERT INTO public.assets
			(organization_id, category_id, name, description, address, pricing_unit, rate, is_active, photo_file_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(
		ctx, query,
		a.OrganizationID, a.CategoryID, a.Name, a.Description, a.Address,
		a.Unit, a.Rate, a.IsActive, a.PhotoFileID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			switch pgErr.ConstraintName {
			case "assets_category_id_fkey":
				return ErrInvalidCategory
			default:
				return ErrInvalidOrg
			}
		}
		return fmt.Errorf("create asset failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Asset, error) {
	const query = `
		SELECT a.id, a.organization_id, a.category_id, c.name, a.name, a.description,
		       a.address, a.pricing_unit, a.rate, a.is_active, a.photo_file_id,
		       a.created_at, a.updated_at
		FROM public.assets a
		JOIN public.categories c ON a.category_id = c.id
		WHERE a.id = $1
	`

	var a Asset
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.OrganizationID, &a.CategoryID, &a.CategoryName, &a.Name, &a.Description,
		&a.Address, &a.Unit, &a.Rate, &a.IsActive, &a.PhotoFileID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get asset failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Asset, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"a.id", "a.organization_id", "a.category_id", "c.name", "a.name", "a.description",
		"a.address", "a.pricing_unit", "a.rate", "a.is_active", "a.photo_file_id",
		"a.created_at", "a.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.assets a").
		Join("public.categories c ON a.category_id = c.id")

	if filter.OrganizationID != "" {
		query = query.Where(squirrel.Eq{"a.organization_id": filter.OrganizationID})
	}
	if filter.CategoryID != "" {
		query = query.Where(squirrel.Eq{"a.category_id": filter.CategoryID})
	}
	if filter.Unit != "" {
		query = query.Where(squirrel.Eq{"a.pricing_unit": filter.Unit})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"a.is_active": *filter.IsActive})
	}
	if filter.Keyword != "" {
		query = query.Where(squirrel.ILike{"a.name": "%" + filter.Keyword + "%"})
	}

	query = query.OrderBy("a.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list assets query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assets failed: %w", err)
	}
	defer rows.Close()

	var assets []*Asset
	var total int

	for rows.Next() {
		var a Asset
		if err := rows.Scan(
			&a.ID, &a.OrganizationID, &a.CategoryID, &a.CategoryName, &a.Name, &a.Description,
			&a.Address, &a.Unit, &a.Rate, &a.IsActive, &a.PhotoFileID,
			&a.CreatedAt, &a.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan asset failed: %w", err)
		}
		assets = append(assets, &a)
	}

	return assets, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, a *Asset) error {
	const query = `
		UPDATE public.assets
		SET category_id = $1, name = $2, description = $3, address = $4,
		    pricing_unit = $5, rate = $6, is_active = $7, photo_file_id = $8,
		    updated_at = now()
		WHERE id = $9
	`
	ct, err := r.pool.Exec(
		ctx, query,
		a.CategoryID, a.Name, a.Description, a.Address,
		a.Unit, a.Rate, a.IsActive, a.PhotoFileID, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update asset failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.assets WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete asset failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasActiveReservations(ctx context.Context, id string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM public.reservations
			WHERE asset_id = $1 AND status <> 'cancelled'
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check active reservations failed: %w", err)
	}
	return exists, nil
}
