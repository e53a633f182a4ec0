package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts the reservation. The reservations table carries an
	// exclusion constraint over (asset_id, tstzrange(starts_at, ends_at))
	// for non-cancelled rows; a constraint rejection is reported as
	// ErrTimeConflict so a lost admission race surfaces as "unavailable",
	// not as a write failure.
	Create(ctx context.Context, res *Reservation) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	Delete(ctx context.Context, id string) error

	// HasOverlap checks whether any non-cancelled reservation for the asset
	// overlaps [start, end) under half-open semantics.
	HasOverlap(ctx context.Context, assetID string, start, end time.Time) (bool, error)

	// UpdateStatus moves the reservation from one status to another with a
	// compare-and-set guard. Returns ErrInvalidTransition when the stored
	// status no longer matches from (the transition lost a race).
	UpdateStatus(ctx context.Context, id string, from, to Status, payment *PaymentStatus) error

	// AttachPaymentProof records uploaded payment evidence and moves the
	// reservation from pending_payment to waiting_verification atomically.
	AttachPaymentProof(ctx context.Context, id, fileID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns(
			"asset_id", "user_id", "starts_at", "ends_at",
			"contact_name", "contact_phone", "price", "status", "payment_status",
		).
		Values(
			res.AssetID, res.UserID, res.StartsAt, res.EndsAt,
			res.ContactName, res.ContactPhone, res.Price, res.Status, res.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ExclusionViolation:
				// The storage-side overlap guard rejected the insert:
				// another reservation won the slot between our check
				// and this commit.
				return ErrTimeConflict
			case pgerrcode.ForeignKeyViolation:
				return ErrAssetNotFound
			}
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}
	return nil
}

const reservationJoin = `
	FROM public.reservations res
	JOIN public.assets a ON res.asset_id = a.id
	JOIN public.users u ON res.user_id = u.id
	JOIN public.organizations o ON a.organization_id = o.id
`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := `
		SELECT res.id, res.asset_id, a.name, res.user_id, coalesce(u.display_name, u.email),
		       o.id, o.name,
		       res.starts_at, res.ends_at, res.contact_name, res.contact_phone,
		       res.price, res.status, res.payment_status, res.payment_proof_id,
		       res.created_at, res.updated_at
	` + reservationJoin + `
		WHERE res.id = $1
	`

	var res Reservation
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.AssetID, &res.AssetName, &res.UserID, &res.UserName,
		&res.OrganizationID, &res.OrganizationName,
		&res.StartsAt, &res.EndsAt, &res.ContactName, &res.ContactPhone,
		&res.Price, &res.Status, &res.PaymentStatus, &res.PaymentProofID,
		&res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"res.id", "res.asset_id", "a.name", "res.user_id", "coalesce(u.display_name, u.email)",
		"o.id", "o.name",
		"res.starts_at", "res.ends_at", "res.contact_name", "res.contact_phone",
		"res.price", "res.status", "res.payment_status", "res.payment_proof_id",
		"res.created_at", "res.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations res").
		Join("public.assets a ON res.asset_id = a.id").
		Join("public.users u ON res.user_id = u.id").
		Join("public.organizations o ON a.organization_id = o.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"res.user_id": filter.UserID})
	}
	if filter.AssetID != "" {
		query = query.Where(squirrel.Eq{"res.asset_id": filter.AssetID})
	}
	if filter.OrganizationID != "" {
		query = query.Where(squirrel.Eq{"o.id": filter.OrganizationID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"res.status": filter.Status})
	}
	// Intersection semantics for the optional time window.
	if filter.StartsAfter != nil {
		query = query.Where(squirrel.GtOrEq{"res.ends_at": filter.StartsAfter})
	}
	if filter.EndsBefore != nil {
		query = query.Where(squirrel.LtOrEq{"res.starts_at": filter.EndsBefore})
	}

	orderBy := "res.starts_at"
	if filter.SortBy != "" {
		orderBy = "res." + filter.SortBy
	}
	orderDir := "ASC"
	if filter.SortDesc {
		orderDir = "DESC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

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
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.AssetID, &res.AssetName, &res.UserID, &res.UserName,
			&res.OrganizationID, &res.OrganizationName,
			&res.StartsAt, &res.EndsAt, &res.ContactName, &res.ContactPhone,
			&res.Price, &res.Status, &res.PaymentStatus, &res.PaymentProofID,
			&res.CreatedAt, &res.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &res)
	}

	return reservations, total, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.reservations WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, assetID string, start, end time.Time) (bool, error) {
	// Overlap under half-open intervals:
	// existing.starts_at < end AND existing.ends_at > start.
	// Strict comparisons make back-to-back reservations legal.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.reservations").
		Where(squirrel.Eq{"asset_id": assetID}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.Lt{"starts_at": end}).
		Where(squirrel.Gt{"ends_at": start})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, from, to Status, payment *PaymentStatus) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	update := psql.Update("public.reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from})

	if payment != nil {
		update = update.Set("payment_status", *payment)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build update status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// The stored status moved away from `from` since the caller read
		// it. The caller verified existence already, so report the stale
		// transition rather than not-found.
		return ErrInvalidTransition
	}
	return nil
}

func (r *pgxRepository) AttachPaymentProof(ctx context.Context, id, fileID string) error {
	const query = `
		UPDATE public.reservations
		SET payment_proof_id = $1,
		    payment_status = $2,
		    status = $3,
		    updated_at = now()
		WHERE id = $4 AND status = $5
	`
	ct, err := r.pool.Exec(
		ctx, query,
		fileID, PaymentSubmitted, StatusWaitingVerification,
		id, StatusPendingPayment,
	)
	if err != nil {
		return fmt.Errorf("attach payment proof failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrInvalidTransition
	}
	return nil
}
