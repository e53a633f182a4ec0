package organization

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
	Create(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id string) (*Organization, error)
	List(ctx context.Context, filter Filter) ([]*Organization, int, error)
	Update(ctx context.Context, org *Organization) error
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, orgID, userID, role string) error
	GetMember(ctx context.Context, orgID, userID string) (*Member, error)
	UpdateMemberRole(ctx context.Context, orgID, userID, role string) error
	RemoveMember(ctx context.Context, orgID, userID string) error
	ListMembers(ctx context.Context, orgID string, filter MemberFilter) ([]*Member, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, org *Organization) error {
	const query = `
		INSERT INTO public.organizations (name, contact_email, contact_phone, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, org.Name, org.ContactEmail, org.ContactPhone, org.IsActive).
		Scan(&org.ID, &org.CreatedAt)
	if err != nil {
		return fmt.Errorf("create organization failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Organization, error) {
	const query = `
		SELECT id, name, contact_email, contact_phone, is_active, created_at
		FROM public.organizations
		WHERE id = $1
	`

	var org Organization
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.ContactEmail, &org.ContactPhone, &org.IsActive, &org.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get organization failed: %w", err)
	}
	return &org, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Organization, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "contact_email", "contact_phone", "is_active", "created_at",
		"count(*) OVER() as total_count",
	).From("public.organizations")

	if filter.Name != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}

	query = query.OrderBy("created_at DESC")

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
		return nil, 0, fmt.Errorf("build list organizations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list organizations failed: %w", err)
	}
	defer rows.Close()

	var orgs []*Organization
	var total int

	for rows.Next() {
		var org Organization
		if err := rows.Scan(
			&org.ID, &org.Name, &org.ContactEmail, &org.ContactPhone,
			&org.IsActive, &org.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan organization failed: %w", err)
		}
		orgs = append(orgs, &org)
	}

	return orgs, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, org *Organization) error {
	const query = `
		UPDATE public.organizations
		SET name = $1, contact_email = $2, contact_phone = $3, is_active = $4
		WHERE id = $5
	`
	ct, err := r.pool.Exec(ctx, query, org.Name, org.ContactEmail, org.ContactPhone, org.IsActive, org.ID)
	if err != nil {
		return fmt.Errorf("update organization failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.organizations WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete organization failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AddMember(ctx context.Context, orgID, userID, role string) error {
	const query = `
		INSERT INTO public.organization_members (organization_id, user_id, role)
		VALUES ($1, $2, $3)
	`
	if _, err := r.pool.Exec(ctx, query, orgID, userID, role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == pgerrcode.UniqueViolation {
				return ErrAlreadyMember
			}
			if pgErr.Code == pgerrcode.ForeignKeyViolation {
				return ErrNotFound
			}
		}
		return fmt.Errorf("add member failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetMember(ctx context.Context, orgID, userID string) (*Member, error) {
	const query = `
		SELECT m.user_id, u.email, u.display_name, m.role
		FROM public.organization_members m
		JOIN public.users u ON m.user_id = u.id
		WHERE m.organization_id = $1 AND m.user_id = $2
	`

	var m Member
	err := r.pool.QueryRow(ctx, query, orgID, userID).Scan(&m.UserID, &m.Email, &m.DisplayName, &m.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) UpdateMemberRole(ctx context.Context, orgID, userID, role string) error {
	const query = `
		UPDATE public.organization_members
		SET role = $1
		WHERE organization_id = $2 AND user_id = $3
	`
	ct, err := r.pool.Exec(ctx, query, role, orgID, userID)
	if err != nil {
		return fmt.Errorf("update member role failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *pgxRepository) RemoveMember(ctx context.Context, orgID, userID string) error {
	const query = `
		DELETE FROM public.organization_members
		WHERE organization_id = $1 AND user_id = $2
	`
	ct, err := r.pool.Exec(ctx, query, orgID, userID)
	if err != nil {
		return fmt.Errorf("remove member failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *pgxRepository) ListMembers(ctx context.Context, orgID string, filter MemberFilter) ([]*Member, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"m.user_id", "u.email", "u.display_name", "m.role",
		"count(*) OVER() as total_count",
	).
		From("public.organization_members m").
		Join("public.users u ON m.user_id = u.id").
		Where(squirrel.Eq{"m.organization_id": orgID}).
		OrderBy("m.role ASC", "u.email ASC")

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
		return nil, 0, fmt.Errorf("build list members query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list members failed: %w", err)
	}
	defer rows.Close()

	var members []*Member
	var total int

	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.Email, &m.DisplayName, &m.Role, &total); err != nil {
			return nil, 0, fmt.Errorf("scan member failed: %w", err)
		}
		members = append(members, &m)
	}

	return members, total, nil
}
