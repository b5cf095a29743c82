package readstore

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, name, picture, role, push_token, is_active, created_at`

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	view, err := scanUserView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	view, err := scanUserView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.AuthorizedUserView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	return collectUserViews(rows)
}

// ListAdmins feeds the notification fan-out recipient set.
func (r *UserReadStore) ListAdmins(ctx context.Context) ([]*queries.AuthorizedUserView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = 'admin' AND is_active`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admins", err)
	}
	defer rows.Close()

	return collectUserViews(rows)
}

func collectUserViews(rows pgx.Rows) ([]*queries.AuthorizedUserView, error) {
	result := []*queries.AuthorizedUserView{}
	for rows.Next() {
		view, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}

func scanUserView(row pgx.Row) (*queries.AuthorizedUserView, error) {
	var (
		view      queries.AuthorizedUserView
		picture   pgtype.Text
		pushToken pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Email, &view.Name, &picture, &view.Role, &pushToken, &view.IsActive, &createdAt)
	if err != nil {
		return nil, err
	}

	view.Picture = pgconv.StringPtrFromPgtype(picture)
	view.PushToken = pgconv.StringPtrFromPgtype(pushToken)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
