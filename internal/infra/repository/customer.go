package repository

import (
	"context"
	"fmt"
	"strings"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, name, phone, address string, notes *string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO customers (id, name, phone, address, notes) VALUES ($1, $2, $3, $4, $5)`,
		id, name, phone, address, pgconv.StringPtrToPgtype(notes))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id uuid.UUID, p commands.UpdateCustomerParams) error {
	set := []string{}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.Address != nil {
		add("address", *p.Address)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}

	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = now()")

	query := `UPDATE customers SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
