package repository

import (
	"context"

	"glass-dispatch/internal/domain/katyshop"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShopJobRepository struct {
	pool *pgxpool.Pool
}

func NewShopJobRepository(pool *pgxpool.Pool) *ShopJobRepository {
	return &ShopJobRepository{pool: pool}
}

func (r *ShopJobRepository) Create(ctx context.Context, s *katyshop.ShopJob) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx, `
INSERT INTO katyshop_jobs (
    id, title, customer_name, part_number, scheduled_date, time_slot,
    status, notes, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID(), s.Title(), s.CustomerName(), pgconv.StringPtrToPgtype(s.PartNumber()),
		s.ScheduledDate(), s.TimeSlot(), s.Status().String(),
		pgconv.StringPtrToPgtype(s.Notes()), s.CreatedBy())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create shop job", err, infra.KindFromPgErr(err))
	}
	return s.ID(), nil
}

func (r *ShopJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status katyshop.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE katyshop_jobs SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update shop job status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shop job not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ShopJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM katyshop_jobs WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete shop job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shop job not found", nil, infra.KindNotFound)
	}
	return nil
}
