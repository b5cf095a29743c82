package queries

import (
	"context"

	"github.com/google/uuid"
)

type ShopJobQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ShopJobView, error)
	List(ctx context.Context, date *string, status *string) ([]*ShopJobView, error)
}

type ShopJobViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShopJobView, error)
	List(ctx context.Context, date *string, status *string) ([]*ShopJobView, error)
}

type shopJobQueriesImpl struct {
	repo ShopJobViewRepo
}

func NewShopJobQueries(repo ShopJobViewRepo) ShopJobQueries {
	return &shopJobQueriesImpl{repo: repo}
}

func (q *shopJobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ShopJobView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *shopJobQueriesImpl) List(ctx context.Context, date *string, status *string) ([]*ShopJobView, error) {
	return q.repo.List(ctx, date, status)
}
