package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	List(ctx context.Context) ([]*AuthorizedUserView, error)
}

type UserViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, error)
	List(ctx context.Context) ([]*AuthorizedUserView, error)
	ListAdmins(ctx context.Context) ([]*AuthorizedUserView, error)
}

type SessionViewRepo interface {
	FindByToken(ctx context.Context, token string) (*SessionView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*AuthorizedUserView, error) {
	return q.repo.List(ctx)
}
