package queries

import (
	"context"

	"github.com/google/uuid"
)

// Reference data: customers, distributors and service advisors are small
// admin-curated lists consumed by job forms.

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type CustomerViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	repo CustomerViewRepo
}

func NewCustomerQueries(repo CustomerViewRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.repo.List(ctx)
}

type DistributorQueries interface {
	List(ctx context.Context) ([]*DistributorView, error)
}

type DistributorViewRepo interface {
	List(ctx context.Context) ([]*DistributorView, error)
}

type distributorQueriesImpl struct {
	repo DistributorViewRepo
}

func NewDistributorQueries(repo DistributorViewRepo) DistributorQueries {
	return &distributorQueriesImpl{repo: repo}
}

func (q *distributorQueriesImpl) List(ctx context.Context) ([]*DistributorView, error) {
	return q.repo.List(ctx)
}

type ServiceAdvisorQueries interface {
	List(ctx context.Context) ([]*ServiceAdvisorView, error)
}

type ServiceAdvisorViewRepo interface {
	List(ctx context.Context) ([]*ServiceAdvisorView, error)
}

type serviceAdvisorQueriesImpl struct {
	repo ServiceAdvisorViewRepo
}

func NewServiceAdvisorQueries(repo ServiceAdvisorViewRepo) ServiceAdvisorQueries {
	return &serviceAdvisorQueriesImpl{repo: repo}
}

func (q *serviceAdvisorQueriesImpl) List(ctx context.Context) ([]*ServiceAdvisorView, error) {
	return q.repo.List(ctx)
}
