package commands

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/clock"
	"glass-dispatch/internal/pkg/errs"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDistributorNotFound    = errs.New("distributor not found")
	ErrServiceAdvisorNotFound = errs.New("service advisor not found")
	ErrDuplicateName          = errs.New("name already exists")
)

type DistributorRepository interface {
	Create(ctx context.Context, name string) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceAdvisorRepository interface {
	Create(ctx context.Context, name string) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DistributorCommands interface {
	Create(ctx context.Context, name string) (*queries.DistributorView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceAdvisorCommands interface {
	Create(ctx context.Context, name string) (*queries.ServiceAdvisorView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type distributorCommandsImpl struct {
	repo  DistributorRepository
	clock clock.Clock
}

func NewDistributorCommands(repo DistributorRepository, clk clock.Clock) DistributorCommands {
	return &distributorCommandsImpl{repo: repo, clock: clk}
}

func (c *distributorCommandsImpl) Create(ctx context.Context, name string) (*queries.DistributorView, error) {
	id, err := c.repo.Create(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &queries.DistributorView{ID: id, Name: name, CreatedAt: c.clock.Now()}, nil
}

func (c *distributorCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDistributorNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

type serviceAdvisorCommandsImpl struct {
	repo  ServiceAdvisorRepository
	clock clock.Clock
}

func NewServiceAdvisorCommands(repo ServiceAdvisorRepository, clk clock.Clock) ServiceAdvisorCommands {
	return &serviceAdvisorCommandsImpl{repo: repo, clock: clk}
}

func (c *serviceAdvisorCommandsImpl) Create(ctx context.Context, name string) (*queries.ServiceAdvisorView, error) {
	id, err := c.repo.Create(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &queries.ServiceAdvisorView{ID: id, Name: name, CreatedAt: c.clock.Now()}, nil
}

func (c *serviceAdvisorCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrServiceAdvisorNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
