package commands

import (
	"context"

	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/errs"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerRepository interface {
	Create(ctx context.Context, name, phone, address string, notes *string) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateCustomerParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerCommands interface {
	Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	customerRepo  CustomerRepository
	customerViews queries.CustomerViewRepo
}

func NewCustomerCommands(customerRepo CustomerRepository, customerViews queries.CustomerViewRepo) CustomerCommands {
	return &customerCommandsImpl{
		customerRepo:  customerRepo,
		customerViews: customerViews,
	}
}

func (c *customerCommandsImpl) Create(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error) {
	id, err := c.customerRepo.Create(ctx, req.Name, req.Phone, req.Address, req.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.customerViews.FindByID(ctx, id)
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest) (*queries.CustomerView, error) {
	params := UpdateCustomerParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}

	if err := c.customerRepo.Update(ctx, id, params); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.customerViews.FindByID(ctx, id)
}

func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.customerRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
