package commands

import (
	"context"

	"glass-dispatch/internal/domain/user"
	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/errs"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errs.New("user not found")
	ErrDuplicateEmail = errs.New("email already registered")
)

type UserCommands interface {
	CreateTechnician(ctx context.Context, req reqdto.CreateTechnicianRequest) (*queries.AuthorizedUserView, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*queries.AuthorizedUserView, error)
	RegisterPushToken(ctx context.Context, userID uuid.UUID, token *string) error
}

type userCommandsImpl struct {
	userRepo  UserRepository
	userViews queries.UserViewRepo
}

func NewUserCommands(userRepo UserRepository, userViews queries.UserViewRepo) UserCommands {
	return &userCommandsImpl{
		userRepo:  userRepo,
		userViews: userViews,
	}
}

// CreateTechnician provisions an account ahead of the user's first sign-in,
// so jobs can be assigned to technicians who have never opened the app.
func (c *userCommandsImpl) CreateTechnician(ctx context.Context, req reqdto.CreateTechnicianRequest) (*queries.AuthorizedUserView, error) {
	_, err := c.userViews.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newUser := user.NewUser(req.Email, req.Name, nil, user.RoleTechnician)
	id, err := c.userRepo.Create(ctx, newUser)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.userViews.FindByID(ctx, id)
}

func (c *userCommandsImpl) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*queries.AuthorizedUserView, error) {
	newRole, err := user.NewRole(role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.userRepo.UpdateRole(ctx, id, newRole); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.userViews.FindByID(ctx, id)
}

func (c *userCommandsImpl) RegisterPushToken(ctx context.Context, userID uuid.UUID, token *string) error {
	if err := c.userRepo.SetPushToken(ctx, userID, token); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
