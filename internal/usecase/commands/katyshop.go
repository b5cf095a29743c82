package commands

import (
	"context"

	"glass-dispatch/internal/domain/katyshop"
	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/errs"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrShopJobNotFound         = errs.New("shop job not found")
	ErrInvalidStatusTransition = errs.New("invalid shop job status transition")
)

type ShopJobRepository interface {
	Create(ctx context.Context, s *katyshop.ShopJob) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status katyshop.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ShopJobCommands interface {
	Create(ctx context.Context, req reqdto.CreateShopJobRequest, actorID uuid.UUID) (*queries.ShopJobView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, actorID uuid.UUID) (*queries.ShopJobView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type shopJobCommandsImpl struct {
	shopRepo  ShopJobRepository
	shopViews queries.ShopJobViewRepo
	userViews queries.UserViewRepo
	notifier  Notifier
}

func NewShopJobCommands(
	shopRepo ShopJobRepository,
	shopViews queries.ShopJobViewRepo,
	userViews queries.UserViewRepo,
	notifier Notifier,
) ShopJobCommands {
	return &shopJobCommandsImpl{
		shopRepo:  shopRepo,
		shopViews: shopViews,
		userViews: userViews,
		notifier:  notifier,
	}
}

func (c *shopJobCommandsImpl) Create(ctx context.Context, req reqdto.CreateShopJobRequest, actorID uuid.UUID) (*queries.ShopJobView, error) {
	entity, err := req.ToDomain(actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.shopRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.shopViews.FindByID(ctx, id)
}

// UpdateStatus enforces the queue lifecycle. Completing a shop job notifies
// its creator and the admins, excluding whoever completed it.
func (c *shopJobCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string, actorID uuid.UUID) (*queries.ShopJobView, error) {
	current, err := c.shopViews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopJobNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	next, err := katyshop.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if !katyshop.Status(current.Status).CanTransitionTo(next) {
		return nil, ErrInvalidStatusTransition
	}

	if err := c.shopRepo.UpdateStatus(ctx, id, next); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopJobNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.shopViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if next == katyshop.StatusCompleted {
		if err := c.notifyCompleted(ctx, view, actorID); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return view, nil
}

func (c *shopJobCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.shopRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShopJobNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *shopJobCommandsImpl) notifyCompleted(ctx context.Context, view *queries.ShopJobView, actorID uuid.UUID) error {
	admins, err := c.userViews.ListAdmins(ctx)
	if err != nil {
		return err
	}

	recipients := newRecipientSet(actorID)
	recipients.addAll(admins)

	creator, err := c.userViews.FindByID(ctx, view.CreatedBy)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	recipients.add(creator)

	return c.notifier.Notify(ctx, recipients.users, "Katyshop Job Completed", view.Title, nil)
}
