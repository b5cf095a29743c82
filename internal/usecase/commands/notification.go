package commands

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationCommandsImpl struct {
	repo NotificationRepository
}

func NewNotificationCommands(repo NotificationRepository) NotificationCommands {
	return &notificationCommandsImpl{repo: repo}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := c.repo.MarkRead(ctx, id, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotificationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := c.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return count, nil
}
