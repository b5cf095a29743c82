package queries

import (
	"context"

	"github.com/google/uuid"
)

const notificationFeedLimit = 100

// NotificationFeed is a user's latest notifications plus the unread badge.
type NotificationFeed struct {
	Items       []*NotificationView `json:"items"`
	UnreadCount int64               `json:"unread_count"`
}

type NotificationQueries interface {
	FeedForUser(ctx context.Context, userID uuid.UUID) (*NotificationFeed, error)
}

type NotificationViewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	repo NotificationViewRepo
}

func NewNotificationQueries(repo NotificationViewRepo) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) FeedForUser(ctx context.Context, userID uuid.UUID) (*NotificationFeed, error) {
	items, err := q.repo.ListByUser(ctx, userID, notificationFeedLimit)
	if err != nil {
		return nil, err
	}
	unread, err := q.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &NotificationFeed{Items: items, UnreadCount: unread}, nil
}
