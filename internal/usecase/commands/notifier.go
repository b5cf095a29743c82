package commands

import (
	"context"

	"glass-dispatch/internal/push"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

// NotificationRepository persists the in-app copies of a fan-out.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, records []NotificationRecord) error
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// PushEnqueuer hands a batch to the background push workers. It never blocks;
// a false return means the batch was dropped.
type PushEnqueuer interface {
	Enqueue(messages []push.Message) bool
}

// Notifier fans an event out to a recipient set: in-app records are written
// synchronously (the caller's request fails if this fails), push delivery is
// advisory and fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, recipients []*queries.AuthorizedUserView, title, body string, jobID *uuid.UUID) error
}

type notifierImpl struct {
	notificationRepo NotificationRepository
	pusher           PushEnqueuer
}

func NewNotifier(notificationRepo NotificationRepository, pusher PushEnqueuer) Notifier {
	return &notifierImpl{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

func (n *notifierImpl) Notify(
	ctx context.Context,
	recipients []*queries.AuthorizedUserView,
	title, body string,
	jobID *uuid.UUID,
) error {
	if len(recipients) == 0 {
		return nil
	}

	records := make([]NotificationRecord, 0, len(recipients))
	for _, recipient := range recipients {
		records = append(records, NotificationRecord{
			UserID: recipient.ID,
			Title:  title,
			Body:   body,
			JobID:  jobID,
		})
	}
	if err := n.notificationRepo.CreateBatch(ctx, records); err != nil {
		return err
	}

	messages := []push.Message{}
	for _, recipient := range recipients {
		if recipient.PushToken == nil || *recipient.PushToken == "" {
			continue
		}
		data := map[string]any{}
		if jobID != nil {
			data["job_id"] = jobID.String()
		}
		messages = append(messages, push.Message{
			To:    *recipient.PushToken,
			Title: title,
			Body:  body,
			Data:  data,
		})
	}
	n.pusher.Enqueue(messages)
	return nil
}

// recipientSet collects fan-out targets, deduplicating and always excluding
// the acting user (nobody is notified about their own action).
type recipientSet struct {
	actor uuid.UUID
	seen  map[uuid.UUID]bool
	users []*queries.AuthorizedUserView
}

func newRecipientSet(actor uuid.UUID) *recipientSet {
	return &recipientSet{actor: actor, seen: map[uuid.UUID]bool{}}
}

func (s *recipientSet) add(u *queries.AuthorizedUserView) {
	if u == nil || u.ID == s.actor || s.seen[u.ID] {
		return
	}
	s.seen[u.ID] = true
	s.users = append(s.users, u)
}

func (s *recipientSet) addAll(users []*queries.AuthorizedUserView) {
	for _, u := range users {
		s.add(u)
	}
}
