package usecase

import (
	"context"

	"glass-dispatch/internal/domain/user"
	"glass-dispatch/internal/pkg/clock"
	"glass-dispatch/internal/pkg/errs"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

// ErrSessionInvalid covers every authentication failure uniformly: unknown
// token, expired session, deactivated account. Callers must not distinguish.
var ErrSessionInvalid = errs.New("not authenticated")

// SessionValidator resolves an opaque session token for middleware.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (uuid.UUID, user.Role, error)
}

type sessionValidatorImpl struct {
	sessions queries.SessionViewRepo
	users    queries.UserViewRepo
	clock    clock.Clock
}

func NewSessionValidator(
	sessions queries.SessionViewRepo,
	users queries.UserViewRepo,
	clk clock.Clock,
) SessionValidator {
	return &sessionValidatorImpl{
		sessions: sessions,
		users:    users,
		clock:    clk,
	}
}

func (v *sessionValidatorImpl) ValidateSession(ctx context.Context, token string) (uuid.UUID, user.Role, error) {
	if token == "" {
		return uuid.Nil, "", ErrSessionInvalid
	}

	session, err := v.sessions.FindByToken(ctx, token)
	if err != nil {
		return uuid.Nil, "", ErrSessionInvalid
	}
	if !v.clock.Now().Before(session.ExpiresAt) {
		return uuid.Nil, "", ErrSessionInvalid
	}

	userView, err := v.users.FindByID(ctx, session.UserID)
	if err != nil || !userView.IsActive {
		return uuid.Nil, "", ErrSessionInvalid
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return uuid.Nil, "", ErrSessionInvalid
	}

	return session.UserID, role, nil
}
