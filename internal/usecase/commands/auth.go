package commands

import (
	"context"
	"time"

	"glass-dispatch/internal/domain/user"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/infra/identity"
	"glass-dispatch/internal/pkg/clock"
	"glass-dispatch/internal/pkg/errs"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

// Sessions expire a fixed week after the exchange; there is no refresh, the
// app simply exchanges a new session id.
const SessionTTL = 7 * 24 * time.Hour

var (
	ErrSessionExchangeFailed = errs.New("session exchange failed")
	ErrUserInactive          = errs.New("user account is inactive")
	ErrAuthenticationFailed  = errs.New("authentication failed")
)

// IdentityGateway fronts the external provider holding the OAuth result.
type IdentityGateway interface {
	Exchange(ctx context.Context, sessionID string) (*identity.ExchangeResult, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error
	SetPushToken(ctx context.Context, id uuid.UUID, token *string) error
}

type SessionRepository interface {
	Create(ctx context.Context, rec SessionRecord) error
	DeleteByToken(ctx context.Context, token string) error
}

type ExchangeSessionResult struct {
	User      *queries.AuthorizedUserView
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	ExchangeSession(ctx context.Context, sessionID string) (*ExchangeSessionResult, error)
	Logout(ctx context.Context, token string) error
}

type authCommandsImpl struct {
	identity    IdentityGateway
	userRepo    UserRepository
	sessionRepo SessionRepository
	userViews   queries.UserViewRepo
	clock       clock.Clock
}

func NewAuthCommands(
	identityGateway IdentityGateway,
	userRepo UserRepository,
	sessionRepo SessionRepository,
	userViews queries.UserViewRepo,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		identity:    identityGateway,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		userViews:   userViews,
		clock:       clk,
	}
}

// ExchangeSession trades the short-lived session id from the mobile app for a
// stored session. Users are provisioned on first sign-in with the technician
// role; the token from the provider is stored verbatim.
func (a *authCommandsImpl) ExchangeSession(ctx context.Context, sessionID string) (*ExchangeSessionResult, error) {
	result, err := a.identity.Exchange(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionExchangeFailed)
	}

	userView, err := a.findOrCreateUser(ctx, result)
	if err != nil {
		return nil, err
	}
	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	expiresAt := a.clock.Now().Add(SessionTTL)
	err = a.sessionRepo.Create(ctx, SessionRecord{
		Token:     result.SessionToken,
		UserID:    userView.ID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return &ExchangeSessionResult{
		User:      userView,
		Token:     result.SessionToken,
		ExpiresAt: expiresAt,
	}, nil
}

func (a *authCommandsImpl) findOrCreateUser(ctx context.Context, result *identity.ExchangeResult) (*queries.AuthorizedUserView, error) {
	existing, err := a.userViews.FindByEmail(ctx, result.Email)
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(result.Email, result.Name, result.Picture, user.RoleTechnician)
	id, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		// Concurrent first sign-in can race the insert; the loser reuses
		// the winner's row.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return a.userViews.FindByEmail(ctx, result.Email)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.userViews.FindByID(ctx, id)
}

func (a *authCommandsImpl) Logout(ctx context.Context, token string) error {
	return a.sessionRepo.DeleteByToken(ctx, token)
}
