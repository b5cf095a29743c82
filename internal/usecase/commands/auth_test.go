//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"glass-dispatch/internal/domain/user"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/infra/identity"
	"glass-dispatch/internal/pkg/clock"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIdentityGateway struct {
	mock.Mock
}

func (m *mockIdentityGateway) Exchange(ctx context.Context, sessionID string) (*identity.ExchangeResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.ExchangeResult), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *mockUserRepo) SetPushToken(ctx context.Context, id uuid.UUID, token *string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, rec commands.SessionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

var authTestNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

type authCommandsFixture struct {
	identity    *mockIdentityGateway
	userRepo    *mockUserRepo
	sessionRepo *mockSessionRepo
	userViews   *mockUserViews
	cmds        commands.AuthCommands
}

func newAuthCommandsFixture() *authCommandsFixture {
	f := &authCommandsFixture{
		identity:    &mockIdentityGateway{},
		userRepo:    &mockUserRepo{},
		sessionRepo: &mockSessionRepo{},
		userViews:   &mockUserViews{},
	}
	f.cmds = commands.NewAuthCommands(
		f.identity, f.userRepo, f.sessionRepo, f.userViews,
		clock.NewMockClock(authTestNow),
	)
	return f
}

func exchangeResult(email string) *identity.ExchangeResult {
	return &identity.ExchangeResult{
		ID:           "provider-user-1",
		Email:        email,
		Name:         "New Technician",
		SessionToken: "opaque-session-token",
	}
}

func notFoundErr() error {
	return infra.WrapRepoErr("user not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func TestAuthCommands_ExchangeSession_ExistingUser(t *testing.T) {
	f := newAuthCommandsFixture()

	view := builder.NewUserBuilder().WithEmail("tech@example.com").BuildReadModel()

	f.identity.On("Exchange", mock.Anything, "session-id").Return(exchangeResult(view.Email), nil)
	f.userViews.On("FindByEmail", mock.Anything, view.Email).Return(view, nil)
	f.sessionRepo.On("Create", mock.Anything, commands.SessionRecord{
		Token:     "opaque-session-token",
		UserID:    view.ID,
		ExpiresAt: authTestNow.Add(commands.SessionTTL),
	}).Return(nil)

	got, err := f.cmds.ExchangeSession(context.Background(), "session-id")

	require.NoError(t, err)
	assert.Equal(t, "opaque-session-token", got.Token)
	assert.Equal(t, authTestNow.Add(commands.SessionTTL), got.ExpiresAt)
	assert.Equal(t, view.ID, got.User.ID)
	f.sessionRepo.AssertExpectations(t)
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthCommands_ExchangeSession_ProvisionsFirstSignIn(t *testing.T) {
	f := newAuthCommandsFixture()

	view := builder.NewUserBuilder().WithEmail("new.tech@example.com").BuildReadModel()

	f.identity.On("Exchange", mock.Anything, "session-id").Return(exchangeResult(view.Email), nil)
	f.userViews.On("FindByEmail", mock.Anything, view.Email).Return(nil, notFoundErr()).Once()
	f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(view.ID, nil)
	f.userViews.On("FindByID", mock.Anything, view.ID).Return(view, nil)
	f.sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := f.cmds.ExchangeSession(context.Background(), "session-id")

	require.NoError(t, err)
	assert.Equal(t, view.ID, got.User.ID)
	f.userRepo.AssertExpectations(t)
}

func TestAuthCommands_ExchangeSession_FirstSignInRaceReusesRow(t *testing.T) {
	f := newAuthCommandsFixture()

	view := builder.NewUserBuilder().WithEmail("racer@example.com").BuildReadModel()
	duplicate := infra.WrapRepoErr("duplicate email", errors.New("23505"), infra.KindDuplicateKey)

	f.identity.On("Exchange", mock.Anything, "session-id").Return(exchangeResult(view.Email), nil)
	// the insert loses to a concurrent first sign-in
	f.userViews.On("FindByEmail", mock.Anything, view.Email).Return(nil, notFoundErr()).Once()
	f.userRepo.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, duplicate)
	f.userViews.On("FindByEmail", mock.Anything, view.Email).Return(view, nil).Once()
	f.sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := f.cmds.ExchangeSession(context.Background(), "session-id")

	require.NoError(t, err)
	assert.Equal(t, view.ID, got.User.ID)
	f.userViews.AssertNumberOfCalls(t, "FindByEmail", 2)
}

func TestAuthCommands_ExchangeSession_RejectsInactiveUser(t *testing.T) {
	f := newAuthCommandsFixture()

	view := builder.NewUserBuilder().WithEmail("gone@example.com").AsInactive().BuildReadModel()

	f.identity.On("Exchange", mock.Anything, "session-id").Return(exchangeResult(view.Email), nil)
	f.userViews.On("FindByEmail", mock.Anything, view.Email).Return(view, nil)

	_, err := f.cmds.ExchangeSession(context.Background(), "session-id")

	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrUserInactive))
	f.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthCommands_ExchangeSession_ProviderRejection(t *testing.T) {
	f := newAuthCommandsFixture()

	f.identity.On("Exchange", mock.Anything, "expired-id").Return(nil, identity.ErrExchangeRejected)

	_, err := f.cmds.ExchangeSession(context.Background(), "expired-id")

	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrSessionExchangeFailed))
	f.userViews.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthCommands_Logout(t *testing.T) {
	f := newAuthCommandsFixture()

	f.sessionRepo.On("DeleteByToken", mock.Anything, "opaque-session-token").Return(nil)

	err := f.cmds.Logout(context.Background(), "opaque-session-token")

	require.NoError(t, err)
	f.sessionRepo.AssertExpectations(t)
}
