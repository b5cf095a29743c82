//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"glass-dispatch/internal/domain/job"
	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/pkg/clock"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"
	"glass-dispatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) Create(ctx context.Context, j *job.Job) (uuid.UUID, error) {
	args := m.Called(ctx, j)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockJobRepo) Update(ctx context.Context, id uuid.UUID, p commands.UpdateJobParams) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *mockJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, jobID, userID uuid.UUID, body string) (uuid.UUID, error) {
	args := m.Called(ctx, jobID, userID, body)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockJobViews struct {
	mock.Mock
}

func (m *mockJobViews) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.JobView), args.Error(1)
}

func (m *mockJobViews) List(ctx context.Context, status *string, limit int32) ([]*queries.JobListItem, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]*queries.JobListItem), args.Error(1)
}

func (m *mockJobViews) CountFirstStopsInWindow(ctx context.Context, start, end time.Time, exclude *uuid.UUID) (int64, error) {
	args := m.Called(ctx, start, end, exclude)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserViews struct {
	mock.Mock
}

func (m *mockUserViews) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.Error(1)
}

func (m *mockUserViews) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.Error(1)
}

func (m *mockUserViews) List(ctx context.Context) ([]*queries.AuthorizedUserView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*queries.AuthorizedUserView), args.Error(1)
}

func (m *mockUserViews) ListAdmins(ctx context.Context) ([]*queries.AuthorizedUserView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*queries.AuthorizedUserView), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, recipients []*queries.AuthorizedUserView, title, body string, jobID *uuid.UUID) error {
	args := m.Called(ctx, recipients, title, body, jobID)
	return args.Error(0)
}

type jobCommandsFixture struct {
	jobRepo     *mockJobRepo
	commentRepo *mockCommentRepo
	jobViews    *mockJobViews
	userViews   *mockUserViews
	notifier    *mockNotifier
	cmds        commands.JobCommands
}

func newJobCommandsFixture() *jobCommandsFixture {
	f := &jobCommandsFixture{
		jobRepo:     &mockJobRepo{},
		commentRepo: &mockCommentRepo{},
		jobViews:    &mockJobViews{},
		userViews:   &mockUserViews{},
		notifier:    &mockNotifier{},
	}
	f.cmds = commands.NewJobCommands(
		f.jobRepo, f.commentRepo, f.jobViews, f.userViews, f.notifier,
		clock.NewMockClock(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)),
	)
	return f
}

func TestJobCommands_Create_RejectsWhenFirstStopDayFull(t *testing.T) {
	f := newJobCommandsFixture()

	appointment := time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC)
	window := job.NewDayWindow(appointment)
	req := builder.NewJobBuilder().AsFirstStop(appointment).BuildDTO()

	f.jobViews.On("CountFirstStopsInWindow", mock.Anything, window.Start, window.End, (*uuid.UUID)(nil)).
		Return(int64(3), nil)

	_, err := f.cmds.Create(context.Background(), req, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, job.ErrFirstStopCapacityExceeded))
	f.jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobCommands_Create_AllowsUnderFirstStopCapacity(t *testing.T) {
	f := newJobCommandsFixture()

	appointment := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
	window := job.NewDayWindow(appointment)
	actorID := uuid.New()
	jobID := uuid.New()
	req := builder.NewJobBuilder().AsFirstStop(appointment).BuildDTO()
	view := builder.NewJobBuilder().AsFirstStop(appointment).BuildReadModel()
	view.ID = jobID
	admin := builder.NewUserBuilder().AsAdmin().BuildReadModel()

	f.jobViews.On("CountFirstStopsInWindow", mock.Anything, window.Start, window.End, (*uuid.UUID)(nil)).
		Return(int64(2), nil)
	f.jobRepo.On("Create", mock.Anything, mock.Anything).Return(jobID, nil)
	f.jobViews.On("FindByID", mock.Anything, jobID).Return(view, nil)
	f.userViews.On("ListAdmins", mock.Anything).
		Return([]*queries.AuthorizedUserView{admin}, nil)
	f.notifier.On("Notify", mock.Anything, mock.Anything, "New Job", mock.Anything, &jobID).
		Return(nil)

	got, err := f.cmds.Create(context.Background(), req, actorID)

	require.NoError(t, err)
	assert.Equal(t, jobID, got.ID)
	f.notifier.AssertExpectations(t)
}

func TestJobCommands_Create_SkipsCheckWithoutAppointment(t *testing.T) {
	f := newJobCommandsFixture()

	jobID := uuid.New()
	req := builder.NewJobBuilder().BuildDTO()
	req.IsFirstStop = true // no appointment time, so no window to check
	view := builder.NewJobBuilder().BuildReadModel()
	view.ID = jobID

	f.jobRepo.On("Create", mock.Anything, mock.Anything).Return(jobID, nil)
	f.jobViews.On("FindByID", mock.Anything, jobID).Return(view, nil)
	f.userViews.On("ListAdmins", mock.Anything).
		Return([]*queries.AuthorizedUserView{}, nil)
	f.notifier.On("Notify", mock.Anything, mock.Anything, "New Job", mock.Anything, &jobID).
		Return(nil)

	_, err := f.cmds.Create(context.Background(), req, uuid.New())

	require.NoError(t, err)
	f.jobViews.AssertNotCalled(t, "CountFirstStopsInWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobCommands_Create_InvalidJobType(t *testing.T) {
	f := newJobCommandsFixture()

	req := builder.NewJobBuilder().WithJobType("sunroof").BuildDTO()

	_, err := f.cmds.Create(context.Background(), req, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrDomainValidation))
	f.jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobCommands_Update_FlipToFirstStopRejectedWhenDayFull(t *testing.T) {
	f := newJobCommandsFixture()

	id := uuid.New()
	appointment := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	window := job.NewDayWindow(appointment)
	current := builder.NewJobBuilder().BuildReadModel()
	current.ID = id
	current.AppointmentTime = &appointment

	isFirstStop := true
	req := reqdto.UpdateJobRequest{IsFirstStop: &isFirstStop}

	f.jobViews.On("FindByID", mock.Anything, id).Return(current, nil)
	f.jobViews.On("CountFirstStopsInWindow", mock.Anything, window.Start, window.End, &id).
		Return(int64(3), nil)

	_, err := f.cmds.Update(context.Background(), id, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, job.ErrFirstStopCapacityExceeded))
	f.jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobCommands_Update_AppointmentChangeDoesNotRecheck(t *testing.T) {
	f := newJobCommandsFixture()

	id := uuid.New()
	oldAppointment := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	newAppointment := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
	current := builder.NewJobBuilder().AsFirstStop(oldAppointment).BuildReadModel()
	current.ID = id
	updated := builder.NewJobBuilder().AsFirstStop(newAppointment).BuildReadModel()
	updated.ID = id

	req := reqdto.UpdateJobRequest{AppointmentTime: &newAppointment}

	f.jobViews.On("FindByID", mock.Anything, id).Return(current, nil).Once()
	f.jobRepo.On("Update", mock.Anything, id, mock.Anything).Return(nil)
	f.jobViews.On("FindByID", mock.Anything, id).Return(updated, nil).Once()

	got, err := f.cmds.Update(context.Background(), id, req)

	require.NoError(t, err)
	assert.Equal(t, &newAppointment, got.AppointmentTime)
	f.jobViews.AssertNotCalled(t, "CountFirstStopsInWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobCommands_Update_EmptyPatchReturnsCurrent(t *testing.T) {
	f := newJobCommandsFixture()

	id := uuid.New()
	current := builder.NewJobBuilder().BuildReadModel()
	current.ID = id

	f.jobViews.On("FindByID", mock.Anything, id).Return(current, nil)

	got, err := f.cmds.Update(context.Background(), id, reqdto.UpdateJobRequest{})

	require.NoError(t, err)
	assert.Equal(t, current, got)
	f.jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobCommands_AddComment(t *testing.T) {
	f := newJobCommandsFixture()

	jobID := uuid.New()
	actorID := uuid.New()
	commentID := uuid.New()
	view := builder.NewJobBuilder().BuildReadModel()
	view.ID = jobID
	author := builder.NewUserBuilder().WithName("Alice Tech").BuildReadModel()
	author.ID = actorID

	f.jobViews.On("FindByID", mock.Anything, jobID).Return(view, nil)
	f.commentRepo.On("Create", mock.Anything, jobID, actorID, "cracked on arrival").Return(commentID, nil)
	f.userViews.On("FindByID", mock.Anything, actorID).Return(author, nil)

	got, err := f.cmds.AddComment(context.Background(), jobID, actorID, "cracked on arrival")

	require.NoError(t, err)
	assert.Equal(t, commentID, got.ID)
	assert.Equal(t, "Alice Tech", got.UserName)
}
