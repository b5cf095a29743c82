package commands

import (
	"context"

	"glass-dispatch/internal/domain/job"
	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/clock"
	"glass-dispatch/internal/pkg/errs"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound             = errs.New("job not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrInvalidReference        = errs.New("referenced record does not exist")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type JobRepository interface {
	Create(ctx context.Context, j *job.Job) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p UpdateJobParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, jobID, userID uuid.UUID, body string) (uuid.UUID, error)
}

type JobCommands interface {
	Create(ctx context.Context, req reqdto.CreateJobRequest, actorID uuid.UUID) (*queries.JobView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateJobRequest) (*queries.JobView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddComment(ctx context.Context, jobID, actorID uuid.UUID, body string) (*queries.CommentView, error)
}

type jobCommandsImpl struct {
	jobRepo     JobRepository
	commentRepo CommentRepository
	jobViews    queries.JobViewRepo
	userViews   queries.UserViewRepo
	notifier    Notifier
	clock       clock.Clock
}

func NewJobCommands(
	jobRepo JobRepository,
	commentRepo CommentRepository,
	jobViews queries.JobViewRepo,
	userViews queries.UserViewRepo,
	notifier Notifier,
	clk clock.Clock,
) JobCommands {
	return &jobCommandsImpl{
		jobRepo:     jobRepo,
		commentRepo: commentRepo,
		jobViews:    jobViews,
		userViews:   userViews,
		notifier:    notifier,
		clock:       clk,
	}
}

func (c *jobCommandsImpl) Create(ctx context.Context, req reqdto.CreateJobRequest, actorID uuid.UUID) (*queries.JobView, error) {
	entity, err := req.ToDomain(actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if entity.NeedsFirstStopCheck() {
		if err := c.checkFirstStopCapacity(ctx, entity.FirstStopWindow(), nil); err != nil {
			return nil, err
		}
	}

	id, err := c.jobRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrInvalidReference
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.jobViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.notifyJobCreated(ctx, view, actorID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Update writes only the provided fields. Flipping is_first_stop on runs the
// daily capacity check against the job's effective appointment day, excluding
// the job itself. Changing only the appointment time of a job that is already
// a first stop does not re-run the check.
func (c *jobCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateJobRequest) (*queries.JobView, error) {
	current, err := c.jobViews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	params := updateParamsFromRequest(req)
	if params.IsEmpty() {
		return current, nil
	}
	if err := c.validateEnums(params); err != nil {
		return nil, err
	}

	if becomesFirstStop(current, params) {
		appointment := current.AppointmentTime
		if params.AppointmentTime != nil {
			appointment = params.AppointmentTime
		}
		if appointment != nil {
			window := job.NewDayWindow(*appointment)
			if err := c.checkFirstStopCapacity(ctx, window, &id); err != nil {
				return nil, err
			}
		}
	}

	if err := c.jobRepo.Update(ctx, id, params); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrJobNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrInvalidReference
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.jobViews.FindByID(ctx, id)
}

func (c *jobCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.jobRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrJobNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *jobCommandsImpl) AddComment(ctx context.Context, jobID, actorID uuid.UUID, body string) (*queries.CommentView, error) {
	if _, err := c.jobViews.FindByID(ctx, jobID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	commentID, err := c.commentRepo.Create(ctx, jobID, actorID, body)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	author, err := c.userViews.FindByID(ctx, actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.CommentView{
		ID:        commentID,
		JobID:     jobID,
		UserID:    actorID,
		UserName:  author.Name,
		Body:      body,
		CreatedAt: c.clock.Now(),
	}, nil
}

func (c *jobCommandsImpl) checkFirstStopCapacity(ctx context.Context, window job.DayWindow, exclude *uuid.UUID) error {
	count, err := c.jobViews.CountFirstStopsInWindow(ctx, window.Start, window.End, exclude)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return job.CheckFirstStopCapacity(count)
}

func (c *jobCommandsImpl) validateEnums(params UpdateJobParams) error {
	if params.JobType != nil {
		if _, err := job.NewType(*params.JobType); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
	}
	if params.Status != nil {
		if _, err := job.NewStatus(*params.Status); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
	}
	return nil
}

func (c *jobCommandsImpl) notifyJobCreated(ctx context.Context, view *queries.JobView, actorID uuid.UUID) error {
	admins, err := c.userViews.ListAdmins(ctx)
	if err != nil {
		return err
	}

	recipients := newRecipientSet(actorID)
	recipients.addAll(admins)
	if view.AssignedTo != nil {
		assignee, err := c.userViews.FindByID(ctx, *view.AssignedTo)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		recipients.add(assignee)
	}

	body := view.CustomerName + " (" + view.JobType + ")"
	return c.notifier.Notify(ctx, recipients.users, "New Job", body, &view.ID)
}

func becomesFirstStop(current *queries.JobView, params UpdateJobParams) bool {
	return params.IsFirstStop != nil && *params.IsFirstStop && !current.IsFirstStop
}

func updateParamsFromRequest(r reqdto.UpdateJobRequest) UpdateJobParams {
	return UpdateJobParams{
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		Address:          r.Address,
		Lat:              r.Lat,
		Lng:              r.Lng,
		VehicleMake:      r.VehicleMake,
		VehicleModel:     r.VehicleModel,
		VehicleYear:      r.VehicleYear,
		VinOrLP:          r.VinOrLP,
		JobType:          r.JobType,
		Status:           r.Status,
		IsFirstStop:      r.IsFirstStop,
		AppointmentTime:  r.AppointmentTime,
		PartNumber:       r.PartNumber,
		DistributorID:    r.DistributorID,
		ServiceAdvisorID: r.ServiceAdvisorID,
		AssignedTo:       r.AssignedTo,
		Notes:            r.Notes,
		Photos:           r.Photos,
	}
}
