package work

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/internal/application/service"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/work"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type UseCase struct {
	workRepo work.Repository
	events   service.EventPublisher
	logger   logger.Logger
}

func NewUseCase(repo work.Repository, events service.EventPublisher, log logger.Logger) *UseCase {
	return &UseCase{workRepo: repo, events: events, logger: log}
}

type CreateInput struct {
	OwnerID          uuid.UUID
	Company          string
	Position         string
	Location         string
	StartDate        *time.Time
	EndDate          *time.Time
	Current          bool
	Description      string
	Responsibilities []string
	Achievements     []string
	Skills           []string
	EmploymentType   *string
}

func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*work.Work, error) {
	now := time.Now().UTC()
	w := &work.Work{
		ID:               uuid.New(),
		OwnerID:          input.OwnerID,
		Company:          input.Company,
		Position:         input.Position,
		Location:         input.Location,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Current:          input.Current,
		Description:      input.Description,
		Responsibilities: input.Responsibilities,
		Achievements:     input.Achievements,
		Skills:           input.Skills,
		EmploymentType:   work.EmploymentFullTime,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if input.EmploymentType != nil {
		w.EmploymentType = *input.EmploymentType
	}
	if w.Responsibilities == nil {
		w.Responsibilities = []string{}
	}
	if w.Achievements == nil {
		w.Achievements = []string{}
	}
	if w.Skills == nil {
		w.Skills = []string{}
	}

	w.Normalize()
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := uc.workRepo.Save(ctx, w); err != nil {
		return nil, err
	}

	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "work", Action: service.ActionCreated, RecordID: w.ID, OwnerID: w.OwnerID,
	})
	return w, nil
}

type ListInput struct {
	OwnerID uuid.UUID
	Sort    string
}

func (uc *UseCase) List(ctx context.Context, input ListInput) ([]*work.Work, error) {
	sort := input.Sort
	switch sort {
	case work.SortByStartDate, work.SortByCompany:
	default:
		sort = work.SortByStartDate
	}
	return uc.workRepo.ListByOwner(ctx, input.OwnerID, sort)
}

func (uc *UseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*work.Work, error) {
	return uc.workRepo.FindByID(ctx, id, ownerID)
}

type UpdateInput struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Company          *string
	Position         *string
	Location         *string
	StartDate        *time.Time
	EndDate          *time.Time
	Current          *bool
	Description      *string
	Responsibilities []string
	Achievements     []string
	Skills           []string
	EmploymentType   *string
}

func (uc *UseCase) Update(ctx context.Context, input UpdateInput) (*work.Work, error) {
	w, err := uc.workRepo.FindByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Company != nil {
		w.Company = *input.Company
	}
	if input.Position != nil {
		w.Position = *input.Position
	}
	if input.Location != nil {
		w.Location = *input.Location
	}
	if input.StartDate != nil {
		w.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		w.EndDate = input.EndDate
	}
	if input.Current != nil {
		w.Current = *input.Current
	}
	if input.Description != nil {
		w.Description = *input.Description
	}
	if input.Responsibilities != nil {
		w.Responsibilities = input.Responsibilities
	}
	if input.Achievements != nil {
		w.Achievements = input.Achievements
	}
	if input.Skills != nil {
		w.Skills = input.Skills
	}
	if input.EmploymentType != nil {
		w.EmploymentType = *input.EmploymentType
	}
	w.UpdatedAt = time.Now().UTC()

	w.Normalize()
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := uc.workRepo.Update(ctx, w); err != nil {
		return nil, err
	}

	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "work", Action: service.ActionUpdated, RecordID: w.ID, OwnerID: w.OwnerID,
	})
	return w, nil
}

func (uc *UseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.workRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "work", Action: service.ActionDeleted, RecordID: id, OwnerID: ownerID,
	})
	return nil
}
