package skill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/internal/application/service"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/skill"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type UseCase struct {
	skillRepo skill.Repository
	events    service.EventPublisher
	logger    logger.Logger
}

func NewUseCase(repo skill.Repository, events service.EventPublisher, log logger.Logger) *UseCase {
	return &UseCase{skillRepo: repo, events: events, logger: log}
}

type CreateInput struct {
	OwnerID           uuid.UUID
	Name              string
	Category          *string
	Proficiency       int
	YearsOfExperience float64
	Description       string
	IsActive          *bool
}

func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*skill.Skill, error) {
	now := time.Now().UTC()
	s := &skill.Skill{
		ID:                uuid.New(),
		OwnerID:           input.OwnerID,
		Name:              input.Name,
		Category:          skill.CategoryOther,
		Proficiency:       input.Proficiency,
		YearsOfExperience: input.YearsOfExperience,
		Description:       input.Description,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if input.Category != nil {
		s.Category = *input.Category
	}
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := uc.skillRepo.Save(ctx, s); err != nil {
		return nil, err
	}

	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "skill", Action: service.ActionCreated, RecordID: s.ID, OwnerID: s.OwnerID,
	})
	return s, nil
}

type ListInput struct {
	OwnerID  uuid.UUID
	Category *string
	Sort     string
}

func (uc *UseCase) List(ctx context.Context, input ListInput) ([]*skill.Skill, error) {
	sort := input.Sort
	switch sort {
	case skill.SortByName, skill.SortByProficiency, skill.SortByCategory:
	default:
		sort = skill.SortByName
	}
	return uc.skillRepo.ListByOwner(ctx, input.OwnerID, skill.ListFilter{Category: input.Category}, sort)
}

type TopInput struct {
	OwnerID uuid.UUID
	Limit   int
}

func (uc *UseCase) Top(ctx context.Context, input TopInput) ([]*skill.Skill, error) {
	if input.Limit <= 0 {
		input.Limit = 5
	}
	return uc.skillRepo.ListTopByOwner(ctx, input.OwnerID, input.Limit)
}

func (uc *UseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	return uc.skillRepo.FindByID(ctx, id, ownerID)
}

// UpdateInput carries only the fields the caller supplied; nil means
// "leave unchanged". The owner is never updatable.
type UpdateInput struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              *string
	Category          *string
	Proficiency       *int
	YearsOfExperience *float64
	Description       *string
	IsActive          *bool
}

func (uc *UseCase) Update(ctx context.Context, input UpdateInput) (*skill.Skill, error) {
	s, err := uc.skillRepo.FindByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		s.Name = *input.Name
	}
	if input.Category != nil {
		s.Category = *input.Category
	}
	if input.Proficiency != nil {
		s.Proficiency = *input.Proficiency
	}
	if input.YearsOfExperience != nil {
		s.YearsOfExperience = *input.YearsOfExperience
	}
	if input.Description != nil {
		s.Description = *input.Description
	}
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}
	s.UpdatedAt = time.Now().UTC()

	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := uc.skillRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "skill", Action: service.ActionUpdated, RecordID: s.ID, OwnerID: s.OwnerID,
	})
	return s, nil
}

func (uc *UseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.skillRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "skill", Action: service.ActionDeleted, RecordID: id, OwnerID: ownerID,
	})
	return nil
}
