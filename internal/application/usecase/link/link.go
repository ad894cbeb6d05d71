package link

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/internal/application/service"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/link"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type UseCase struct {
	linkRepo link.Repository
	events   service.EventPublisher
	logger   logger.Logger
}

func NewUseCase(repo link.Repository, events service.EventPublisher, log logger.Logger) *UseCase {
	return &UseCase{linkRepo: repo, events: events, logger: log}
}

type CreateInput struct {
	OwnerID     uuid.UUID
	Platform    string
	URL         string
	Label       string
	Description string
	IsPublic    *bool
	Order       int
}

func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*link.Link, error) {
	now := time.Now().UTC()
	l := &link.Link{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Platform:    input.Platform,
		URL:         input.URL,
		Label:       input.Label,
		Description: input.Description,
		IsPublic:    true,
		Order:       input.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsPublic != nil {
		l.IsPublic = *input.IsPublic
	}

	l.Normalize()
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := uc.linkRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "link", Action: service.ActionCreated, RecordID: l.ID, OwnerID: l.OwnerID,
	})
	return l, nil
}

type ListInput struct {
	OwnerID  uuid.UUID
	Platform *string
	IsPublic *bool
}

func (uc *UseCase) List(ctx context.Context, input ListInput) ([]*link.Link, error) {
	return uc.linkRepo.ListByOwner(ctx, input.OwnerID, link.ListFilter{
		Platform: input.Platform,
		IsPublic: input.IsPublic,
	})
}

func (uc *UseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*link.Link, error) {
	return uc.linkRepo.FindByID(ctx, id, ownerID)
}

type UpdateInput struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Platform    *string
	URL         *string
	Label       *string
	Description *string
	IsPublic    *bool
	Order       *int
}

func (uc *UseCase) Update(ctx context.Context, input UpdateInput) (*link.Link, error) {
	l, err := uc.linkRepo.FindByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Platform != nil {
		l.Platform = *input.Platform
	}
	if input.URL != nil {
		l.URL = *input.URL
	}
	if input.Label != nil {
		l.Label = *input.Label
	}
	if input.Description != nil {
		l.Description = *input.Description
	}
	if input.IsPublic != nil {
		l.IsPublic = *input.IsPublic
	}
	if input.Order != nil {
		l.Order = *input.Order
	}
	l.UpdatedAt = time.Now().UTC()

	l.Normalize()
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := uc.linkRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "link", Action: service.ActionUpdated, RecordID: l.ID, OwnerID: l.OwnerID,
	})
	return l, nil
}

func (uc *UseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.linkRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "link", Action: service.ActionDeleted, RecordID: id, OwnerID: ownerID,
	})
	return nil
}
