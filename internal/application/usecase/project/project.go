package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/internal/application/service"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/project"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type UseCase struct {
	projectRepo project.Repository
	events      service.EventPublisher
	logger      logger.Logger
}

func NewUseCase(repo project.Repository, events service.EventPublisher, log logger.Logger) *UseCase {
	return &UseCase{projectRepo: repo, events: events, logger: log}
}

type CreateInput struct {
	OwnerID      uuid.UUID
	Title        string
	Description  string
	Skills       []string
	Technologies []string
	Links        []project.ProjectLink
	Status       *string
	StartDate    *time.Time
	EndDate      *time.Time
	Featured     bool
	ImageURL     string
}

func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*project.Project, error) {
	now := time.Now().UTC()
	p := &project.Project{
		ID:           uuid.New(),
		OwnerID:      input.OwnerID,
		Title:        input.Title,
		Description:  input.Description,
		Skills:       input.Skills,
		Technologies: input.Technologies,
		Links:        input.Links,
		Status:       project.StatusCompleted,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Featured:     input.Featured,
		ImageURL:     input.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Links == nil {
		p.Links = []project.ProjectLink{}
	}

	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := uc.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "project", Action: service.ActionCreated, RecordID: p.ID, OwnerID: p.OwnerID,
	})
	return p, nil
}

type ListInput struct {
	OwnerID  uuid.UUID
	Skill    *string
	Status   *string
	Featured *bool
	Limit    int
	Page     int
}

// Pagination mirrors what list responses report alongside the page.
type Pagination struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Count      int `json:"count"`
	TotalCount int `json:"totalCount"`
}

type ListOutput struct {
	Projects   []*project.Project
	Pagination Pagination
}

func (uc *UseCase) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	filter := project.ListFilter{Skill: input.Skill, Status: input.Status, Featured: input.Featured}

	page := input.Page
	if page <= 0 {
		page = 1
	}

	total, err := uc.projectRepo.CountByOwner(ctx, input.OwnerID, filter)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	offset := 0
	if limit > 0 {
		offset = (page - 1) * limit
	}

	projects, err := uc.projectRepo.ListByOwner(ctx, input.OwnerID, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	totalPages := 1
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &ListOutput{
		Projects: projects,
		Pagination: Pagination{
			Current:    page,
			Total:      totalPages,
			Count:      len(projects),
			TotalCount: total,
		},
	}, nil
}

func (uc *UseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return uc.projectRepo.FindByID(ctx, id, ownerID)
}

type UpdateInput struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        *string
	Description  *string
	Skills       []string
	Technologies []string
	Links        []project.ProjectLink
	Status       *string
	StartDate    *time.Time
	EndDate      *time.Time
	Featured     *bool
	ImageURL     *string
}

func (uc *UseCase) Update(ctx context.Context, input UpdateInput) (*project.Project, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Skills != nil {
		p.Skills = input.Skills
	}
	if input.Technologies != nil {
		p.Technologies = input.Technologies
	}
	if input.Links != nil {
		p.Links = input.Links
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.StartDate != nil {
		p.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		p.EndDate = input.EndDate
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.ImageURL != nil {
		p.ImageURL = *input.ImageURL
	}
	p.UpdatedAt = time.Now().UTC()

	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "project", Action: service.ActionUpdated, RecordID: p.ID, OwnerID: p.OwnerID,
	})
	return p, nil
}

func (uc *UseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.projectRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "project", Action: service.ActionDeleted, RecordID: id, OwnerID: ownerID,
	})
	return nil
}
