package profile

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saikrishna-79/portfolio-pro/internal/application/service"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/link"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/profile"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/project"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/skill"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/work"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

const viewCacheTTL = 60 * time.Second

type UseCase struct {
	profileRepo profile.Repository
	skillRepo   skill.Repository
	projectRepo project.Repository
	workRepo    work.Repository
	linkRepo    link.Repository
	cache       service.Cache
	events      service.EventPublisher
	logger      logger.Logger
}

func NewUseCase(
	profileRepo profile.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
	workRepo work.Repository,
	linkRepo link.Repository,
	cache service.Cache,
	events service.EventPublisher,
	log logger.Logger,
) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		projectRepo: projectRepo,
		workRepo:    workRepo,
		linkRepo:    linkRepo,
		cache:       cache,
		events:      events,
		logger:      log,
	}
}

// View is the combined retrieval: the profile plus the owner's records it
// aggregates.
type View struct {
	Profile  *profile.Profile   `json:"profile"`
	Skills   []*skill.Skill     `json:"skills"`
	Projects []*project.Project `json:"projects"`
	Work     []*work.Work       `json:"work"`
	Links    []*link.Link       `json:"links"`
}

type CreateInput struct {
	OwnerID   uuid.UUID
	Name      string
	Email     string
	Title     string
	Bio       string
	Location  string
	Phone     string
	Website   string
	Education []profile.Education
}

func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*profile.Profile, error) {
	now := time.Now().UTC()
	p := &profile.Profile{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Email:     input.Email,
		Title:     input.Title,
		Bio:       input.Bio,
		Location:  input.Location,
		Phone:     input.Phone,
		Website:   input.Website,
		Education: input.Education,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Education == nil {
		p.Education = []profile.Education{}
	}

	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateView(ctx, p.OwnerID)
	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "profile", Action: service.ActionCreated, RecordID: p.ID, OwnerID: p.OwnerID,
	})
	return p, nil
}

func (uc *UseCase) Get(ctx context.Context, ownerID uuid.UUID) (*View, error) {
	key := viewCacheKey(ownerID)
	if cached, err := uc.cache.Get(ctx, key); err == nil && cached != nil {
		var v View
		if err := json.Unmarshal(cached, &v); err == nil {
			return &v, nil
		}
		uc.logger.Warn("Discarding unreadable cached profile view", zap.String("owner_id", ownerID.String()))
	}

	p, err := uc.profileRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	skills, err := uc.skillRepo.ListByOwner(ctx, ownerID, skill.ListFilter{}, skill.SortByName)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.ListByOwner(ctx, ownerID, project.ListFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}
	workHistory, err := uc.workRepo.ListByOwner(ctx, ownerID, work.SortByStartDate)
	if err != nil {
		return nil, err
	}
	links, err := uc.linkRepo.ListByOwner(ctx, ownerID, link.ListFilter{})
	if err != nil {
		return nil, err
	}

	v := &View{Profile: p, Skills: skills, Projects: projects, Work: workHistory, Links: links}

	if payload, err := json.Marshal(v); err == nil {
		if err := uc.cache.Set(ctx, key, payload, viewCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache profile view", zap.String("owner_id", ownerID.String()), zap.Error(err))
		}
	}
	return v, nil
}

type UpdateInput struct {
	OwnerID   uuid.UUID
	Name      *string
	Email     *string
	Title     *string
	Bio       *string
	Location  *string
	Phone     *string
	Website   *string
	Education []profile.Education
}

func (uc *UseCase) Update(ctx context.Context, input UpdateInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Email != nil {
		p.Email = *input.Email
	}
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Bio != nil {
		p.Bio = *input.Bio
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.Phone != nil {
		p.Phone = *input.Phone
	}
	if input.Website != nil {
		p.Website = *input.Website
	}
	if input.Education != nil {
		p.Education = input.Education
	}
	p.UpdatedAt = time.Now().UTC()

	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateView(ctx, p.OwnerID)
	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "profile", Action: service.ActionUpdated, RecordID: p.ID, OwnerID: p.OwnerID,
	})
	return p, nil
}

func (uc *UseCase) Delete(ctx context.Context, ownerID uuid.UUID) error {
	if err := uc.profileRepo.Delete(ctx, ownerID); err != nil {
		return err
	}
	uc.invalidateView(ctx, ownerID)
	uc.events.PublishMutation(ctx, service.MutationEvent{
		Entity: "profile", Action: service.ActionDeleted, RecordID: ownerID, OwnerID: ownerID,
	})
	return nil
}

func (uc *UseCase) invalidateView(ctx context.Context, ownerID uuid.UUID) {
	if err := uc.cache.Delete(ctx, viewCacheKey(ownerID)); err != nil {
		uc.logger.Warn("Failed to invalidate profile view cache", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
}

func viewCacheKey(ownerID uuid.UUID) string {
	return "profile:view:" + ownerID.String()
}
