package search

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/link"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/profile"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/project"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/search"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/skill"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/work"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

// perTypeLimit bounds each collection's contribution; there is no
// relevance ranking, so results come back in each entity's natural order.
const perTypeLimit = 10

type UseCase struct {
	profileRepo profile.Repository
	skillRepo   skill.Repository
	projectRepo project.Repository
	workRepo    work.Repository
	linkRepo    link.Repository
	logger      logger.Logger
}

func NewUseCase(
	profileRepo profile.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
	workRepo work.Repository,
	linkRepo link.Repository,
	log logger.Logger,
) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		projectRepo: projectRepo,
		workRepo:    workRepo,
		linkRepo:    linkRepo,
		logger:      log,
	}
}

type Input struct {
	OwnerID uuid.UUID
	Query   string
}

type Output struct {
	Query   string
	Results search.Results
	Summary search.Summary
}

var tracer = otel.Tracer("search_usecase")

// Execute fans the keyword out to all five collections concurrently and
// waits for every sub-query. Any sub-query failure fails the whole search.
func (uc *UseCase) Execute(ctx context.Context, input Input) (*Output, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, apperror.NewInvalidInput("search query is required", nil)
	}
	span.SetAttributes(attribute.String("query", query))

	results := search.Results{
		Profile:  []*profile.Profile{},
		Skills:   []*skill.Skill{},
		Projects: []*project.Project{},
		Work:     []*work.Work{},
		Links:    []*link.Link{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := uc.profileRepo.FindMatching(gctx, input.OwnerID, query)
		if err != nil {
			return err
		}
		if p != nil {
			results.Profile = []*profile.Profile{p}
		}
		return nil
	})
	g.Go(func() error {
		skills, err := uc.skillRepo.SearchByKeyword(gctx, input.OwnerID, query, perTypeLimit)
		if err != nil {
			return err
		}
		results.Skills = skills
		return nil
	})
	g.Go(func() error {
		projects, err := uc.projectRepo.SearchByKeyword(gctx, input.OwnerID, query, perTypeLimit)
		if err != nil {
			return err
		}
		results.Projects = projects
		return nil
	})
	g.Go(func() error {
		workMatches, err := uc.workRepo.SearchByKeyword(gctx, input.OwnerID, query, perTypeLimit)
		if err != nil {
			return err
		}
		results.Work = workMatches
		return nil
	})
	g.Go(func() error {
		links, err := uc.linkRepo.SearchByKeyword(gctx, input.OwnerID, query, perTypeLimit)
		if err != nil {
			return err
		}
		results.Links = links
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("Search fan-out failed", err, zap.String("owner_id", input.OwnerID.String()), zap.String("query", query))
		span.RecordError(err)
		return nil, apperror.NewInternal("search failed", err)
	}

	summary := results.Summarize()
	span.SetAttributes(attribute.Int("total_results", summary.TotalResults))

	return &Output{Query: query, Results: results, Summary: summary}, nil
}
