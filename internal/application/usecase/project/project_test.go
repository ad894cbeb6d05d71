package project

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saikrishna-79/portfolio-pro/internal/application/service"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/project"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type pagingProjectRepo struct {
	total      int
	gotLimit   int
	gotOffset  int
	pageResult []*project.Project
}

func (r *pagingProjectRepo) Save(ctx context.Context, p *project.Project) error   { return nil }
func (r *pagingProjectRepo) Update(ctx context.Context, p *project.Project) error { return nil }
func (r *pagingProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (r *pagingProjectRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return nil, apperror.NewNotFound("project", id.String())
}
func (r *pagingProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter project.ListFilter, limit, offset int) ([]*project.Project, error) {
	r.gotLimit = limit
	r.gotOffset = offset
	return r.pageResult, nil
}
func (r *pagingProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID, filter project.ListFilter) (int, error) {
	return r.total, nil
}
func (r *pagingProjectRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*project.Project, error) {
	return nil, nil
}

type nopPublisher struct{}

func (nopPublisher) PublishMutation(ctx context.Context, e service.MutationEvent) {}

func Test_List_PaginationMeta(t *testing.T) {
	repo := &pagingProjectRepo{
		total:      7,
		pageResult: []*project.Project{{Title: "one"}, {Title: "two"}, {Title: "three"}},
	}
	uc := NewUseCase(repo, nopPublisher{}, logger.NewNop())

	out, err := uc.List(context.Background(), ListInput{
		OwnerID: uuid.New(),
		Limit:   3,
		Page:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, repo.gotLimit)
	assert.Equal(t, 3, repo.gotOffset)
	assert.Equal(t, 2, out.Pagination.Current)
	assert.Equal(t, 3, out.Pagination.Total)
	assert.Equal(t, 3, out.Pagination.Count)
	assert.Equal(t, 7, out.Pagination.TotalCount)
}

func Test_List_NoLimitReturnsEverything(t *testing.T) {
	repo := &pagingProjectRepo{
		total:      2,
		pageResult: []*project.Project{{Title: "one"}, {Title: "two"}},
	}
	uc := NewUseCase(repo, nopPublisher{}, logger.NewNop())

	out, err := uc.List(context.Background(), ListInput{OwnerID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, 0, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)
	assert.Equal(t, 1, out.Pagination.Current)
	assert.Equal(t, 1, out.Pagination.Total)
	assert.Equal(t, 2, out.Pagination.TotalCount)
}

func Test_Create_DefaultsStatusAndSlices(t *testing.T) {
	uc := NewUseCase(&pagingProjectRepo{}, nopPublisher{}, logger.NewNop())

	p, err := uc.Create(context.Background(), CreateInput{
		OwnerID:     uuid.New(),
		Title:       "Portfolio API",
		Description: "A REST API for managing a personal portfolio.",
	})
	require.NoError(t, err)

	assert.Equal(t, project.StatusCompleted, p.Status)
	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Technologies)
	assert.NotNil(t, p.Links)
}

func Test_Create_InvalidLinkTypeRejected(t *testing.T) {
	uc := NewUseCase(&pagingProjectRepo{}, nopPublisher{}, logger.NewNop())

	_, err := uc.Create(context.Background(), CreateInput{
		OwnerID:     uuid.New(),
		Title:       "Portfolio API",
		Description: "A REST API for managing a personal portfolio.",
		Links:       []project.ProjectLink{{Type: "blog", URL: "https://example.com"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}
