package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/link"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/profile"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/project"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/skill"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/work"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type fakeProfileRepo struct {
	match *profile.Profile
	err   error
}

func (f *fakeProfileRepo) Save(ctx context.Context, p *profile.Profile) error   { return nil }
func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error { return nil }
func (f *fakeProfileRepo) Delete(ctx context.Context, ownerID uuid.UUID) error  { return nil }
func (f *fakeProfileRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	return f.match, nil
}
func (f *fakeProfileRepo) FindMatching(ctx context.Context, ownerID uuid.UUID, keyword string) (*profile.Profile, error) {
	return f.match, f.err
}

type fakeSkillRepo struct {
	matches []*skill.Skill
	err     error
}

func (f *fakeSkillRepo) Save(ctx context.Context, s *skill.Skill) error   { return nil }
func (f *fakeSkillRepo) Update(ctx context.Context, s *skill.Skill) error { return nil }
func (f *fakeSkillRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (f *fakeSkillRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	return nil, apperror.NewNotFound("skill", id.String())
}
func (f *fakeSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter skill.ListFilter, sort string) ([]*skill.Skill, error) {
	return f.matches, nil
}
func (f *fakeSkillRepo) ListTopByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*skill.Skill, error) {
	return f.matches, nil
}
func (f *fakeSkillRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*skill.Skill, error) {
	return f.matches, f.err
}

type fakeProjectRepo struct {
	matches []*project.Project
	err     error
}

func (f *fakeProjectRepo) Save(ctx context.Context, p *project.Project) error   { return nil }
func (f *fakeProjectRepo) Update(ctx context.Context, p *project.Project) error { return nil }
func (f *fakeProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (f *fakeProjectRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return nil, apperror.NewNotFound("project", id.String())
}
func (f *fakeProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter project.ListFilter, limit, offset int) ([]*project.Project, error) {
	return f.matches, nil
}
func (f *fakeProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID, filter project.ListFilter) (int, error) {
	return len(f.matches), nil
}
func (f *fakeProjectRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*project.Project, error) {
	return f.matches, f.err
}

type fakeWorkRepo struct {
	matches []*work.Work
	err     error
}

func (f *fakeWorkRepo) Save(ctx context.Context, w *work.Work) error   { return nil }
func (f *fakeWorkRepo) Update(ctx context.Context, w *work.Work) error { return nil }
func (f *fakeWorkRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (f *fakeWorkRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*work.Work, error) {
	return nil, apperror.NewNotFound("work experience", id.String())
}
func (f *fakeWorkRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, sort string) ([]*work.Work, error) {
	return f.matches, nil
}
func (f *fakeWorkRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*work.Work, error) {
	return f.matches, f.err
}

type fakeLinkRepo struct {
	matches []*link.Link
	err     error
}

func (f *fakeLinkRepo) Save(ctx context.Context, l *link.Link) error   { return nil }
func (f *fakeLinkRepo) Update(ctx context.Context, l *link.Link) error { return nil }
func (f *fakeLinkRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (f *fakeLinkRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*link.Link, error) {
	return nil, apperror.NewNotFound("link", id.String())
}
func (f *fakeLinkRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter link.ListFilter) ([]*link.Link, error) {
	return f.matches, nil
}
func (f *fakeLinkRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*link.Link, error) {
	return f.matches, f.err
}

func newTestUseCase(p *fakeProfileRepo, s *fakeSkillRepo, pr *fakeProjectRepo, w *fakeWorkRepo, l *fakeLinkRepo) *UseCase {
	return NewUseCase(p, s, pr, w, l, logger.NewNop())
}

func Test_Execute_EmptyQueryRejected(t *testing.T) {
	uc := newTestUseCase(&fakeProfileRepo{}, &fakeSkillRepo{}, &fakeProjectRepo{}, &fakeWorkRepo{}, &fakeLinkRepo{})

	for _, q := range []string{"", "   ", "\t\n"} {
		out, err := uc.Execute(context.Background(), Input{OwnerID: uuid.New(), Query: q})
		assert.Nil(t, out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	}
}

func Test_Execute_GroupsResultsByType(t *testing.T) {
	ownerID := uuid.New()
	uc := newTestUseCase(
		&fakeProfileRepo{match: &profile.Profile{OwnerID: ownerID, Name: "Jamie"}},
		&fakeSkillRepo{matches: []*skill.Skill{{Name: "Go"}, {Name: "Golang"}}},
		&fakeProjectRepo{matches: []*project.Project{{Title: "Go API"}}},
		&fakeWorkRepo{},
		&fakeLinkRepo{matches: []*link.Link{{Platform: "github"}}},
	)

	out, err := uc.Execute(context.Background(), Input{OwnerID: ownerID, Query: "  go  "})
	require.NoError(t, err)

	assert.Equal(t, "go", out.Query)
	assert.Len(t, out.Results.Profile, 1)
	assert.Len(t, out.Results.Skills, 2)
	assert.Len(t, out.Results.Projects, 1)
	assert.Empty(t, out.Results.Work)
	assert.Len(t, out.Results.Links, 1)

	assert.Equal(t, 1, out.Summary.ProfileMatches)
	assert.Equal(t, 2, out.Summary.SkillMatches)
	assert.Equal(t, 1, out.Summary.ProjectMatches)
	assert.Equal(t, 0, out.Summary.WorkMatches)
	assert.Equal(t, 1, out.Summary.LinkMatches)
	assert.Equal(t, 5, out.Summary.TotalResults)
}

func Test_Execute_NoMatchesReturnsEmptyGroups(t *testing.T) {
	uc := newTestUseCase(&fakeProfileRepo{}, &fakeSkillRepo{}, &fakeProjectRepo{}, &fakeWorkRepo{}, &fakeLinkRepo{})

	out, err := uc.Execute(context.Background(), Input{OwnerID: uuid.New(), Query: "nothing"})
	require.NoError(t, err)

	assert.NotNil(t, out.Results.Profile)
	assert.Empty(t, out.Results.Profile)
	assert.Empty(t, out.Results.Skills)
	assert.Equal(t, 0, out.Summary.TotalResults)
}

func Test_Execute_SubQueryFailureFailsWholeSearch(t *testing.T) {
	uc := newTestUseCase(
		&fakeProfileRepo{},
		&fakeSkillRepo{},
		&fakeProjectRepo{err: errors.New("connection reset")},
		&fakeWorkRepo{},
		&fakeLinkRepo{matches: []*link.Link{{Platform: "github"}}},
	)

	out, err := uc.Execute(context.Background(), Input{OwnerID: uuid.New(), Query: "go"})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInternal))
}
