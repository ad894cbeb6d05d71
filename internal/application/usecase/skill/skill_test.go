package skill

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saikrishna-79/portfolio-pro/internal/application/service"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/skill"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type memorySkillRepo struct {
	skills  map[uuid.UUID]*skill.Skill
	saveErr error
}

func newMemorySkillRepo() *memorySkillRepo {
	return &memorySkillRepo{skills: make(map[uuid.UUID]*skill.Skill)}
}

func (r *memorySkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *s
	r.skills[s.ID] = &cp
	return nil
}

func (r *memorySkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	if _, ok := r.skills[s.ID]; !ok {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	cp := *s
	r.skills[s.ID] = &cp
	return nil
}

func (r *memorySkillRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	s, ok := r.skills[id]
	if !ok || s.OwnerID != ownerID {
		return apperror.NewNotFound("skill", id.String())
	}
	delete(r.skills, id)
	return nil
}

func (r *memorySkillRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*skill.Skill, error) {
	s, ok := r.skills[id]
	if !ok || s.OwnerID != ownerID {
		return nil, apperror.NewNotFound("skill", id.String())
	}
	cp := *s
	return &cp, nil
}

func (r *memorySkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter skill.ListFilter, sort string) ([]*skill.Skill, error) {
	var out []*skill.Skill
	for _, s := range r.skills {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memorySkillRepo) ListTopByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*skill.Skill, error) {
	return r.ListByOwner(ctx, ownerID, skill.ListFilter{}, skill.SortByProficiency)
}

func (r *memorySkillRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*skill.Skill, error) {
	return nil, nil
}

type recordingPublisher struct {
	events []service.MutationEvent
}

func (p *recordingPublisher) PublishMutation(ctx context.Context, e service.MutationEvent) {
	p.events = append(p.events, e)
}

func Test_Create_AppliesDefaults(t *testing.T) {
	repo := newMemorySkillRepo()
	pub := &recordingPublisher{}
	uc := NewUseCase(repo, pub, logger.NewNop())

	s, err := uc.Create(context.Background(), CreateInput{
		OwnerID:     uuid.New(),
		Name:        "  Go  ",
		Proficiency: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "Go", s.Name)
	assert.Equal(t, skill.CategoryOther, s.Category)
	assert.True(t, s.IsActive)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "skill", pub.events[0].Entity)
	assert.Equal(t, service.ActionCreated, pub.events[0].Action)
	assert.Equal(t, s.ID, pub.events[0].RecordID)
}

func Test_Create_ExplicitFalseIsActiveKept(t *testing.T) {
	uc := NewUseCase(newMemorySkillRepo(), &recordingPublisher{}, logger.NewNop())

	inactive := false
	category := skill.CategoryDatabase
	s, err := uc.Create(context.Background(), CreateInput{
		OwnerID:     uuid.New(),
		Name:        "Postgres",
		Category:    &category,
		Proficiency: 7,
		IsActive:    &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, skill.CategoryDatabase, s.Category)
	assert.False(t, s.IsActive)
}

func Test_Create_InvalidSkillNotSavedOrPublished(t *testing.T) {
	repo := newMemorySkillRepo()
	pub := &recordingPublisher{}
	uc := NewUseCase(repo, pub, logger.NewNop())

	_, err := uc.Create(context.Background(), CreateInput{
		OwnerID:     uuid.New(),
		Name:        "",
		Proficiency: 0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Empty(t, repo.skills)
	assert.Empty(t, pub.events)
}

func Test_Update_PartialMergePreservesOmittedFields(t *testing.T) {
	repo := newMemorySkillRepo()
	pub := &recordingPublisher{}
	uc := NewUseCase(repo, pub, logger.NewNop())

	ownerID := uuid.New()
	created, err := uc.Create(context.Background(), CreateInput{
		OwnerID:           ownerID,
		Name:              "Go",
		Proficiency:       8,
		YearsOfExperience: 4,
		Description:       "primary language",
	})
	require.NoError(t, err)

	proficiency := 9
	updated, err := uc.Update(context.Background(), UpdateInput{
		ID:          created.ID,
		OwnerID:     ownerID,
		Proficiency: &proficiency,
	})
	require.NoError(t, err)

	assert.Equal(t, 9, updated.Proficiency)
	assert.Equal(t, "Go", updated.Name)
	assert.Equal(t, 4.0, updated.YearsOfExperience)
	assert.Equal(t, "primary language", updated.Description)
	assert.Equal(t, service.ActionUpdated, pub.events[len(pub.events)-1].Action)
}

func Test_Update_RevalidatesMergedRecord(t *testing.T) {
	repo := newMemorySkillRepo()
	uc := NewUseCase(repo, &recordingPublisher{}, logger.NewNop())

	ownerID := uuid.New()
	created, err := uc.Create(context.Background(), CreateInput{
		OwnerID:     ownerID,
		Name:        "Go",
		Proficiency: 8,
	})
	require.NoError(t, err)

	bad := 42
	_, err = uc.Update(context.Background(), UpdateInput{
		ID:          created.ID,
		OwnerID:     ownerID,
		Proficiency: &bad,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	unchanged, err := uc.Get(context.Background(), created.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 8, unchanged.Proficiency)
}

func Test_Update_WrongOwnerLooksLikeMissing(t *testing.T) {
	repo := newMemorySkillRepo()
	uc := NewUseCase(repo, &recordingPublisher{}, logger.NewNop())

	created, err := uc.Create(context.Background(), CreateInput{
		OwnerID:     uuid.New(),
		Name:        "Go",
		Proficiency: 8,
	})
	require.NoError(t, err)

	name := "Rust"
	_, err = uc.Update(context.Background(), UpdateInput{
		ID:      created.ID,
		OwnerID: uuid.New(),
		Name:    &name,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func Test_Delete_PublishesEvent(t *testing.T) {
	repo := newMemorySkillRepo()
	pub := &recordingPublisher{}
	uc := NewUseCase(repo, pub, logger.NewNop())

	ownerID := uuid.New()
	created, err := uc.Create(context.Background(), CreateInput{
		OwnerID:     ownerID,
		Name:        "Go",
		Proficiency: 8,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID, ownerID))
	assert.Equal(t, service.ActionDeleted, pub.events[len(pub.events)-1].Action)

	err = uc.Delete(context.Background(), created.ID, ownerID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
