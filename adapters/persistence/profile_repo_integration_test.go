package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/profile"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type ProfileRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	profileRepo profile.Repository
	ownerID     uuid.UUID
}

func (s *ProfileRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.profileRepo = NewPostgresProfileRepo(s.dbPool, logger.NewNop())

	s.ownerID = uuid.New()
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`
	if _, err := s.dbPool.Exec(ctx, query, s.ownerID, "owner@example.com", "hashedpassword"); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *ProfileRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func (s *ProfileRepoIntegrationTestSuite) SetupTest() {
	_, err := s.dbPool.Exec(context.Background(), `DELETE FROM profiles`)
	s.Require().NoError(err)
}

func TestProfileRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ProfileRepoIntegrationTestSuite))
}

func (s *ProfileRepoIntegrationTestSuite) newProfile() *profile.Profile {
	now := time.Now().UTC()
	return &profile.Profile{
		ID:       uuid.New(),
		OwnerID:  s.ownerID,
		Name:     "Jamie Doe",
		Email:    "jamie@example.com",
		Title:    "Backend Engineer",
		Bio:      "builds APIs",
		Location: "Berlin",
		Education: []profile.Education{
			{Institution: "State University", Degree: "BSc", Field: "Computer Science"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *ProfileRepoIntegrationTestSuite) Test_Save_And_FindByOwner() {
	ctx := context.Background()
	p := s.newProfile()

	s.Require().NoError(s.profileRepo.Save(ctx, p))

	found, err := s.profileRepo.FindByOwner(ctx, s.ownerID)
	s.Require().NoError(err)
	s.Equal("Jamie Doe", found.Name)
	s.Require().Len(found.Education, 1)
	s.Equal("State University", found.Education[0].Institution)
}

func (s *ProfileRepoIntegrationTestSuite) Test_Save_SecondProfileConflicts() {
	ctx := context.Background()

	s.Require().NoError(s.profileRepo.Save(ctx, s.newProfile()))

	err := s.profileRepo.Save(ctx, s.newProfile())
	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *ProfileRepoIntegrationTestSuite) Test_Update_MissingProfileIsNotFound() {
	err := s.profileRepo.Update(context.Background(), s.newProfile())
	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ProfileRepoIntegrationTestSuite) Test_FindMatching_FlatAndEducationFields() {
	ctx := context.Background()
	s.Require().NoError(s.profileRepo.Save(ctx, s.newProfile()))

	for _, keyword := range []string{"jamie", "BERLIN", "backend", "state university", "computer"} {
		p, err := s.profileRepo.FindMatching(ctx, s.ownerID, keyword)
		s.Require().NoError(err)
		s.Require().NotNil(p, "keyword %q should match", keyword)
		s.Equal("Jamie Doe", p.Name)
	}
}

func (s *ProfileRepoIntegrationTestSuite) Test_FindMatching_IgnoresEmailAndEducationKeys() {
	ctx := context.Background()
	s.Require().NoError(s.profileRepo.Save(ctx, s.newProfile()))

	// email values and education JSON structure (key names, date strings)
	// are not searchable fields.
	for _, keyword := range []string{"jamie@example.com", "example.com", "degree", "institution", "startDate"} {
		p, err := s.profileRepo.FindMatching(ctx, s.ownerID, keyword)
		s.Require().NoError(err)
		s.Nil(p, "keyword %q should not match", keyword)
	}
}

func (s *ProfileRepoIntegrationTestSuite) Test_Update_StoresGivenUpdatedAt() {
	ctx := context.Background()
	p := s.newProfile()
	s.Require().NoError(s.profileRepo.Save(ctx, p))

	p.Title = "Staff Engineer"
	p.UpdatedAt = time.Now().UTC().Add(2 * time.Hour)
	s.Require().NoError(s.profileRepo.Update(ctx, p))

	found, err := s.profileRepo.FindByOwner(ctx, s.ownerID)
	s.Require().NoError(err)
	s.Equal("Staff Engineer", found.Title)
	s.WithinDuration(p.UpdatedAt, found.UpdatedAt, time.Microsecond)
}

func (s *ProfileRepoIntegrationTestSuite) Test_FindMatching_NoMatchReturnsNilNil() {
	ctx := context.Background()
	s.Require().NoError(s.profileRepo.Save(ctx, s.newProfile()))

	p, err := s.profileRepo.FindMatching(ctx, s.ownerID, "quantum basket weaving")
	s.Require().NoError(err)
	s.Nil(p)
}

func (s *ProfileRepoIntegrationTestSuite) Test_FindMatching_ScopedToOwner() {
	ctx := context.Background()
	s.Require().NoError(s.profileRepo.Save(ctx, s.newProfile()))

	p, err := s.profileRepo.FindMatching(ctx, uuid.New(), "jamie")
	s.Require().NoError(err)
	s.Nil(p)
}

func (s *ProfileRepoIntegrationTestSuite) Test_Delete_ThenGone() {
	ctx := context.Background()
	s.Require().NoError(s.profileRepo.Save(ctx, s.newProfile()))

	s.Require().NoError(s.profileRepo.Delete(ctx, s.ownerID))

	_, err := s.profileRepo.FindByOwner(ctx, s.ownerID)
	s.ErrorIs(err, apperror.ErrNotFound)

	err = s.profileRepo.Delete(ctx, s.ownerID)
	s.ErrorIs(err, apperror.ErrNotFound)
}
