package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/profile"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = "id, owner_id, name, email, title, bio, location, phone, website, education, created_at, updated_at"

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var educationBytes []byte

	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Email, &p.Title, &p.Bio,
		&p.Location, &p.Phone, &p.Website, &educationBytes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal profile education", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}
	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile education", err)
	}

	query := `
		INSERT INTO profiles (id, owner_id, name, email, title, bio, location, phone, website, education, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.OwnerID, p.Name, p.Email, p.Title, p.Bio,
		p.Location, p.Phone, p.Website, educationBytes,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "owner", p.OwnerID.String())
		}
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile education for update", err)
	}

	query := `
		UPDATE profiles SET
			name = $2, email = $3, title = $4, bio = $5, location = $6,
			phone = $7, website = $8, education = $9, updated_at = $10
		WHERE owner_id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.OwnerID, p.Name, p.Email, p.Title, p.Bio, p.Location,
		p.Phone, p.Website, educationBytes, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.OwnerID.String())
	}
	return nil
}

func (r *postgresProfileRepo) Delete(ctx context.Context, ownerID uuid.UUID) error {
	query := `DELETE FROM profiles WHERE owner_id = $1`
	cmdTag, err := r.db.Exec(ctx, query, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", ownerID.String())
	}
	return nil
}

func (r *postgresProfileRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE owner_id = $1`
	row := r.db.QueryRow(ctx, query, ownerID)
	return r.scanProfile(row)
}

func (r *postgresProfileRepo) FindMatching(ctx context.Context, ownerID uuid.UUID, keyword string) (*profile.Profile, error) {
	pattern := likePattern(keyword)

	// education is JSONB; only the institution, degree and field values
	// participate, never the keys or date strings.
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE owner_id = $1
		  AND (name ILIKE $2 OR title ILIKE $2 OR bio ILIKE $2 OR location ILIKE $2
		       OR EXISTS (
		           SELECT 1 FROM jsonb_array_elements(education) AS edu
		           WHERE edu->>'institution' ILIKE $2
		              OR edu->>'degree' ILIKE $2
		              OR edu->>'field' ILIKE $2
		       ))
	`
	row := r.db.QueryRow(ctx, query, ownerID, pattern)
	p, err := r.scanProfile(row)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
