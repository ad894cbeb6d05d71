package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/skill"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

var psqlSkill = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const skillColumns = "id, owner_id, name, category, proficiency, years_of_experience, description, is_active, created_at, updated_at"

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Category, &s.Proficiency,
		&s.YearsOfExperience, &s.Description, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func scanSkills(rows pgx.Rows) ([]*skill.Skill, error) {
	defer rows.Close()
	skills := make([]*skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	query := `
		INSERT INTO skills (id, owner_id, name, category, proficiency, years_of_experience, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.OwnerID, s.Name, s.Category, s.Proficiency,
		s.YearsOfExperience, s.Description, s.IsActive,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("skill", "name", s.Name)
		}
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	query := `
		UPDATE skills SET
			name = $2, category = $3, proficiency = $4, years_of_experience = $5,
			description = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND owner_id = $9
	`
	cmdTag, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Category, s.Proficiency, s.YearsOfExperience,
		s.Description, s.IsActive, s.UpdatedAt, s.OwnerID,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("skill", "name", s.Name)
		}
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", id.String())
	}
	return nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1 AND owner_id = $2`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanSkill(row)
}

func (r *postgresSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter skill.ListFilter, sort string) ([]*skill.Skill, error) {
	builder := psqlSkill.Select(skillColumns).
		From("skills").
		Where(sq.Eq{"owner_id": ownerID, "is_active": true})

	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": *filter.Category})
	}

	switch sort {
	case skill.SortByProficiency:
		builder = builder.OrderBy("proficiency DESC", "name ASC")
	case skill.SortByCategory:
		builder = builder.OrderBy("category ASC", "name ASC")
	default:
		builder = builder.OrderBy("name ASC")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skills query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills by owner", err)
	}
	return scanSkills(rows)
}

func (r *postgresSkillRepo) ListTopByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*skill.Skill, error) {
	builder := psqlSkill.Select(skillColumns).
		From("skills").
		Where(sq.Eq{"owner_id": ownerID, "is_active": true}).
		OrderBy("proficiency DESC", "name ASC").
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build top skills query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query top skills", err)
	}
	return scanSkills(rows)
}

func (r *postgresSkillRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*skill.Skill, error) {
	pattern := likePattern(keyword)
	builder := psqlSkill.Select(skillColumns).
		From("skills").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"category": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("name ASC").
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search skills", err)
	}
	return scanSkills(rows)
}
