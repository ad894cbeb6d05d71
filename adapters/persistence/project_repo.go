package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/project"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = "id, owner_id, title, description, skills, technologies, links, status, start_date, end_date, featured, image_url, created_at, updated_at"

func scanProject(row pgx.Row, l logger.Logger) (*project.Project, error) {
	p := &project.Project{}
	var linksBytes []byte

	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description,
		&p.Skills, &p.Technologies, &linksBytes, &p.Status,
		&p.StartDate, &p.EndDate, &p.Featured, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	if err := json.Unmarshal(linksBytes, &p.Links); err != nil {
		l.Warn("Failed to unmarshal project links", zap.String("project_id", p.ID.String()), zap.Error(err))
		p.Links = []project.ProjectLink{}
	}
	return p, nil
}

func scanProjects(rows pgx.Rows, l logger.Logger) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows, l)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	linksBytes, err := json.Marshal(p.Links)
	if err != nil {
		return apperror.NewInternal("failed to marshal project links", err)
	}

	query := `
		INSERT INTO projects (id, owner_id, title, description, skills, technologies, links, status, start_date, end_date, featured, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.OwnerID, p.Title, p.Description, p.Skills, p.Technologies,
		linksBytes, p.Status, p.StartDate, p.EndDate, p.Featured, p.ImageURL,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	linksBytes, err := json.Marshal(p.Links)
	if err != nil {
		return apperror.NewInternal("failed to marshal project links for update", err)
	}

	query := `
		UPDATE projects SET
			title = $2, description = $3, skills = $4, technologies = $5, links = $6,
			status = $7, start_date = $8, end_date = $9, featured = $10, image_url = $11,
			updated_at = $12
		WHERE id = $1 AND owner_id = $13
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Skills, p.Technologies, linksBytes,
		p.Status, p.StartDate, p.EndDate, p.Featured, p.ImageURL,
		p.UpdatedAt, p.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND owner_id = $2`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanProject(row, r.logger)
}

func projectFilterConditions(builder sq.SelectBuilder, ownerID uuid.UUID, filter project.ListFilter) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"owner_id": ownerID})
	if filter.Skill != nil {
		// exact set membership, not a substring match
		builder = builder.Where(sq.Expr("? = ANY(skills)", *filter.Skill))
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.Featured != nil {
		builder = builder.Where(sq.Eq{"featured": *filter.Featured})
	}
	return builder
}

func (r *postgresProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter project.ListFilter, limit, offset int) ([]*project.Project, error) {
	builder := projectFilterConditions(psqlProject.Select(projectColumns).From("projects"), ownerID, filter).
		OrderBy("featured DESC", "created_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by owner", err)
	}
	return scanProjects(rows, r.logger)
}

func (r *postgresProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID, filter project.ListFilter) (int, error) {
	builder := projectFilterConditions(psqlProject.Select("COUNT(*)").From("projects"), ownerID, filter)

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build count projects query", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, apperror.NewInternal("failed to count projects", err)
	}
	return count, nil
}

func (r *postgresProjectRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*project.Project, error) {
	pattern := likePattern(keyword)
	builder := psqlProject.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			sq.Expr("array_to_string(skills, ' ') ILIKE ?", pattern),
			sq.Expr("array_to_string(technologies, ' ') ILIKE ?", pattern),
		}).
		OrderBy("featured DESC", "created_at DESC").
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search projects", err)
	}
	return scanProjects(rows, r.logger)
}
